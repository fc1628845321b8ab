package server

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/copybook/pkg/cache"
	errs "github.com/matzehuels/copybook/pkg/errors"
	"github.com/matzehuels/copybook/pkg/grid"
	"github.com/matzehuels/copybook/pkg/observability"
	"github.com/matzehuels/copybook/pkg/pipeline"
	"github.com/matzehuels/copybook/pkg/poetry"
	"github.com/matzehuels/copybook/pkg/render"
)

// Sheet is a laid-out grid stored by the API.
type Sheet struct {
	ID        string              `json:"id"`
	Kind      grid.Kind           `json:"kind"`
	Rows      int                 `json:"rows"`
	Columns   int                 `json:"columns"`
	Template  grid.TemplateConfig `json:"template"`
	Poem      *poetry.Item        `json:"poem,omitempty"`
	Grid      grid.Grid           `json:"grid"`
	Preview   string              `json:"preview,omitempty"` // text rendering, when requested
	CreatedAt time.Time           `json:"createdAt"`
	ExpiresAt time.Time           `json:"expiresAt"`
}

// NewSheet builds a sheet with a fresh UUID from a pipeline result.
func NewSheet(res *pipeline.Result, tmpl grid.TemplateConfig, ttl time.Duration) *Sheet {
	now := time.Now().UTC()
	g := res.Grid
	if g == nil {
		g = grid.Grid{}
	}
	return &Sheet{
		ID:        uuid.NewString(),
		Kind:      res.Kind,
		Rows:      res.Stats.Rows,
		Columns:   res.Stats.Columns,
		Template:  tmpl,
		Poem:      res.Poem,
		Grid:      g,
		Preview:   string(res.Artifacts[render.FormatText]),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpired reports whether the sheet has outlived its TTL.
func (s *Sheet) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// SheetStore keeps sheets in a cache backend.
type SheetStore struct {
	cache cache.Cache
	keyer cache.Keyer
	ttl   time.Duration
}

// NewSheetStore stores sheets in c for ttl; zero uses cache.TTLSheet.
func NewSheetStore(c cache.Cache, keyer cache.Keyer, ttl time.Duration) *SheetStore {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if ttl <= 0 {
		ttl = cache.TTLSheet
	}
	return &SheetStore{cache: c, keyer: keyer, ttl: ttl}
}

// TTL returns how long stored sheets live.
func (s *SheetStore) TTL() time.Duration { return s.ttl }

// Get returns the sheet with the given id. Unknown, malformed and expired
// ids all yield SHEET_NOT_FOUND.
func (s *SheetStore) Get(ctx context.Context, id string) (*Sheet, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errs.New(errs.ErrCodeSheetNotFound, "sheet %q not found", id)
	}
	data, ok, err := s.cache.Get(ctx, s.keyer.SheetKey(id))
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", id, err)
	}
	if !ok {
		observability.Cache().OnCacheMiss(ctx, observability.KeySheet)
		return nil, errs.New(errs.ErrCodeSheetNotFound, "sheet %q not found", id)
	}

	var sheet Sheet
	if err := json.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("decode sheet %s: %w", id, err)
	}
	if sheet.IsExpired() {
		_ = s.cache.Delete(ctx, s.keyer.SheetKey(id))
		return nil, errs.New(errs.ErrCodeSheetNotFound, "sheet %q expired", id)
	}
	observability.Cache().OnCacheHit(ctx, observability.KeySheet)
	return &sheet, nil
}

// Set stores sheet until its ExpiresAt.
func (s *SheetStore) Set(ctx context.Context, sheet *Sheet) error {
	data, err := json.Marshal(sheet)
	if err != nil {
		return fmt.Errorf("encode sheet: %w", err)
	}
	ttl := time.Until(sheet.ExpiresAt)
	if ttl <= 0 {
		return errs.New(errs.ErrCodeInvalidArgument, "sheet %s already expired", sheet.ID)
	}
	if err := s.cache.Set(ctx, s.keyer.SheetKey(sheet.ID), data, ttl); err != nil {
		return fmt.Errorf("store sheet %s: %w", sheet.ID, err)
	}
	observability.Cache().OnCacheSet(ctx, observability.KeySheet, len(data))
	return nil
}

// Delete removes a sheet. Deleting an unknown sheet is not an error.
func (s *SheetStore) Delete(ctx context.Context, id string) error {
	return s.cache.Delete(ctx, s.keyer.SheetKey(id))
}
