package grid

import (
	"fmt"

	errs "github.com/matzehuels/copybook/pkg/errors"
)

// LayoutType is the layout family requested by a template.
type LayoutType string

const (
	LayoutNormal   LayoutType = "normal"
	LayoutPractice LayoutType = "practice"
	LayoutPoetry   LayoutType = "poetry"
)

// LayoutTypes lists every supported layout type.
var LayoutTypes = []LayoutType{LayoutNormal, LayoutPractice, LayoutPoetry}

// ParseLayoutType parses a layout name. The empty string means normal.
func ParseLayoutType(s string) (LayoutType, error) {
	switch LayoutType(s) {
	case "", LayoutNormal:
		return LayoutNormal, nil
	case LayoutPractice:
		return LayoutPractice, nil
	case LayoutPoetry:
		return LayoutPoetry, nil
	}
	return "", errs.New(errs.ErrCodeInvalidLayout, "unknown layout type %q (want normal, practice or poetry)", s)
}

// Template defaults.
const (
	DefaultColumn       = 10
	DefaultStrokeNumber = 3
	DefaultRowsPerChar  = 4
)

// TemplateConfig describes the layout intent of a sheet.
//
// WordsPerRow is the number of rows dedicated to each character (1 when not
// in that mode) and WordsPerCol the number of characters per row (Column for
// dense packing). Pinyin and ShowStrokeOrder are display toggles passed
// through to renderers.
type TemplateConfig struct {
	Column                int        `json:"column" toml:"column"`
	WordsPerRow           int        `json:"wordsPerRow" toml:"words_per_row"`
	WordsPerCol           int        `json:"wordsPerCol" toml:"words_per_col"`
	LayoutType            LayoutType `json:"layoutType" toml:"layout_type"`
	ShowStrokeOrderShadow bool       `json:"showStrokeOrderShadow" toml:"show_stroke_order_shadow"`
	StrokeNumber          int        `json:"strokeNumber" toml:"stroke_number"`
	RowsPerChar           int        `json:"rowsPerChar,omitempty" toml:"rows_per_char"`
	Pinyin                bool       `json:"pinyin,omitempty" toml:"pinyin"`
	ShowStrokeOrder       bool       `json:"showStrokeOrder,omitempty" toml:"show_stroke_order"`
}

// DefaultTemplate returns a dense ten-column sheet.
func DefaultTemplate() TemplateConfig {
	return TemplateConfig{
		Column:       DefaultColumn,
		WordsPerRow:  1,
		WordsPerCol:  DefaultColumn,
		LayoutType:   LayoutNormal,
		StrokeNumber: DefaultStrokeNumber,
	}
}

// SetDefaults fills zero-valued fields. WordsPerCol defaults to Column.
func (c *TemplateConfig) SetDefaults() {
	if c.Column == 0 {
		c.Column = DefaultColumn
	}
	if c.WordsPerRow == 0 {
		c.WordsPerRow = 1
	}
	if c.WordsPerCol == 0 {
		c.WordsPerCol = c.Column
	}
	if c.LayoutType == "" {
		c.LayoutType = LayoutNormal
	}
}

// Validate checks the template for values the layout engine would reject.
func (c TemplateConfig) Validate() error {
	if err := errs.ValidateColumn(c.Column); err != nil {
		return err
	}
	if _, err := ParseLayoutType(string(c.LayoutType)); err != nil {
		return err
	}
	counts := []struct {
		name  string
		value int
	}{
		{"words per row", c.WordsPerRow},
		{"words per column", c.WordsPerCol},
		{"stroke number", c.StrokeNumber},
		{"rows per character", c.RowsPerChar},
	}
	for _, n := range counts {
		if n.value < 0 {
			return errs.New(errs.ErrCodeInvalidConfig, "%s must not be negative, got %d", n.name, n.value)
		}
	}
	return nil
}

// EffectiveRowsPerChar returns RowsPerChar, or DefaultRowsPerChar when unset.
func (c TemplateConfig) EffectiveRowsPerChar() int {
	if c.RowsPerChar > 0 {
		return c.RowsPerChar
	}
	return DefaultRowsPerChar
}

// WantsStrokeHints reports whether hint cells were requested.
func (c TemplateConfig) WantsStrokeHints() bool {
	return c.ShowStrokeOrderShadow && c.StrokeNumber > 0
}

// String returns a compact description used in logs.
func (c TemplateConfig) String() string {
	return fmt.Sprintf("%s column=%d rows/word=%d words/row=%d hints=%t/%d",
		c.LayoutType, c.Column, c.WordsPerRow, c.WordsPerCol, c.ShowStrokeOrderShadow, c.StrokeNumber)
}
