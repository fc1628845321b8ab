package pipeline

import (
	"testing"

	errs "github.com/matzehuels/copybook/pkg/errors"
	"github.com/matzehuels/copybook/pkg/grid"
	"github.com/matzehuels/copybook/pkg/strokes"
)

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Text: "永"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}

	if opts.Template.Column != grid.DefaultColumn {
		t.Errorf("Column = %d, want %d", opts.Template.Column, grid.DefaultColumn)
	}
	if opts.Template.LayoutType != grid.LayoutNormal {
		t.Errorf("LayoutType = %q, want normal", opts.Template.LayoutType)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != DefaultFormat {
		t.Errorf("Formats = %v, want [%s]", opts.Formats, DefaultFormat)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errs.Code
	}{
		{"no input", Options{}, errs.ErrCodeInvalidInput},
		{"both inputs", Options{Text: "永", PoemID: "1"}, errs.ErrCodeInvalidInput},
		{"bad poem id", Options{PoemID: "../etc"}, errs.ErrCodeInvalidInput},
		{"control characters", Options{Text: "永\n和"}, errs.ErrCodeInvalidInput},
		{"bad column", Options{Text: "永", Template: grid.TemplateConfig{Column: 41}}, errs.ErrCodeInvalidConfig},
		{"bad layout", Options{Text: "永", Template: grid.TemplateConfig{LayoutType: "spiral"}}, errs.ErrCodeInvalidLayout},
		{"bad format", Options{Text: "永", Formats: []string{"pdf"}}, errs.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errs.Is(err, tt.code) {
				t.Errorf("ValidateAndSetDefaults() = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Text: "永", Formats: []string{"text"}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	first := opts.Template
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.Template != first || len(opts.Formats) != 1 || opts.Formats[0] != "text" {
		t.Error("second call should not change options")
	}
}

func TestOptionsCompactsPoemJSON(t *testing.T) {
	opts := Options{
		Text:     "{\n  \"title\": \"春晓\",\n  \"content\": [\"春眠不觉晓\"]\n}",
		Template: grid.TemplateConfig{LayoutType: grid.LayoutPoetry},
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("pretty-printed poem JSON should validate: %v", err)
	}
	if opts.Text != `{"title":"春晓","content":["春眠不觉晓"]}` {
		t.Errorf("Text = %s", opts.Text)
	}
}

func TestOptionsNeedsStrokes(t *testing.T) {
	tests := []struct {
		cfg  grid.TemplateConfig
		want bool
	}{
		{grid.TemplateConfig{}, false},
		{grid.TemplateConfig{ShowStrokeOrderShadow: true, StrokeNumber: 3}, true},
		{grid.TemplateConfig{ShowStrokeOrderShadow: true}, false},
		{grid.TemplateConfig{LayoutType: grid.LayoutPractice}, true},
		{grid.TemplateConfig{LayoutType: grid.LayoutPoetry, ShowStrokeOrderShadow: true, StrokeNumber: 3}, false},
	}
	for _, tt := range tests {
		opts := Options{Template: tt.cfg}
		if got := opts.NeedsStrokes(); got != tt.want {
			t.Errorf("NeedsStrokes(%v) = %v, want %v", tt.cfg, got, tt.want)
		}
	}
}

func TestGridKeyOptsOnlyRelevantCounts(t *testing.T) {
	opts := Options{Template: grid.DefaultTemplate()}
	counts := strokes.Counts{"永": 5, "和": 8, "九": 2}

	got := opts.GridKeyOpts("永和", counts)
	if len(got.StrokeCounts) != 2 || got.StrokeCounts["九"] != 0 {
		t.Errorf("StrokeCounts = %v, want only 永 and 和", got.StrokeCounts)
	}
	if got.Column != grid.DefaultColumn || got.Layout != "normal" {
		t.Errorf("GridKeyOpts = %+v", got)
	}
	if opts.GridKeyOpts("永和", nil).StrokeCounts != nil {
		t.Error("no counts should leave StrokeCounts nil")
	}
}
