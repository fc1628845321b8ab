package render

import (
	"encoding/json"
	"strings"
	"testing"

	errs "github.com/matzehuels/copybook/pkg/errors"
	"github.com/matzehuels/copybook/pkg/grid"
)

// sample is 人 with two stroke hints and two blanks in a five-column row.
func sample() grid.Grid {
	return grid.Grid{{
		grid.NewStandardItem("人"),
		grid.NewStrokeHintItem("人", 1),
		grid.NewStrokeHintItem("人", 2),
		grid.NewEmptyItem(),
		grid.NewEmptyItem(),
	}}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"json", false},
		{"text", false},
		{"svg", true},
		{"JSON", true},
		{"", true},
	}
	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errs.Is(err, errs.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want INVALID_FORMAT", tt.format, errs.GetCode(err))
		}
	}

	if err := ValidateFormats([]string{"json", "pdf"}); err == nil {
		t.Error("ValidateFormats should reject pdf")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("empty formats should pass: %v", err)
	}
}

func TestJSON(t *testing.T) {
	cfg := grid.TemplateConfig{Column: 5, WordsPerRow: 1, WordsPerCol: 1, ShowStrokeOrderShadow: true, StrokeNumber: 3}
	data, err := JSON(sample(), WithTemplate(cfg), WithKind(grid.KindMultiRowsOneWord))
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if raw["kind"] != "multi-rows-one-word" {
		t.Errorf("kind = %v", raw["kind"])
	}
	if raw["column"] != float64(5) || raw["rows"] != float64(1) {
		t.Errorf("column/rows = %v/%v", raw["column"], raw["rows"])
	}
	cell := raw["grid"].([]any)[0].([]any)[2].(map[string]any)
	if cell["isStrokeOrderHint"] != true || cell["strokeOrderIndex"] != float64(2) || cell["originalChar"] != "人" || cell["char"] != "" {
		t.Errorf("hint cell = %v", cell)
	}

	doc, err := UnmarshalDocument(data)
	if err != nil {
		t.Fatalf("UnmarshalDocument() error: %v", err)
	}
	if doc.Kind == nil || *doc.Kind != grid.KindMultiRowsOneWord {
		t.Errorf("decoded kind = %v", doc.Kind)
	}
	if doc.Template == nil || doc.Template.StrokeNumber != 3 {
		t.Errorf("decoded template = %+v", doc.Template)
	}
	if got := doc.Grid[0].String(); got != "人**__" {
		t.Errorf("decoded row = %q, want %q", got, "人**__")
	}
}

func TestJSONEmptyGrid(t *testing.T) {
	data, err := JSON(nil, Compact())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"column":0,"rows":0,"grid":[]}` {
		t.Errorf("JSON(nil) = %s", data)
	}
}

func TestUnmarshalDocumentRejectsMismatch(t *testing.T) {
	if _, err := UnmarshalDocument([]byte(`{"column":1,"rows":2,"grid":[[{"char":"a"}]]}`)); err == nil {
		t.Error("row count mismatch should fail")
	}
	if _, err := UnmarshalDocument([]byte(`{`)); err == nil {
		t.Error("invalid JSON should fail")
	}
	if _, err := UnmarshalDocument([]byte(`{"rows":0,"grid":[],"kind":"sideways"}`)); err == nil {
		t.Error("unknown kind should fail")
	}
}

func TestText(t *testing.T) {
	out := Text(sample(), WithKind(grid.KindMultiRowsOneWord))

	if !strings.HasPrefix(out, "multi-rows-one-word\n") {
		t.Errorf("Text() should start with the kind:\n%s", out)
	}
	for _, want := range []string{"人", "人¹", "人²", blankCell} {
		if !strings.Contains(out, want) {
			t.Errorf("Text() missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, blankCell) != 2 {
		t.Errorf("Text() blanks = %d, want 2:\n%s", strings.Count(out, blankCell), out)
	}
}

func TestTextEmpty(t *testing.T) {
	if got := Text(nil); got != "" {
		t.Errorf("Text(nil) = %q, want empty", got)
	}
}

func TestSuperscript(t *testing.T) {
	tests := map[int]string{1: "¹", 10: "¹⁰", 23: "²³", -1: "⁻¹"}
	for n, want := range tests {
		if got := superscript(n); got != want {
			t.Errorf("superscript(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestRender(t *testing.T) {
	for _, f := range Formats {
		out, err := Render(f, sample())
		if err != nil || len(out) == 0 {
			t.Errorf("Render(%s) = %d bytes, %v", f, len(out), err)
		}
	}
	if _, err := Render("png", sample()); !errs.Is(err, errs.ErrCodeInvalidFormat) {
		t.Errorf("Render(png) error = %v, want INVALID_FORMAT", err)
	}
}
