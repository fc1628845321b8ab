package grid

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/copybook/pkg/poetry"
)

var testStrokes = strokeMap{
	"永": 5, "和": 8, "九": 2, "年": 6, "人": 2, "大": 3, "藏": 17, "一": 1,
}

// propertyConfigs enumerates templates covering every strategy.
func propertyConfigs() []TemplateConfig {
	var cfgs []TemplateConfig
	for _, column := range []int{1, 2, 3, 5, 8, 10, 13} {
		for _, hints := range []bool{false, true} {
			for _, strokes := range []int{0, 1, 3, 9} {
				base := TemplateConfig{Column: column, ShowStrokeOrderShadow: hints, StrokeNumber: strokes}

				full := base
				full.WordsPerRow, full.WordsPerCol = 1, column
				cfgs = append(cfgs, full)

				for rows := 1; rows <= 3; rows++ {
					multi := base
					multi.WordsPerRow, multi.WordsPerCol = rows, 1
					cfgs = append(cfgs, multi)
				}

				for n := 2; n < column; n++ {
					few := base
					few.WordsPerRow, few.WordsPerCol = 1, n
					cfgs = append(cfgs, few)
				}

				for _, rows := range []int{0, 1, 3} {
					practice := base
					practice.LayoutType, practice.RowsPerChar = LayoutPractice, rows
					cfgs = append(cfgs, practice)
				}
			}
		}
	}
	return cfgs
}

var propertyInputs = []string{
	"",
	"永",
	"永和九年",
	"一二三四五六七",
	"人大藏",
	"a永é",
}

func TestLayoutProperties(t *testing.T) {
	for _, cfg := range propertyConfigs() {
		s := GetStrategy(cfg, testStrokes)
		for _, input := range propertyInputs {
			name := fmt.Sprintf("%s/%q", cfg, input)
			g := s.CreateCharArray(input, cfg.Column, cfg.ShowStrokeOrderShadow, cfg.StrokeNumber)

			if got := s.CalculateRows(input, cfg.Column); got != len(g) {
				t.Errorf("%s: CalculateRows() = %d, rows built = %d", name, got, len(g))
			}

			for i, row := range g {
				if len(row) != cfg.Column {
					t.Errorf("%s: row %d width = %d, want %d", name, i, len(row), cfg.Column)
				}
				for _, c := range row {
					checkCell(t, name, s.Kind(), cfg, c)
				}
			}

			switch s.Kind() {
			case KindFullRowWords, KindMultiRowsOneWord:
				chars := SplitCharacters(input)
				if s.Kind() == KindMultiRowsOneWord {
					chars = repeatEach(chars, cfg.WordsPerRow)
				}
				if got := g.Characters(); !reflect.DeepEqual(got, chars) && len(chars)+len(got) > 0 {
					t.Errorf("%s: characters = %q, want %q", name, got, chars)
				}
			case KindFewWordsPerRow:
				if got := strings.Join(g.Characters(), ""); got != input {
					t.Errorf("%s: characters = %q, want %q", name, got, input)
				}
			}

			again := s.CreateCharArray(input, cfg.Column, cfg.ShowStrokeOrderShadow, cfg.StrokeNumber)
			if !reflect.DeepEqual(g, again) {
				t.Errorf("%s: layout is not deterministic", name)
			}
		}
	}
}

func checkCell(t *testing.T, name string, kind Kind, cfg TemplateConfig, c FontItem) {
	t.Helper()
	if !c.IsStrokeOrderHint {
		if c.StrokeOrderIndex != 0 || c.OriginalChar != "" {
			t.Errorf("%s: non-hint cell carries hint fields: %+v", name, c)
		}
		return
	}
	if c.Char != "" || c.OriginalChar == "" || c.StrokeOrderIndex < 1 {
		t.Errorf("%s: malformed hint cell %+v", name, c)
		return
	}
	actual, known := testStrokes[c.OriginalChar]
	limit := cfg.StrokeNumber
	if known {
		limit = min(limit, actual)
	}
	if kind == KindPracticeWriting && !cfg.WantsStrokeHints() {
		limit = actual
	}
	if c.StrokeOrderIndex > limit {
		t.Errorf("%s: hint index %d exceeds %d for %q", name, c.StrokeOrderIndex, limit, c.OriginalChar)
	}
}

func repeatEach(chars []string, n int) []string {
	var out []string
	for _, c := range chars {
		for range n {
			out = append(out, c)
		}
	}
	return out
}

func TestFormatGridDataScenarios(t *testing.T) {
	t.Run("full row", func(t *testing.T) {
		cfg := TemplateConfig{Column: 3, WordsPerRow: 1, WordsPerCol: 3}
		g := FormatGridData("一二三四五六七", cfg, nil)
		want := []string{"一二三", "四五六", "七__"}
		if got := rowStrings(g); !reflect.DeepEqual(got, want) {
			t.Errorf("FormatGridData() = %q, want %q", got, want)
		}
	})

	t.Run("two rows per word", func(t *testing.T) {
		cfg := TemplateConfig{Column: 4, WordsPerRow: 2, WordsPerCol: 1}
		g := FormatGridData("大", cfg, nil)
		want := []string{"大___", "大___"}
		if got := rowStrings(g); !reflect.DeepEqual(got, want) {
			t.Errorf("FormatGridData() = %q, want %q", got, want)
		}
	})

	t.Run("two per row", func(t *testing.T) {
		cfg := TemplateConfig{Column: 10, WordsPerRow: 1, WordsPerCol: 2}
		g := FormatGridData("你好", cfg, nil)
		want := []string{"你____好____"}
		if got := rowStrings(g); !reflect.DeepEqual(got, want) {
			t.Errorf("FormatGridData() = %q, want %q", got, want)
		}
	})

	t.Run("practice", func(t *testing.T) {
		cfg := TemplateConfig{Column: 5, LayoutType: LayoutPractice, RowsPerChar: 4}
		g := FormatGridData("人", cfg, strokeMap{"人": 2})
		want := Grid{
			{NewStandardItem("人"), NewStrokeHintItem("人", 1), NewStrokeHintItem("人", 2), NewEmptyItem(), NewEmptyItem()},
			NewEmptyItems(5),
			NewEmptyItems(5),
			NewEmptyItems(5),
		}
		if !reflect.DeepEqual(g, want) {
			t.Errorf("FormatGridData() = %q, want %q", rowStrings(g), rowStrings(want))
		}
	})

	t.Run("poetry", func(t *testing.T) {
		cfg := TemplateConfig{Column: 10, LayoutType: LayoutPoetry}
		g := FormatGridData(jingYeSi, cfg, nil)
		title := g[0]
		for i := 0; i < 3; i++ {
			if title[i].Kind() != CellBlank {
				t.Errorf("title cell %d = %+v, want blank", i, title[i])
			}
		}
		if got := title[3].Char + title[4].Char + title[5].Char; got != "静夜思" {
			t.Errorf("title = %q, want 静夜思", got)
		}

		fallback := FormatGridData("静夜思，李白。床前明月光。", cfg, nil)
		if len(fallback) != 3 {
			t.Errorf("fallback rows = %d, want 3", len(fallback))
		}
	})
}

func TestFormatGridDataEmpty(t *testing.T) {
	for _, cfg := range []TemplateConfig{
		DefaultTemplate(),
		{Column: 4, WordsPerRow: 2, WordsPerCol: 1},
		{Column: 10, WordsPerRow: 1, WordsPerCol: 3},
		{Column: 4, LayoutType: LayoutPractice},
	} {
		if g := FormatGridData("", cfg, nil); g != nil {
			t.Errorf("FormatGridData(%q, %s) = %q, want nil", "", cfg, rowStrings(g))
		}
	}

	// Poems always keep their structural rows.
	g := FormatGridData("", TemplateConfig{Column: 4, LayoutType: LayoutPoetry}, nil)
	if len(g) != 1 {
		t.Errorf("poetry rows for empty input = %d, want 1", len(g))
	}
}

func TestFormatGridDataPanicsOnBadColumn(t *testing.T) {
	expectInvalidArgument(t, "zero column", func() {
		FormatGridData("永", TemplateConfig{Column: 0}, nil)
	})
}

func TestFormatPoem(t *testing.T) {
	item := poetry.Item{Title: "春晓", Dynasty: "唐代", Author: "孟浩然", Content: []string{"春眠不觉晓", "处处闻啼鸟"}}

	g := FormatPoem(item, TemplateConfig{Column: 8, LayoutType: LayoutPoetry}, nil)
	if len(g) != 4 {
		t.Fatalf("poetry rows = %d, want 4", len(g))
	}
	if got := g[1].String(); got != "_唐代 孟浩然_" {
		t.Errorf("byline row = %q, want %q", got, "_唐代 孟浩然_")
	}

	dense := FormatPoem(item, TemplateConfig{Column: 5, WordsPerRow: 1, WordsPerCol: 5}, nil)
	want := []string{"春眠不觉晓", "处处闻啼鸟"}
	if got := rowStrings(dense); !reflect.DeepEqual(got, want) {
		t.Errorf("FormatPoem() dense = %q, want %q", got, want)
	}
}

func TestFormatGridDataDoesNotMutateLookup(t *testing.T) {
	lookup := strokeMap{"永": 5}
	before := fmt.Sprint(lookup)
	FormatGridData("永永", TemplateConfig{Column: 6, WordsPerRow: 2, WordsPerCol: 1, ShowStrokeOrderShadow: true, StrokeNumber: 9}, lookup)
	if after := fmt.Sprint(lookup); after != before {
		t.Errorf("lookup changed from %s to %s", before, after)
	}
}

func TestGridHelpers(t *testing.T) {
	g := FormatGridData("人大", TemplateConfig{Column: 4, WordsPerRow: 1, WordsPerCol: 1, ShowStrokeOrderShadow: true, StrokeNumber: 2}, testStrokes)
	if g.Rows() != 2 || g.Columns() != 4 {
		t.Errorf("Rows/Columns = %d/%d, want 2/4", g.Rows(), g.Columns())
	}
	if got := g.Characters(); !reflect.DeepEqual(got, []string{"人", "大"}) {
		t.Errorf("Characters() = %q", got)
	}
	if got := g.Count(CellHint); got != 4 {
		t.Errorf("Count(hint) = %d, want 4", got)
	}
	if c, ok := g.At(Position{Row: 1, Col: 2}); !ok || c != NewStrokeHintItem("大", 2) {
		t.Errorf("At(1,2) = %+v, %v", c, ok)
	}
	if _, ok := g.At(Position{Row: 2, Col: 0}); ok {
		t.Error("At() outside the grid should report false")
	}
}
