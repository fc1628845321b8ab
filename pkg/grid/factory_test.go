package grid

import "testing"

func TestGetStrategy(t *testing.T) {
	tests := []struct {
		name string
		cfg  TemplateConfig
		want Kind
	}{
		{"poetry wins", TemplateConfig{Column: 10, LayoutType: LayoutPoetry, WordsPerRow: 2, WordsPerCol: 1}, KindPoetry},
		{"practice", TemplateConfig{Column: 10, LayoutType: LayoutPractice, WordsPerRow: 1, WordsPerCol: 1}, KindPracticeWriting},
		{"one row per word", TemplateConfig{Column: 10, WordsPerRow: 1, WordsPerCol: 1}, KindMultiRowsOneWord},
		{"three rows per word", TemplateConfig{Column: 10, WordsPerRow: 3, WordsPerCol: 1}, KindMultiRowsOneWord},
		{"two per row", TemplateConfig{Column: 10, WordsPerRow: 1, WordsPerCol: 2}, KindFewWordsPerRow},
		{"nine per row", TemplateConfig{Column: 10, WordsPerRow: 1, WordsPerCol: 9}, KindFewWordsPerRow},
		{"full row", TemplateConfig{Column: 10, WordsPerRow: 1, WordsPerCol: 10}, KindFullRowWords},
		{"more words than columns", TemplateConfig{Column: 10, WordsPerRow: 1, WordsPerCol: 12}, KindFullRowWords},
		{"contradictory", TemplateConfig{Column: 10, WordsPerRow: 2, WordsPerCol: 3}, KindFullRowWords},
		{"zero values", TemplateConfig{Column: 10}, KindFullRowWords},
		{"zero rows per word", TemplateConfig{Column: 10, WordsPerRow: 0, WordsPerCol: 1}, KindFullRowWords},
		{"explicit normal", TemplateConfig{Column: 10, LayoutType: LayoutNormal, WordsPerRow: 1, WordsPerCol: 3}, KindFewWordsPerRow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := GetStrategy(tt.cfg, nil)
			if s == nil {
				t.Fatal("GetStrategy() returned nil")
			}
			if got := s.Kind(); got != tt.want {
				t.Errorf("GetStrategy().Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetStrategyParameters(t *testing.T) {
	if s, ok := GetStrategy(TemplateConfig{Column: 8, WordsPerRow: 3, WordsPerCol: 1}, nil).(*MultiRowsOneWord); !ok || s.RowsPerWord != 3 {
		t.Errorf("multi-row strategy = %+v, want RowsPerWord 3", s)
	}
	if s, ok := GetStrategy(TemplateConfig{Column: 8, WordsPerRow: 1, WordsPerCol: 4}, nil).(*FewWordsPerRow); !ok || s.WordsPerRow != 4 {
		t.Errorf("few-words strategy = %+v, want WordsPerRow 4", s)
	}
	if s, ok := GetStrategy(TemplateConfig{Column: 8, LayoutType: LayoutPractice, RowsPerChar: 2}, nil).(*PracticeWriting); !ok || s.RowsPerChar != 2 {
		t.Errorf("practice strategy = %+v, want RowsPerChar 2", s)
	}
	if s, ok := GetStrategy(TemplateConfig{Column: 8, LayoutType: LayoutPractice}, nil).(*PracticeWriting); !ok || s.RowsPerChar != DefaultRowsPerChar {
		t.Errorf("practice strategy = %+v, want default rows", s)
	}
}

func TestParseLayoutType(t *testing.T) {
	tests := []struct {
		input   string
		want    LayoutType
		wantErr bool
	}{
		{"", LayoutNormal, false},
		{"normal", LayoutNormal, false},
		{"practice", LayoutPractice, false},
		{"poetry", LayoutPoetry, false},
		{"grid", "", true},
	}
	for _, tt := range tests {
		got, err := ParseLayoutType(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLayoutType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLayoutType(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTemplateConfig(t *testing.T) {
	cfg := TemplateConfig{Column: 8}
	cfg.SetDefaults()
	if cfg.WordsPerRow != 1 || cfg.WordsPerCol != 8 || cfg.LayoutType != LayoutNormal {
		t.Errorf("SetDefaults() = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if got := cfg.EffectiveRowsPerChar(); got != DefaultRowsPerChar {
		t.Errorf("EffectiveRowsPerChar() = %d, want %d", got, DefaultRowsPerChar)
	}

	if err := DefaultTemplate().Validate(); err != nil {
		t.Errorf("DefaultTemplate().Validate() error = %v", err)
	}

	invalid := []TemplateConfig{
		{Column: 0},
		{Column: 100},
		{Column: 10, LayoutType: "grid"},
		{Column: 10, StrokeNumber: -1},
		{Column: 10, RowsPerChar: -2},
	}
	for _, c := range invalid {
		if err := c.Validate(); err == nil {
			t.Errorf("Validate(%+v) expected error", c)
		}
	}

	hints := TemplateConfig{ShowStrokeOrderShadow: true, StrokeNumber: 2}
	if !hints.WantsStrokeHints() {
		t.Error("WantsStrokeHints() = false, want true")
	}
	hints.StrokeNumber = 0
	if hints.WantsStrokeHints() {
		t.Error("WantsStrokeHints() with zero stroke number = true, want false")
	}
}
