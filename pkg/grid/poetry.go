package grid

import (
	"encoding/json"
	"strings"

	"github.com/matzehuels/copybook/pkg/poetry"
)

// PoetryLayout lays out a poem: the title on the first row, the
// "dynasty author" byline on the second, and one row per verse. Every line
// is centered. A line wider than the column wraps; full chunks fill their
// rows and the final chunk is centered.
//
// Input is a JSON-encoded [poetry.Item]. Anything else (text not starting
// with "{", invalid JSON, a missing title) is split on verse punctuation
// and each piece centered on its own row, the first acting as title.
// Layout always yields at least one row.
type PoetryLayout struct {
	base
}

func NewPoetryLayout(lookup StrokeLookup) *PoetryLayout {
	return &PoetryLayout{base: base{lookup: lookup}}
}

func (s *PoetryLayout) Kind() Kind { return KindPoetry }

func (s *PoetryLayout) CalculateRows(input string, column int) int {
	mustPositiveColumn(column)
	rows := 0
	for _, line := range inputLines(input) {
		rows += centeredRowCount(CharacterCount(line), column)
	}
	return rows
}

// CreateCharArray lays out the poem. Stroke hints are not drawn on poems.
func (s *PoetryLayout) CreateCharArray(input string, column int, _ bool, _ int) Grid {
	mustPositiveColumn(column)
	return s.layoutLines(inputLines(input), column)
}

// LayoutPoem lays out an already decoded poem.
func (s *PoetryLayout) LayoutPoem(item poetry.Item, column int) Grid {
	mustPositiveColumn(column)
	return s.layoutLines(poemLines(item), column)
}

func (s *PoetryLayout) layoutLines(lines []string, column int) Grid {
	var g Grid
	for _, line := range lines {
		g = append(g, s.centeredRows(line, column)...)
	}
	return g
}

func (s *PoetryLayout) centeredRows(text string, column int) []Row {
	chars := SplitCharacters(text)
	if len(chars) == 0 {
		return []Row{NewEmptyItems(column)}
	}
	chunks := SplitChunks(chars, column)
	rows := make([]Row, 0, len(chunks))
	for _, chunk := range chunks {
		left := (column - len(chunk)) / 2
		row := make(Row, 0, column)
		row = append(row, NewEmptyItems(left)...)
		row = append(row, NewStandardItems(chunk)...)
		rows = append(rows, s.fillRow(row, column))
	}
	return rows
}

func centeredRowCount(chars, column int) int {
	if chars == 0 {
		return 1
	}
	return CalculateRows(chars, column)
}

// ParsePoem decodes a JSON poem. ok is false when input would take the
// punctuation fallback.
func ParsePoem(input string) (item poetry.Item, ok bool) {
	if !strings.HasPrefix(input, "{") {
		return poetry.Item{}, false
	}
	if err := json.Unmarshal([]byte(input), &item); err != nil {
		return poetry.Item{}, false
	}
	if strings.TrimSpace(item.Title) == "" {
		return poetry.Item{}, false
	}
	return item, true
}

func inputLines(input string) []string {
	if item, ok := ParsePoem(input); ok {
		return poemLines(item)
	}
	lines := poetry.SplitOnPunctuation(input)
	if len(lines) == 0 {
		return []string{strings.TrimSpace(input)}
	}
	return lines
}

func poemLines(item poetry.Item) []string {
	lines := make([]string, 0, len(item.Content)+2)
	lines = append(lines, item.Title, item.Byline())
	return append(lines, item.Content...)
}
