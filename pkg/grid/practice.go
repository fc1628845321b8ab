package grid

import (
	errs "github.com/matzehuels/copybook/pkg/errors"
)

// PracticeWriting gives every character a block of RowsPerChar rows. The
// first cell of the block shows the character; the cells after it show the
// character's strokes one at a time, wrapping onto the following rows of
// the block. Cells past the last stroke are blank.
//
// The number of hint cells is the actual stroke count of the character.
// When hints are requested with a positive stroke number it is capped by
// that number, and an unknown stroke count falls back to it. Without hints
// requested an unknown count produces no hint cells. Strokes that do not fit
// in the block are dropped.
type PracticeWriting struct {
	base
	RowsPerChar int
}

// NewPracticeWriting returns a practice layout. A rowsPerChar of 0 selects
// DefaultRowsPerChar; negative values panic.
func NewPracticeWriting(rowsPerChar int, lookup StrokeLookup) *PracticeWriting {
	if rowsPerChar < 0 {
		errs.InvalidArgument("rows per character must not be negative, got %d", rowsPerChar)
	}
	if rowsPerChar == 0 {
		rowsPerChar = DefaultRowsPerChar
	}
	return &PracticeWriting{base: base{lookup: lookup}, RowsPerChar: rowsPerChar}
}

func (s *PracticeWriting) Kind() Kind { return KindPracticeWriting }

func (s *PracticeWriting) CalculateRows(input string, column int) int {
	mustPositiveColumn(column)
	return CharacterCount(input) * s.RowsPerChar
}

func (s *PracticeWriting) CreateCharArray(input string, column int, showStrokeHints bool, strokeNumber int) Grid {
	mustPositiveColumn(column)
	chars := SplitCharacters(input)
	g := make(Grid, 0, len(chars)*s.RowsPerChar)
	for _, ch := range chars {
		g = append(g, s.block(ch, column, s.hintCount(ch, showStrokeHints, strokeNumber))...)
	}
	return g
}

func (s *PracticeWriting) hintCount(char string, showStrokeHints bool, strokeNumber int) int {
	actual := s.actualStrokes(char)
	if showStrokeHints && strokeNumber > 0 {
		return CalculateMaxStrokeCells(actual, strokeNumber, strokeNumber)
	}
	return actual
}

func (s *PracticeWriting) block(char string, column, strokes int) []Row {
	rows := make([]Row, 0, s.RowsPerChar)
	shown := 0
	for i := range s.RowsPerChar {
		row := make(Row, 0, column)
		space := column
		if i == 0 {
			row = append(row, NewStandardItem(char))
			space--
		}
		n := min(max(0, strokes-shown), space)
		row = append(row, NewStrokeHintItems(char, shown+1, shown+n)...)
		shown += n
		rows = append(rows, s.fillRow(row, column))
	}
	return rows
}
