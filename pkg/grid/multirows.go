package grid

import (
	errs "github.com/matzehuels/copybook/pkg/errors"
)

// MultiRowsOneWord gives every character RowsPerWord consecutive rows. Each
// row starts with the character, optionally followed by stroke hints, and is
// padded with blanks.
type MultiRowsOneWord struct {
	base
	RowsPerWord int
}

// NewMultiRowsOneWord panics if rowsPerWord is less than 1.
func NewMultiRowsOneWord(rowsPerWord int, lookup StrokeLookup) *MultiRowsOneWord {
	if rowsPerWord < 1 {
		errs.InvalidArgument("rows per word must be at least 1, got %d", rowsPerWord)
	}
	return &MultiRowsOneWord{base: base{lookup: lookup}, RowsPerWord: rowsPerWord}
}

func (s *MultiRowsOneWord) Kind() Kind { return KindMultiRowsOneWord }

func (s *MultiRowsOneWord) CalculateRows(input string, column int) int {
	mustPositiveColumn(column)
	return CharacterCount(input) * s.RowsPerWord
}

func (s *MultiRowsOneWord) CreateCharArray(input string, column int, showStrokeHints bool, strokeNumber int) Grid {
	mustPositiveColumn(column)
	chars := SplitCharacters(input)
	g := make(Grid, 0, len(chars)*s.RowsPerWord)
	for _, ch := range chars {
		for range s.RowsPerWord {
			row := make(Row, 0, column)
			row = append(row, NewStandardItem(ch))
			if showStrokeHints && strokeNumber > 0 {
				row = s.addStrokeOrderCells(row, ch, s.maxStrokeCells(ch, strokeNumber, column-1))
			}
			g = append(g, s.fillRow(row, column))
		}
	}
	return g
}
