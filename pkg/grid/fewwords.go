package grid

import (
	errs "github.com/matzehuels/copybook/pkg/errors"
)

// FewWordsPerRow places WordsPerRow characters on each row, separated by
// blank gaps of equal width.
//
// With two characters per row the row is split in halves and each character
// starts its half. Otherwise a gap precedes the first character and follows
// every character but the last. Stroke hints, when requested, are drawn
// inside the gap after a character (or its half) and never widen it.
type FewWordsPerRow struct {
	base
	WordsPerRow int
}

// NewFewWordsPerRow panics if wordsPerRow is less than 1.
func NewFewWordsPerRow(wordsPerRow int, lookup StrokeLookup) *FewWordsPerRow {
	if wordsPerRow < 1 {
		errs.InvalidArgument("words per row must be at least 1, got %d", wordsPerRow)
	}
	return &FewWordsPerRow{base: base{lookup: lookup}, WordsPerRow: wordsPerRow}
}

func (s *FewWordsPerRow) Kind() Kind { return KindFewWordsPerRow }

func (s *FewWordsPerRow) CalculateRows(input string, column int) int {
	s.checkColumn(column)
	return CalculateRows(CharacterCount(input), s.WordsPerRow)
}

// GapWidth returns the blank cells between characters for a given column.
// n characters and n gaps always fit within column.
func (s *FewWordsPerRow) GapWidth(column int) int {
	n := s.WordsPerRow
	return max(0, min(
		CalculateSpaceDistribution(column, n+1),
		CalculateSpaceDistribution(column-n, n),
	))
}

func (s *FewWordsPerRow) CreateCharArray(input string, column int, showStrokeHints bool, strokeNumber int) Grid {
	s.checkColumn(column)
	hints := showStrokeHints && strokeNumber > 0
	chunks := SplitChunks(SplitCharacters(input), s.WordsPerRow)
	g := make(Grid, 0, len(chunks))
	for _, chunk := range chunks {
		var row Row
		if s.WordsPerRow == 2 {
			row = s.halvesRow(chunk, column, hints, strokeNumber)
		} else {
			row = s.gappedRow(chunk, column, hints, strokeNumber)
		}
		g = append(g, s.fillRow(row, column))
	}
	return g
}

func (s *FewWordsPerRow) halvesRow(chunk []string, column int, hints bool, strokeNumber int) Row {
	half := column / 2
	row := make(Row, 0, column)

	first := chunk[0]
	row = append(row, NewStandardItem(first))
	if hints {
		row = s.addStrokeOrderCells(row, first, s.maxStrokeCells(first, strokeNumber, half-1))
	}
	row = s.fillRow(row, half)

	if len(chunk) < 2 {
		return append(row, NewEmptyItem())
	}
	second := chunk[1]
	row = append(row, NewStandardItem(second))
	if hints {
		row = s.addStrokeOrderCells(row, second, s.maxStrokeCells(second, strokeNumber, column-len(row)))
	}
	return row
}

func (s *FewWordsPerRow) gappedRow(chunk []string, column int, hints bool, strokeNumber int) Row {
	gap := s.GapWidth(column)
	row := make(Row, 0, column)
	row = append(row, NewEmptyItems(gap)...)

	last := s.WordsPerRow - 1
	for k := range s.WordsPerRow {
		if k >= len(chunk) {
			row = append(row, NewEmptyItem())
			if k < last {
				row = append(row, NewEmptyItems(gap)...)
			}
			continue
		}
		ch := chunk[k]
		row = append(row, NewStandardItem(ch))
		if k == last {
			continue
		}
		used := 0
		if hints {
			used = s.maxStrokeCells(ch, strokeNumber, gap)
			row = s.addStrokeOrderCells(row, ch, used)
		}
		row = append(row, NewEmptyItems(gap-used)...)
	}
	return row
}

func (s *FewWordsPerRow) checkColumn(column int) {
	mustPositiveColumn(column)
	if s.WordsPerRow > column {
		errs.InvalidArgument("words per row (%d) exceeds column (%d)", s.WordsPerRow, column)
	}
}
