package grid

import (
	errs "github.com/matzehuels/copybook/pkg/errors"
)

// Kind identifies a concrete layout strategy.
type Kind int

const (
	KindFullRowWords Kind = iota
	KindMultiRowsOneWord
	KindFewWordsPerRow
	KindPracticeWriting
	KindPoetry
)

var kindNames = map[Kind]string{
	KindFullRowWords:     "full-row-words",
	KindMultiRowsOneWord: "multi-rows-one-word",
	KindFewWordsPerRow:   "few-words-per-row",
	KindPracticeWriting:  "practice-writing",
	KindPoetry:           "poetry",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return errs.New(errs.ErrCodeInvalidLayout, "unknown strategy kind %q", text)
}

// StrokeLookup reports the total stroke count of a single character.
// ok is false when the count is unknown.
type StrokeLookup interface {
	StrokeCount(char string) (count int, ok bool)
}

// Strategy lays out input characters on a grid of a given column width.
//
// CalculateRows and CreateCharArray always agree: the grid returned by
// CreateCharArray has exactly CalculateRows rows. Both panic if column is
// not positive.
type Strategy interface {
	Kind() Kind
	CalculateRows(input string, column int) int
	CreateCharArray(input string, column int, showStrokeHints bool, strokeNumber int) Grid
}

// base holds the helpers shared by all strategies.
type base struct {
	lookup StrokeLookup
}

// actualStrokes returns the known stroke count of char, or 0.
func (b base) actualStrokes(char string) int {
	if b.lookup == nil || CharacterCount(char) != 1 {
		return 0
	}
	n, ok := b.lookup.StrokeCount(char)
	if !ok || n < 0 {
		return 0
	}
	return n
}

func (b base) maxStrokeCells(char string, requested, space int) int {
	return CalculateMaxStrokeCells(b.actualStrokes(char), requested, space)
}

// addStrokeOrderCells appends hints 1..maxCells for char.
func (b base) addStrokeOrderCells(row Row, char string, maxCells int) Row {
	return append(row, NewStrokeHintItems(char, 1, maxCells)...)
}

// fillRow pads row to column cells. Rows already at or over column are
// returned unchanged.
func (b base) fillRow(row Row, column int) Row {
	return b.fillRowWith(row, column, "")
}

func (b base) fillRowWith(row Row, column int, fill string) Row {
	remaining := column - len(row)
	if remaining <= 0 {
		return row
	}
	if fill == "" {
		return append(row, NewEmptyItems(remaining)...)
	}
	return append(row, NewRepeatedItems(fill, remaining)...)
}

func mustPositiveColumn(column int) {
	if column <= 0 {
		errs.InvalidArgument("column must be positive, got %d", column)
	}
}
