package grid

import (
	errs "github.com/matzehuels/copybook/pkg/errors"
)

// FontItem is the value of a single cell.
//
// Exactly one of three things is represented: a character (Char non-empty),
// a blank cell (Char empty, not a hint), or a stroke-order hint (Char empty,
// IsStrokeOrderHint set, OriginalChar non-empty, StrokeOrderIndex >= 1).
type FontItem struct {
	Char              string `json:"char"`
	IsStrokeOrderHint bool   `json:"isStrokeOrderHint"`
	StrokeOrderIndex  int    `json:"strokeOrderIndex"`
	OriginalChar      string `json:"originalChar"`
}

// CellKind classifies a FontItem.
type CellKind int

const (
	CellBlank CellKind = iota
	CellCharacter
	CellHint
)

func (k CellKind) String() string {
	switch k {
	case CellCharacter:
		return "character"
	case CellHint:
		return "hint"
	default:
		return "blank"
	}
}

// Kind reports what the cell displays.
func (f FontItem) Kind() CellKind {
	switch {
	case f.IsStrokeOrderHint:
		return CellHint
	case f.Char != "":
		return CellCharacter
	default:
		return CellBlank
	}
}

// NewStandardItem returns a cell showing char. An empty char yields a blank cell.
func NewStandardItem(char string) FontItem {
	return FontItem{Char: char}
}

// NewEmptyItem returns a blank cell.
func NewEmptyItem() FontItem {
	return FontItem{}
}

// NewStrokeHintItem returns a cell previewing the first index strokes of
// originalChar.
func NewStrokeHintItem(originalChar string, index int) FontItem {
	return FontItem{
		IsStrokeOrderHint: true,
		StrokeOrderIndex:  index,
		OriginalChar:      originalChar,
	}
}

// NewStandardItems returns one character cell per element of chars, in order.
func NewStandardItems(chars []string) []FontItem {
	items := make([]FontItem, len(chars))
	for i, c := range chars {
		items[i] = NewStandardItem(c)
	}
	return items
}

// NewRepeatedItems returns count cells all showing char.
// It panics if count is negative.
func NewRepeatedItems(char string, count int) []FontItem {
	if count < 0 {
		errs.InvalidArgument("item count must not be negative, got %d", count)
	}
	items := make([]FontItem, count)
	for i := range items {
		items[i] = NewStandardItem(char)
	}
	return items
}

// NewEmptyItems returns count blank cells. It panics if count is negative.
func NewEmptyItems(count int) []FontItem {
	if count < 0 {
		errs.InvalidArgument("item count must not be negative, got %d", count)
	}
	return make([]FontItem, count)
}

// NewStrokeHintItems returns hint cells for originalChar with indices
// from..to inclusive. An empty range (to < from) yields no cells.
// It panics if from is less than 1.
func NewStrokeHintItems(originalChar string, from, to int) []FontItem {
	if from < 1 {
		errs.InvalidArgument("stroke index must be at least 1, got %d", from)
	}
	if to < from {
		return nil
	}
	items := make([]FontItem, 0, to-from+1)
	for i := from; i <= to; i++ {
		items = append(items, NewStrokeHintItem(originalChar, i))
	}
	return items
}
