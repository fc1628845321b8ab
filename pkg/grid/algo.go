package grid

import (
	errs "github.com/matzehuels/copybook/pkg/errors"
)

// Position is a zero-based cell coordinate.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CalculateRows returns ceil(totalItems / itemsPerRow).
// It panics if itemsPerRow is not positive or totalItems is negative.
func CalculateRows(totalItems, itemsPerRow int) int {
	if itemsPerRow <= 0 {
		errs.InvalidArgument("items per row must be positive, got %d", itemsPerRow)
	}
	if totalItems < 0 {
		errs.InvalidArgument("item count must not be negative, got %d", totalItems)
	}
	return ceilDiv(totalItems, itemsPerRow)
}

// CalculateItemsPerRow returns ceil(totalItems / totalRows).
// It panics if totalRows is not positive or totalItems is negative.
func CalculateItemsPerRow(totalItems, totalRows int) int {
	if totalRows <= 0 {
		errs.InvalidArgument("row count must be positive, got %d", totalRows)
	}
	if totalItems < 0 {
		errs.InvalidArgument("item count must not be negative, got %d", totalItems)
	}
	return ceilDiv(totalItems, totalRows)
}

// CalculateMaxStrokeCells returns how many stroke-hint cells to emit.
//
// The result is the smallest of requested, the actual stroke count, and the
// available space. An actual count of 0 means unknown and falls back to the
// requested count. The result is never negative.
func CalculateMaxStrokeCells(actual, requested, space int) int {
	limit := requested
	if actual > 0 {
		limit = actual
	}
	return max(0, min(requested, limit, space))
}

// CalculateSpaceDistribution returns floor(totalSpace / gaps), or 0 when
// there are no gaps.
func CalculateSpaceDistribution(totalSpace, gaps int) int {
	if gaps <= 0 {
		return 0
	}
	return totalSpace / gaps
}

// Clamp limits value to [lo, hi].
func Clamp(value, lo, hi int) int {
	return max(lo, min(hi, value))
}

// CalculateGridPosition maps a row-major index to its cell.
// It panics if column is not positive.
func CalculateGridPosition(index, column int) Position {
	if column <= 0 {
		errs.InvalidArgument("column must be positive, got %d", column)
	}
	return Position{Row: index / column, Col: index % column}
}

// CalculateGridSize returns the number of cells in a rows x columns grid.
func CalculateGridSize(rows, columns int) int {
	return rows * columns
}

// SplitChunks splits chars into consecutive chunks of at most size elements.
// It panics if size is not positive.
func SplitChunks(chars []string, size int) [][]string {
	if size <= 0 {
		errs.InvalidArgument("chunk size must be positive, got %d", size)
	}
	chunks := make([][]string, 0, ceilDiv(len(chars), size))
	for i := 0; i < len(chars); i += size {
		chunks = append(chunks, chars[i:min(i+size, len(chars))])
	}
	return chunks
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
