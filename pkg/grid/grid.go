package grid

import "strings"

// Row is one line of cells, left to right.
type Row []FontItem

// Grid is a row-major cell matrix, top to bottom.
type Grid []Row

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// Columns returns the width of the widest row.
func (g Grid) Columns() int {
	w := 0
	for _, r := range g {
		w = max(w, len(r))
	}
	return w
}

// Characters returns the character cells in reading order, skipping blanks
// and hints.
func (g Grid) Characters() []string {
	var out []string
	for _, r := range g {
		for _, c := range r {
			if c.Kind() == CellCharacter {
				out = append(out, c.Char)
			}
		}
	}
	return out
}

// Count returns the number of cells of the given kind.
func (g Grid) Count(kind CellKind) int {
	n := 0
	for _, r := range g {
		for _, c := range r {
			if c.Kind() == kind {
				n++
			}
		}
	}
	return n
}

// At returns the cell at p and whether it exists.
func (g Grid) At(p Position) (FontItem, bool) {
	if p.Row < 0 || p.Row >= len(g) || p.Col < 0 || p.Col >= len(g[p.Row]) {
		return FontItem{}, false
	}
	return g[p.Row][p.Col], true
}

// String renders the row's characters with "_" for blanks and "*" for hints.
func (r Row) String() string {
	var b strings.Builder
	for _, c := range r {
		switch c.Kind() {
		case CellCharacter:
			b.WriteString(c.Char)
		case CellHint:
			b.WriteByte('*')
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
