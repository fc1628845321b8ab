package strokes

import (
	"maps"

	"github.com/rivo/uniseg"
)

// Counts maps single characters to their stroke counts.
type Counts map[string]int

// StrokeCount returns the stroke count for char. It misses when char is
// absent or is not exactly one user-perceived character.
func (c Counts) StrokeCount(char string) (int, bool) {
	if uniseg.GraphemeClusterCount(char) != 1 {
		return 0, false
	}
	n, ok := c[char]
	return n, ok
}

// Clone returns an independent copy.
func (c Counts) Clone() Counts {
	if c == nil {
		return Counts{}
	}
	return maps.Clone(c)
}

// Merge returns a copy of c overlaid with other.
func (c Counts) Merge(other Counts) Counts {
	out := c.Clone()
	maps.Copy(out, other)
	return out
}
