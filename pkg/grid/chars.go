package grid

import "github.com/rivo/uniseg"

// SplitCharacters splits s into user-perceived characters.
func SplitCharacters(s string) []string {
	if s == "" {
		return nil
	}
	chars := make([]string, 0, len(s)/3+1)
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		chars = append(chars, g.Str())
	}
	return chars
}

// CharacterCount returns the number of user-perceived characters in s.
func CharacterCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
