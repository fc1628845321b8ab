package grid

// FullRowWords packs Column characters into every row without gaps. The
// last row is padded with blanks.
type FullRowWords struct {
	base
}

func NewFullRowWords(lookup StrokeLookup) *FullRowWords {
	return &FullRowWords{base: base{lookup: lookup}}
}

func (s *FullRowWords) Kind() Kind { return KindFullRowWords }

func (s *FullRowWords) CalculateRows(input string, column int) int {
	mustPositiveColumn(column)
	return CalculateRows(CharacterCount(input), column)
}

// CreateCharArray ignores stroke hints; every cell is taken by a character.
func (s *FullRowWords) CreateCharArray(input string, column int, _ bool, _ int) Grid {
	mustPositiveColumn(column)
	chunks := SplitChunks(SplitCharacters(input), column)
	g := make(Grid, 0, len(chunks))
	for _, chunk := range chunks {
		row := make(Row, 0, column)
		row = append(row, NewStandardItems(chunk)...)
		g = append(g, s.fillRow(row, column))
	}
	return g
}
