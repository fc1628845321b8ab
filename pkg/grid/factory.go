package grid

// GetStrategy selects the layout strategy for cfg. It never returns nil;
// configurations that match no specific strategy use FullRowWords.
func GetStrategy(cfg TemplateConfig, lookup StrokeLookup) Strategy {
	switch {
	case cfg.LayoutType == LayoutPoetry:
		return NewPoetryLayout(lookup)
	case cfg.LayoutType == LayoutPractice:
		return NewPracticeWriting(max(0, cfg.RowsPerChar), lookup)
	case cfg.WordsPerCol == 1 && cfg.WordsPerRow >= 1:
		return NewMultiRowsOneWord(cfg.WordsPerRow, lookup)
	case cfg.WordsPerRow == 1 && cfg.WordsPerCol > 0 && cfg.WordsPerCol < cfg.Column:
		return NewFewWordsPerRow(cfg.WordsPerCol, lookup)
	default:
		return NewFullRowWords(lookup)
	}
}
