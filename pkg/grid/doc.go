// Package grid computes copybook cell layouts.
//
// # Overview
//
// A copybook is a practice sheet of square cells. Given a string of
// characters (or a poem), a [TemplateConfig] and an optional stroke-count
// lookup, this package decides what every cell shows:
//
//   - a character ([NewStandardItem])
//   - nothing, drawn as an empty practice cell ([NewEmptyItem])
//   - a stroke-order hint: the first N strokes of a character ([NewStrokeHintItem])
//
// The result is a [Grid], a row-major matrix of [FontItem] values ready for an
// external renderer. Every row is exactly the configured column count wide.
//
// # Strategies
//
// Layout is delegated to a [Strategy]. [GetStrategy] selects one from the
// configuration, evaluated in order:
//
//   - layout "poetry": [PoetryLayout] (centered title, byline and verses)
//   - layout "practice": [PracticeWriting] (a block of rows per character,
//     stroke hints cascading across rows)
//   - WordsPerCol == 1 and WordsPerRow >= 1: [MultiRowsOneWord] (each
//     character repeated at the start of WordsPerRow rows)
//   - WordsPerRow == 1 and 0 < WordsPerCol < Column: [FewWordsPerRow] (a few
//     characters per row separated by equal gaps)
//   - anything else: [FullRowWords] (dense packing, no gaps)
//
// # Formatting
//
// Most callers use [FormatGridData] or [FormatPoem]:
//
//	g := grid.FormatGridData("永和九年", grid.DefaultTemplate(), counts)
//	for _, row := range g {
//	    for _, cell := range row {
//	        // draw cell
//	    }
//	}
//
// # Characters
//
// Characters are user-perceived characters (grapheme clusters), see
// [SplitCharacters]. A character made of several code points occupies one
// cell.
//
// # Stroke Counts
//
// Stroke hints are bounded by the actual stroke count of a character when
// the [StrokeLookup] knows it. An unknown character is not an error: the
// requested stroke number is used instead. The lookup is read-only; it is
// never mutated by this package.
//
// # Errors
//
// Layout never fails on data. Empty input produces an empty grid, malformed
// poem payloads fall back to splitting on punctuation, and unknown stroke
// counts fall back to the requested count. Structural misuse, such as a
// non-positive column or a negative count, is a programming error and
// panics with an [errors.Error] carrying code INVALID_ARGUMENT; use
// [errors.Recover] at API boundaries.
//
// [errors.Error]: github.com/matzehuels/copybook/pkg/errors.Error
// [errors.Recover]: github.com/matzehuels/copybook/pkg/errors.Recover
package grid
