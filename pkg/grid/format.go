package grid

import "github.com/matzehuels/copybook/pkg/poetry"

// FormatGridData lays out input according to cfg. For the poetry layout,
// input is a JSON-encoded poem (see [PoetryLayout]).
//
// The result is nil when there is nothing to render. lookup may be nil. It
// panics if cfg.Column is not positive.
func FormatGridData(input string, cfg TemplateConfig, lookup StrokeLookup) Grid {
	s := GetStrategy(cfg, lookup)
	return nonEmpty(s.CreateCharArray(input, cfg.Column, cfg.ShowStrokeOrderShadow, cfg.StrokeNumber))
}

// FormatPoem lays out a decoded poem. With the poetry layout the poem is
// centered line by line; any other layout receives the verses as plain text.
func FormatPoem(item poetry.Item, cfg TemplateConfig, lookup StrokeLookup) Grid {
	if cfg.LayoutType != LayoutPoetry {
		return FormatGridData(item.Text(), cfg, lookup)
	}
	return nonEmpty(NewPoetryLayout(lookup).LayoutPoem(item, cfg.Column))
}

func nonEmpty(g Grid) Grid {
	if len(g) == 0 {
		return nil
	}
	return g
}
