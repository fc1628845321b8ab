package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/copybook/pkg/grid"
)

const blankCell = "·"

var superscripts = []rune("⁰¹²³⁴⁵⁶⁷⁸⁹")

var (
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	blankStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#45475A"))
	charStyle  = lipgloss.NewStyle().Bold(true)
)

// Text renders g as a bordered table, one table row per grid row.
// Characters appear as-is, stroke-order hints as their character followed
// by the superscript stroke index ("永³"), and blanks as "·".
func Text(g grid.Grid, opts ...Option) string {
	o := collect(opts)
	if len(g) == 0 {
		return ""
	}

	cells := make([][]string, len(g))
	width := runewidth.StringWidth(blankCell)
	for i, row := range g {
		cells[i] = make([]string, len(row))
		for j, item := range row {
			cells[i][j] = cellLabel(item)
			width = max(width, runewidth.StringWidth(cells[i][j]))
		}
	}
	for i := range cells {
		for j := range cells[i] {
			cells[i][j] = runewidth.FillRight(cells[i][j], width)
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		Rows(cells...)
	if o.styled {
		t = t.BorderStyle(blankStyle).
			StyleFunc(func(row, col int) lipgloss.Style {
				item, ok := g.At(grid.Position{Row: row, Col: col})
				if !ok {
					return lipgloss.NewStyle()
				}
				switch item.Kind() {
				case grid.CellCharacter:
					return charStyle
				case grid.CellHint:
					return hintStyle
				default:
					return blankStyle
				}
			})
	}

	var b strings.Builder
	if o.kind != nil {
		b.WriteString(o.kind.String())
		b.WriteString("\n")
	}
	b.WriteString(t.Render())
	return b.String()
}

func cellLabel(item grid.FontItem) string {
	switch item.Kind() {
	case grid.CellCharacter:
		return item.Char
	case grid.CellHint:
		return item.OriginalChar + superscript(item.StrokeOrderIndex)
	default:
		return blankCell
	}
}

func superscript(n int) string {
	var b strings.Builder
	for _, d := range strconv.Itoa(n) {
		if d == '-' {
			b.WriteRune('⁻')
			continue
		}
		b.WriteRune(superscripts[d-'0'])
	}
	return b.String()
}
