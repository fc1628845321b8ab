package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette, loosely after ink on rice paper: a dark ink gray for muted text
// and a seal-red accent for hint cells.
var (
	colorInk    = lipgloss.Color("252")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
	colorJade   = lipgloss.Color("36")
	colorSeal   = lipgloss.Color("160")
	colorBamboo = lipgloss.Color("71")
	colorSky    = lipgloss.Color("75")
)

var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorJade)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorJade)
	StyleDim       = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue     = lipgloss.NewStyle().Foreground(colorInk)
	StyleNumber    = lipgloss.NewStyle().Foreground(colorJade)
)

var (
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorJade)
	styleCommand     = lipgloss.NewStyle().Foreground(colorSky)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

// statusMark is the leading glyph of a one-line status message.
type statusMark struct {
	glyph string
	style lipgloss.Style
}

var (
	markSuccess = statusMark{"✓", lipgloss.NewStyle().Foreground(colorBamboo)}
	markError   = statusMark{"✗", lipgloss.NewStyle().Foreground(colorSeal)}
	markInfo    = statusMark{"›", lipgloss.NewStyle().Foreground(colorGray)}
)

// stdout receives all human-readable command output. Artifacts written to
// stdout by the grid command bypass it.
var stdout io.Writer = os.Stdout

func (m statusMark) print(format string, args ...any) {
	fmt.Fprintln(stdout, m.style.Render(m.glyph)+" "+fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...any) { markSuccess.print(format, args...) }

func printError(format string, args ...any) { markError.print(format, args...) }

func printInfo(format string, args ...any) { markInfo.print(format, args...) }

// printDetail prints an indented, muted line under a status message.
func printDetail(format string, args ...any) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(path string) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Fprintln(stdout, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// printStats prints "  6 rows · 12 hints · cached" for a finished sheet.
func printStats(rows, hints int, cached bool) {
	parts := []string{fmt.Sprintf("%d rows", rows)}
	if hints > 0 {
		parts = append(parts, fmt.Sprintf("%d hints", hints))
	}
	line := StyleDim.Render(strings.Join(parts, " · ") + " · ")

	if cached {
		line += lipgloss.NewStyle().Foreground(colorBamboo).Render("cached")
	} else {
		line += lipgloss.NewStyle().Foreground(colorGray).Render("fresh")
	}
	fmt.Fprintln(stdout, "  "+line)
}

func printNextStep(description, cmd string) {
	fmt.Fprintln(stdout, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

func printNewline() {
	fmt.Fprintln(stdout)
}
