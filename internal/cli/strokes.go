package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/copybook/pkg/errors"
	"github.com/matzehuels/copybook/pkg/grid"
	"github.com/matzehuels/copybook/pkg/strokes"
)

// strokesCommand creates the strokes command for looking up stroke counts.
func (c *CLI) strokesCommand() *cobra.Command {
	var (
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "strokes <chars>",
		Short: "Look up stroke counts",
		Long: `Look up the stroke count of every character in the arguments.

Missing counts are fetched from the stroke-data source and stored in the
cache. Characters without stroke data are listed as unknown.`,
		Example: `  copybook strokes 永和九年`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, "")
			if err := errs.ValidateText(text); err != nil {
				return err
			}
			return c.runStrokes(cmd.Context(), text, runnerOpts{noCache: noCache, refresh: refresh})
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "refetch stroke data")

	return cmd
}

func (c *CLI) runStrokes(ctx context.Context, text string, ro runnerOpts) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	runner, closeRunner, err := c.newRunner(ctx, cfg, ro)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer closeRunner()

	spinner := newSpinnerWithContext(ctx, "Fetching stroke data...")
	spinner.Start()
	counts, err := runner.Strokes.Populate(ctx, text)
	if err != nil {
		spinner.StopWithError("Lookup failed")
		return err
	}
	spinner.Stop()

	fmt.Println(strokesTable(text, counts))
	return nil
}

// strokesTable lists each distinct character of text with its count.
func strokesTable(text string, counts strokes.Counts) string {
	seen := make(map[string]bool)
	var rows [][]string
	for _, ch := range grid.SplitCharacters(text) {
		if seen[ch] || errs.ValidateCharacter(ch) != nil {
			continue
		}
		seen[ch] = true
		count := "unknown"
		if n, ok := counts.StrokeCount(ch); ok {
			count = strconv.Itoa(n)
		}
		rows = append(rows, []string{ch, count})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Char", "Strokes").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(rows) && rows[row][1] == "unknown":
				return StyleDim
			case col == 1:
				return StyleNumber
			}
			return StyleValue
		}).
		Render()
}
