package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/copybook/pkg/config"
	"github.com/matzehuels/copybook/pkg/grid"
	"github.com/matzehuels/copybook/pkg/pipeline"
	"github.com/matzehuels/copybook/pkg/render"
)

// gridFlags holds the command-line flags of the grid command.
type gridFlags struct {
	column      int
	wordsPerRow int
	wordsPerCol int
	layout      string
	rowsPerChar int
	shadow      bool
	strokes     int
	poem        string
	pick        bool
	formats     string
	output      string
	noCache     bool
	refresh     bool
}

// gridCommand creates the grid command, the main entry point of the CLI.
func (c *CLI) gridCommand() *cobra.Command {
	var f gridFlags

	cmd := &cobra.Command{
		Use:   "grid [text|-]",
		Short: "Lay out a practice sheet",
		Long: `Lay out a practice sheet from text or a poem.

The text is read from the arguments, or from stdin when the argument is "-".
Use --poem to take a poem from the library, or --pick to choose one
interactively. Flags override the [template] section of the config file.

Layouts and renderings are cached; stroke counts are fetched once per
character and kept in the same cache.`,
		Example: `  copybook grid 永和九年 --column 8 --shadow --strokes 3
  copybook grid --poem 1 --layout poetry -f text
  echo 春眠不觉晓 | copybook grid - --words-per-row 2 --words-per-col 1`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			tmpl, err := f.template(cmd, cfg.Template)
			if err != nil {
				return err
			}
			return c.runGrid(cmd.Context(), cfg, tmpl, args, f)
		},
	}

	cmd.Flags().IntVarP(&f.column, "column", "c", grid.DefaultColumn, "cells per row")
	cmd.Flags().IntVar(&f.wordsPerRow, "words-per-row", 1, "rows given to each character")
	cmd.Flags().IntVar(&f.wordsPerCol, "words-per-col", 0, "characters per row (default: column)")
	cmd.Flags().StringVarP(&f.layout, "layout", "l", string(grid.LayoutNormal), "layout: normal, practice, poetry")
	cmd.Flags().IntVar(&f.rowsPerChar, "rows-per-char", 0, "rows per character in the practice layout (default 4)")
	cmd.Flags().BoolVar(&f.shadow, "shadow", false, "draw stroke-order hint cells")
	cmd.Flags().IntVar(&f.strokes, "strokes", grid.DefaultStrokeNumber, "maximum stroke-order hints per character")
	cmd.Flags().StringVarP(&f.poem, "poem", "p", "", "lay out the library poem with this id")
	cmd.Flags().BoolVar(&f.pick, "pick", false, "choose a poem interactively")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): json (default), text (comma-separated)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute cached layouts and refetch stroke data")

	_ = cmd.RegisterFlagCompletionFunc("poem", c.completePoemIDs)
	_ = cmd.RegisterFlagCompletionFunc("layout", func(*cobra.Command, []string, string) ([]cobra.Completion, cobra.ShellCompDirective) {
		layouts := make([]cobra.Completion, len(grid.LayoutTypes))
		for i, l := range grid.LayoutTypes {
			layouts[i] = string(l)
		}
		return layouts, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(render.Formats, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// template applies the flags the user set on top of base.
func (f gridFlags) template(cmd *cobra.Command, base grid.TemplateConfig) (grid.TemplateConfig, error) {
	t := base
	flags := cmd.Flags()
	if flags.Changed("column") {
		t.Column = f.column
		if !flags.Changed("words-per-col") && base.WordsPerCol == base.Column {
			t.WordsPerCol = 0 // follow the new column
		}
	}
	if flags.Changed("words-per-row") {
		t.WordsPerRow = f.wordsPerRow
	}
	if flags.Changed("words-per-col") {
		t.WordsPerCol = f.wordsPerCol
	}
	if flags.Changed("layout") {
		layout, err := grid.ParseLayoutType(f.layout)
		if err != nil {
			return t, err
		}
		t.LayoutType = layout
	}
	if flags.Changed("rows-per-char") {
		t.RowsPerChar = f.rowsPerChar
	}
	if flags.Changed("shadow") {
		t.ShowStrokeOrderShadow = f.shadow
	}
	if flags.Changed("strokes") {
		t.StrokeNumber = f.strokes
	}
	t.SetDefaults()
	return t, t.Validate()
}

func (c *CLI) runGrid(ctx context.Context, cfg config.Config, tmpl grid.TemplateConfig, args []string, f gridFlags) error {
	logger := loggerFromContext(ctx)

	runner, closeRunner, err := c.newRunner(ctx, cfg, runnerOpts{noCache: f.noCache, refresh: f.refresh})
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer closeRunner()

	opts := pipeline.Options{
		PoemID:   f.poem,
		Template: tmpl,
		Formats:  parseFormats(f.formats),
		Refresh:  f.refresh,
		Logger:   logger,
	}
	switch {
	case f.pick:
		item, err := pickPoem(ctx, runner.Poems)
		if err != nil {
			return err
		}
		if item == nil {
			printInfo("No poem selected")
			return nil
		}
		opts.PoemID = item.ID
	case f.poem == "":
		text, err := readInput(args, os.Stdin, tmpl.LayoutType)
		if err != nil {
			return err
		}
		opts.Text = text
	case len(args) > 0:
		return fmt.Errorf("text arguments cannot be combined with --poem")
	}

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, "Laying out sheet...")
	spinner.Start()

	res, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Laid out %d characters as %s", res.Stats.Characters, res.Kind))

	if f.output == "" {
		return writeArtifactsTo(os.Stdout, res.Artifacts, opts.Formats)
	}
	paths, err := writeArtifactFiles(res.Artifacts, opts.Formats, f.output)
	if err != nil {
		return err
	}
	printSuccess("Generated %s sheet", StyleHighlight.Render(res.Kind.String()))
	for _, p := range paths {
		printFile(p)
	}
	printStats(res.Stats.Rows, res.Stats.Hints, res.CacheInfo.LayoutHit && res.CacheInfo.RenderHit)
	return nil
}

// readInput returns the text to lay out. "-" reads stdin. Line breaks are
// removed unless the input is a poem document for the poetry layout.
func readInput(args []string, stdin io.Reader, layout grid.LayoutType) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("text, --poem or --pick is required")
	}
	text := strings.Join(args, "")
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		text = strings.TrimSpace(string(data))
	}
	if layout == grid.LayoutPoetry && strings.HasPrefix(text, "{") {
		return text, nil
	}
	return strings.NewReplacer("\r\n", "", "\n", "", "\r", "").Replace(text), nil
}

// writeArtifactsTo writes each artifact in format order, newline-terminated.
func writeArtifactsTo(w io.Writer, artifacts map[string][]byte, formats []string) error {
	for _, format := range formats {
		data := artifacts[format]
		if _, err := w.Write(data); err != nil {
			return err
		}
		if len(data) > 0 && data[len(data)-1] != '\n' {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeArtifactFiles writes artifacts to output. With more than one format
// output is a base path and each file gets the format's extension.
func writeArtifactFiles(artifacts map[string][]byte, formats []string, output string) ([]string, error) {
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := output
		if len(formats) > 1 {
			path = strings.TrimSuffix(output, filepath.Ext(output)) + "." + extension(format)
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create output dir: %w", err)
			}
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func extension(format string) string {
	if format == render.FormatText {
		return "txt"
	}
	return format
}
