package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/copybook/pkg/errors"
	"github.com/matzehuels/copybook/pkg/poetry"
)

// poemCommand creates the poem command for browsing the poetry library.
func (c *CLI) poemCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "poem",
		Short: "Browse the poetry library",
	}

	cmd.AddCommand(c.poemListCommand())
	cmd.AddCommand(c.poemShowCommand())
	cmd.AddCommand(c.poemPickCommand())
	cmd.AddCommand(c.poemSeedCommand())

	return cmd
}

// withLibrary opens the configured poem library for the duration of fn.
func (c *CLI) withLibrary(ctx context.Context, fn func(poetry.Library) error) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	lib, closeLib, err := cfg.Poetry.Open(ctx)
	if err != nil {
		return fmt.Errorf("open poem library: %w", err)
	}
	defer closeLib(context.Background())
	return fn(lib)
}

// completePoemIDs completes poem ids from the configured library, showing
// each poem's label as the description.
func (c *CLI) completePoemIDs(cmd *cobra.Command, _ []string, _ string) ([]cobra.Completion, cobra.ShellCompDirective) {
	var ids []cobra.Completion
	err := c.withLibrary(cmd.Context(), func(lib poetry.Library) error {
		items, err := lib.List(cmd.Context())
		for _, item := range items {
			ids = append(ids, cobra.CompletionWithDesc(item.ID, item.Label()))
		}
		return err
	})
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

func (c *CLI) poemListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all poems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withLibrary(cmd.Context(), func(lib poetry.Library) error {
				items, err := lib.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(items) == 0 {
					printInfo("The poem library is empty")
					return nil
				}
				fmt.Println(poemTable(items))
				return nil
			})
		},
	}
}

func (c *CLI) poemShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "show <id>",
		Short:             "Show one poem",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completePoemIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errs.ValidatePoemID(args[0]); err != nil {
				return err
			}
			return c.withLibrary(cmd.Context(), func(lib poetry.Library) error {
				item, err := lib.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printPoem(item)
				printNewline()
				printNextStep("Lay it out", fmt.Sprintf("%s grid --poem %s --layout poetry", appName, item.ID))
				return nil
			})
		},
	}
}

func (c *CLI) poemPickCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose a poem interactively and print its id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withLibrary(cmd.Context(), func(lib poetry.Library) error {
				item, err := pickPoem(cmd.Context(), lib)
				if err != nil || item == nil {
					return err
				}
				fmt.Println(item.ID)
				return nil
			})
		},
	}
}

func (c *CLI) poemSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Copy the built-in poems into the configured MongoDB library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withLibrary(cmd.Context(), func(lib poetry.Library) error {
				mongo, ok := lib.(*poetry.MongoLibrary)
				if !ok {
					return fmt.Errorf("poetry.mongo_uri is not configured")
				}
				items, _ := poetry.Builtin().List(cmd.Context())
				if err := mongo.Seed(cmd.Context(), items); err != nil {
					return fmt.Errorf("seed poems: %w", err)
				}
				printSuccess("Seeded %d poems", len(items))
				return nil
			})
		},
	}
}

// poemTable renders items as a bordered table.
func poemTable(items []poetry.Item) string {
	rows := make([][]string, len(items))
	for i, p := range items {
		rows[i] = []string{p.ID, p.Title, p.Dynasty, p.Author, fmt.Sprintf("%d", len(p.Content))}
	}
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Title", "Dynasty", "Author", "Verses").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return StyleNumber
			}
			return StyleValue
		}).
		Render()
}

// printPoem prints a poem with its metadata.
func printPoem(item poetry.Item) {
	fmt.Println(StyleTitle.Render(item.Title))
	printKeyValue("ID", item.ID)
	if item.Dynasty != "" {
		printKeyValue("Dynasty", item.Dynasty)
	}
	if item.Author != "" {
		printKeyValue("Author", item.Author)
	}
	printNewline()
	fmt.Println("  " + strings.Join(item.Content, "\n  "))
}
