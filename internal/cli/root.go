package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/copybook/pkg/buildinfo"
	"github.com/matzehuels/copybook/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Copybook lays out Chinese character practice sheets",
		Long:          `Copybook computes the cell grid of a calligraphy practice sheet (字帖) from text or a poem: which character goes in which cell, where stroke-order hints go, and which cells stay blank.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.trace {
				c.SetLogLevel(LogDebug)
				observability.NewLogHooks(c.Logger).Register()
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/copybook/config.toml)")
	root.PersistentFlags().BoolVar(&c.trace, "trace", false, "log pipeline, cache and HTTP events")

	root.AddCommand(c.gridCommand())
	root.AddCommand(c.poemCommand())
	root.AddCommand(c.strokesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
