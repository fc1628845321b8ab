package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/copybook/pkg/server"
)

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the sheet API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}

			runner, closeRunner, err := c.newRunner(ctx, cfg, runnerOpts{})
			if err != nil {
				return err
			}
			defer closeRunner()

			logger := loggerFromContext(ctx)
			logger.Info("starting server", "cache", cfg.Cache.Backend, "strokes", cfg.Strokes.BaseURL)
			return server.New(runner, logger).Serve(ctx, cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address (overrides server.addr)")
	return cmd
}
