package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/copybook/pkg/cache"
	"github.com/matzehuels/copybook/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the layout and stroke cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear cached layouts, renderings and stroke counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			backend, err := cfg.Cache.Open(cmd.Context())
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer backend.Close()

			cl, ok := backend.(cache.Clearer)
			if !ok {
				printInfo("The %s cache backend cannot be cleared", cfg.Cache.Backend)
				return nil
			}
			count, err := cl.Clear(cmd.Context())
			if err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			if count == 0 {
				printInfo("Cache is empty")
				return nil
			}
			printSuccess("Cleared %d cached entries", count)
			printDetail("Backend: %s", describeCache(cfg.Cache))
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the cache is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			fmt.Println(describeCache(cfg.Cache))
			return nil
		},
	}
}

// describeCache returns the file cache directory, or a description of the
// other backends.
func describeCache(cc config.CacheConfig) string {
	switch cc.Backend {
	case config.BackendRedis:
		return fmt.Sprintf("redis://%s/%d", cc.RedisAddr, cc.RedisDB)
	case config.BackendMemory:
		return "(in memory)"
	case config.BackendNone:
		return "(disabled)"
	}
	if cc.Dir != "" {
		return cc.Dir
	}
	dir, err := config.DefaultCacheDir()
	if err != nil {
		return "(unknown)"
	}
	return dir
}
