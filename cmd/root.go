package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "gatefeed",
	Short: "AI content pipeline for GATE Civil exam prep",
	Long:  "Gatefeed generates validated GATE Civil Engineering prep content (questions, facts, formulas, language tips) with multi-provider failover and a local fallback cache.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("cache", "", "Path to the content cache file (overrides GATEFEED_CACHE env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to the SQLite event log (overrides GATEFEED_DB env var)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the process logger. Debug level with --verbose,
// production config otherwise.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// resolveCachePath returns the cache file path using --cache (highest
// priority), then GATEFEED_CACHE, then the default XDG path.
func resolveCachePath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("cache"); p != "" {
		return p, nil
	}
	if p := os.Getenv("GATEFEED_CACHE"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "gatefeed", "content_cache.json"), nil
}
