package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gateprep/gatefeed/internal/cache"
	"github.com/gateprep/gatefeed/internal/content"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and manage the content fallback cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cached entry counts per kind",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCache(cmd)
		if err != nil {
			return err
		}
		stats := c.Stats()
		for _, kind := range content.Kinds {
			fmt.Printf("%-10s %d\n", kind, stats[kind])
		}
		return nil
	},
}

var cacheSampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print a random cached entry of the given kind",
	RunE: func(cmd *cobra.Command, args []string) error {
		kindStr, _ := cmd.Flags().GetString("kind")
		kind, err := content.ParseKind(kindStr)
		if err != nil {
			return err
		}

		c, err := openCache(cmd)
		if err != nil {
			return err
		}
		gc, err := c.Sample(kind)
		if err != nil {
			return err
		}
		return printContent(gc)
	},
}

var cacheSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Prime empty kinds with the built-in starter content",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCache(cmd)
		if err != nil {
			return err
		}
		added, err := c.SeedIfEmpty(content.Seed())
		if err != nil {
			return err
		}
		fmt.Printf("seeded %d entries\n", added)
		return nil
	},
}

func init() {
	cacheSampleCmd.Flags().String("kind", "question", "Content kind: question, fact, formula, language")

	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheSampleCmd)
	cacheCmd.AddCommand(cacheSeedCmd)
}

func openCache(cmd *cobra.Command) (*cache.Cache, error) {
	log, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}
	path, err := resolveCachePath(cmd)
	if err != nil {
		return nil, err
	}
	return cache.New(path, log), nil
}
