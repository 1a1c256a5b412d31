package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gateprep/gatefeed/internal/cache"
	"github.com/gateprep/gatefeed/internal/content"
	"github.com/gateprep/gatefeed/internal/feed"
	"github.com/gateprep/gatefeed/internal/llm"
	"github.com/gateprep/gatefeed/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one piece of content and print it as JSON",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().String("kind", "question", "Content kind: question, fact, formula, language")
	generateCmd.Flags().String("topic", "", "Topic code (e.g. SM, FM, RCC); empty for any topic")
	generateCmd.Flags().String("difficulty", "medium", "Question difficulty: easy, medium, hard")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	kindStr, _ := cmd.Flags().GetString("kind")
	kind, err := content.ParseKind(kindStr)
	if err != nil {
		return err
	}
	topic, _ := cmd.Flags().GetString("topic")
	difficulty, _ := cmd.Flags().GetString("difficulty")

	svc, cleanup, err := buildService(cmd, log)
	if err != nil {
		return err
	}
	defer cleanup()

	gc, err := svc.GetContent(cmd.Context(), content.Request{
		Kind:       kind,
		Topic:      topic,
		Difficulty: content.Difficulty(difficulty),
	})
	if err != nil {
		return err
	}

	return printContent(gc)
}

// buildService wires config, the event log, the provider chain, and the
// cache into a feed.Service. The returned cleanup closes the event store.
func buildService(cmd *cobra.Command, log *zap.Logger) (*feed.Service, func(), error) {
	cachePath, err := resolveCachePath(cmd)
	if err != nil {
		return nil, nil, err
	}
	contentCache := cache.New(cachePath, log)

	cleanup := func() {}

	// The event log is bookkeeping; an unopenable database disables it
	// rather than failing the request.
	var repo store.EventRepo
	st, err := openStore(cmd)
	if err != nil {
		log.Warn("event log unavailable", zap.Error(err))
	} else {
		repo = st.EventRepo()
		cleanup = func() { st.Close() }
	}

	cfg := llm.ConfigFromEnv()
	if !cfg.Configured() {
		log.Info("no provider credentials configured, cache tier only")
		return feed.New(nil, contentCache, log), cleanup, nil
	}

	chain, err := llm.NewChain(cmd.Context(), cfg, repo, log)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("build provider chain: %w", err)
	}

	return feed.New(chain, contentCache, log), cleanup, nil
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		if err := store.EnsureDir(p); err != nil {
			return nil, err
		}
		return store.Open(p)
	}
	p, err := store.DefaultDBPath()
	if err != nil {
		return nil, err
	}
	return store.Open(p)
}

func printContent(gc *content.GeneratedContent) error {
	var v any
	switch gc.Kind {
	case content.KindQuestion:
		v = gc.Question
	case content.KindFact:
		v = gc.Fact
	case content.KindFormula:
		v = gc.Formula
	case content.KindLanguage:
		v = gc.LanguageTip
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
