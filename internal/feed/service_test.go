package feed

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/gateprep/gatefeed/internal/cache"
	"github.com/gateprep/gatefeed/internal/content"
	"github.com/gateprep/gatefeed/internal/llm"
)

func newTestCache(t *testing.T) *cache.Cache {
	t.Helper()
	return cache.New(filepath.Join(t.TempDir(), "content_cache.json"), nil)
}

func seedFact(t *testing.T, c *cache.Cache, text string) {
	t.Helper()
	err := c.Add(&content.GeneratedContent{
		Kind: content.KindFact,
		Fact: &content.Fact{Fact: text},
	})
	if err != nil {
		t.Fatalf("seed cache: %v", err)
	}
}

func TestGetContent_LiveGenerationIsCachedAndReturned(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockOutcome{
		Text: `{"fact": "Steel has a Young's modulus of about 200 GPa."}`,
	})
	c := newTestCache(t)
	svc := New(mock, c, nil)

	got, err := svc.GetContent(context.Background(), content.Request{Kind: content.KindFact})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Fact.Fact != "Steel has a Young's modulus of about 200 GPa." {
		t.Fatalf("unexpected fact: %q", got.Fact.Fact)
	}

	// The fresh result must now be in the fallback tier.
	if c.Stats()[content.KindFact] != 1 {
		t.Fatalf("expected 1 cached fact, got %d", c.Stats()[content.KindFact])
	}
}

func TestGetContent_NoProviderServesFromCache(t *testing.T) {
	c := newTestCache(t)
	seedFact(t, c, "cached fallback")
	svc := New(nil, c, nil)

	got, err := svc.GetContent(context.Background(), content.Request{Kind: content.KindFact})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Fact.Fact != "cached fallback" {
		t.Fatalf("unexpected fact: %q", got.Fact.Fact)
	}
}

func TestGetContent_GenerationFailureFallsBackToCache(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockOutcome{Err: &llm.ErrAllProvidersFailed{}})
	c := newTestCache(t)
	seedFact(t, c, "cached fallback")
	svc := New(mock, c, nil)

	got, err := svc.GetContent(context.Background(), content.Request{Kind: content.KindFact})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Fact.Fact != "cached fallback" {
		t.Fatalf("unexpected fact: %q", got.Fact.Fact)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
}

func TestGetContent_RepairFailureFallsBackToCache(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockOutcome{Text: "I cannot produce JSON today."})
	c := newTestCache(t)
	seedFact(t, c, "cached fallback")
	svc := New(mock, c, nil)

	got, err := svc.GetContent(context.Background(), content.Request{Kind: content.KindFact})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Fact.Fact != "cached fallback" {
		t.Fatalf("unexpected fact: %q", got.Fact.Fact)
	}
}

func TestGetContent_ProvidersDownServesCachedQuestion(t *testing.T) {
	c := newTestCache(t)
	questions := []string{
		"What is the plasticity index?",
		"Define the coefficient of consolidation.",
		"What is the effective stress principle?",
	}
	for _, text := range questions {
		err := c.Add(&content.GeneratedContent{
			Kind: content.KindQuestion,
			Question: &content.Question{
				Question:        text,
				Options:         []string{"A", "B", "C", "D"},
				CorrectOptionID: 1,
				Explanation:     "See soil mechanics fundamentals.",
				Topic:           "SM",
			},
		})
		if err != nil {
			t.Fatalf("seed cache: %v", err)
		}
	}

	mock := llm.NewMockProvider(llm.MockOutcome{Err: &llm.ErrAllProvidersFailed{}})
	svc := New(mock, c, nil)

	got, err := svc.GetContent(context.Background(), content.Request{
		Kind:       content.KindQuestion,
		Topic:      "SM",
		Difficulty: content.DifficultyHard,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, text := range questions {
		if got.Question.Question == text {
			found = true
		}
	}
	if !found {
		t.Fatalf("sampled question not among cached entries: %q", got.Question.Question)
	}
}

func TestGetContent_AllTiersExhausted(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockOutcome{Err: &llm.ErrAllProvidersFailed{}})
	svc := New(mock, newTestCache(t), nil)

	_, err := svc.GetContent(context.Background(), content.Request{Kind: content.KindFact})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestGetContent_NoProviderEmptyCache(t *testing.T) {
	svc := New(nil, newTestCache(t), nil)

	_, err := svc.GetContent(context.Background(), content.Request{Kind: content.KindFormula})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestGetContent_CancellationPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockOutcome{Err: context.Canceled})
	c := newTestCache(t)
	seedFact(t, c, "must not be served")
	svc := New(mock, c, nil)

	_, err := svc.GetContent(context.Background(), content.Request{Kind: content.KindFact})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestGetContent_TagsRequestContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockOutcome{Err: &llm.ErrAllProvidersFailed{}})
	svc := New(mock, newTestCache(t), nil)

	_, _ = svc.GetContent(context.Background(), content.Request{Kind: content.KindQuestion})

	req := mock.Calls[0]
	if !req.JSON {
		t.Fatal("expected JSON output mode on provider request")
	}
	if req.System == "" {
		t.Fatal("expected a system prompt on provider request")
	}
}

func TestGetContent_DuplicateResultNotCachedTwice(t *testing.T) {
	const raw = `{"fact": "The same fact twice."}`
	mock := llm.NewMockProvider(
		llm.MockOutcome{Text: raw},
		llm.MockOutcome{Text: raw},
	)
	c := newTestCache(t)
	svc := New(mock, c, nil)

	for i := 0; i < 2; i++ {
		if _, err := svc.GetContent(context.Background(), content.Request{Kind: content.KindFact}); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}

	if c.Stats()[content.KindFact] != 1 {
		t.Fatalf("expected 1 cached fact, got %d", c.Stats()[content.KindFact])
	}
}
