// Package cache implements the disk-persisted content fallback store: an
// append-only, deduplicating, size-bounded set of previously generated
// content, keyed by kind. It is the middle tier of the degradation ladder
// between live generation and explicit unavailability.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/gateprep/gatefeed/internal/content"
)

// maxPerKind caps each kind's sequence; the oldest entries are evicted
// first on overflow.
const maxPerKind = 100

// ErrEmpty signals that no cached entry exists for the requested kind.
var ErrEmpty = errors.New("cache is empty for kind")

// Cache is a size-bounded content store persisted as a single JSON file.
// Every access reloads the file, and the mutex scopes each
// read-modify-persist cycle so concurrent adds cannot lose updates.
type Cache struct {
	path string
	mu   sync.Mutex
	log  *zap.Logger
}

// New creates a Cache backed by the file at path. The file is created on
// first Add; a missing or unreadable file reads as an empty store.
func New(path string, log *zap.Logger) *Cache {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{path: path, log: log}
}

// fileStore is the on-disk shape: top-level keys are content kinds, values
// are ordered arrays of the kind's content shape.
type fileStore struct {
	Questions []content.Question    `json:"question,omitempty"`
	Facts     []content.Fact        `json:"fact,omitempty"`
	Formulas  []content.Formula     `json:"formula,omitempty"`
	Language  []content.LanguageTip `json:"language,omitempty"`
}

// Add appends c to its kind's sequence unless an entry with the same
// natural key already exists, evicts the oldest entries beyond the cap,
// and persists the full store. Duplicate adds are a silent no-op.
func (c *Cache) Add(gc *content.GeneratedContent) error {
	if err := gc.Validate(); err != nil {
		return fmt.Errorf("refusing to cache invalid content: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	store := c.load()

	if c.contains(store, gc.Kind, gc.Key()) {
		return nil
	}

	switch gc.Kind {
	case content.KindQuestion:
		store.Questions = appendCapped(store.Questions, *gc.Question)
	case content.KindFact:
		store.Facts = appendCapped(store.Facts, *gc.Fact)
	case content.KindFormula:
		store.Formulas = appendCapped(store.Formulas, *gc.Formula)
	case content.KindLanguage:
		store.Language = appendCapped(store.Language, *gc.LanguageTip)
	default:
		return fmt.Errorf("unknown content kind: %q", gc.Kind)
	}

	return c.persist(store)
}

// Sample returns a uniformly random entry for kind, or ErrEmpty.
func (c *Cache) Sample(kind content.Kind) (*content.GeneratedContent, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	store := c.load()

	switch kind {
	case content.KindQuestion:
		if n := len(store.Questions); n > 0 {
			q := store.Questions[rand.IntN(n)]
			return &content.GeneratedContent{Kind: kind, Question: &q}, nil
		}
	case content.KindFact:
		if n := len(store.Facts); n > 0 {
			f := store.Facts[rand.IntN(n)]
			return &content.GeneratedContent{Kind: kind, Fact: &f}, nil
		}
	case content.KindFormula:
		if n := len(store.Formulas); n > 0 {
			f := store.Formulas[rand.IntN(n)]
			return &content.GeneratedContent{Kind: kind, Formula: &f}, nil
		}
	case content.KindLanguage:
		if n := len(store.Language); n > 0 {
			lt := store.Language[rand.IntN(n)]
			return &content.GeneratedContent{Kind: kind, LanguageTip: &lt}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrEmpty, kind)
}

// Stats returns the number of cached entries per kind.
func (c *Cache) Stats() map[content.Kind]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	store := c.load()
	return map[content.Kind]int{
		content.KindQuestion: len(store.Questions),
		content.KindFact:     len(store.Facts),
		content.KindFormula:  len(store.Formulas),
		content.KindLanguage: len(store.Language),
	}
}

// SeedIfEmpty adds the given items for every kind that currently has no
// entries, so the fallback tier works before the first live generation.
// Returns the number of items added.
func (c *Cache) SeedIfEmpty(items []content.GeneratedContent) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	store := c.load()
	empty := map[content.Kind]bool{
		content.KindQuestion: len(store.Questions) == 0,
		content.KindFact:     len(store.Facts) == 0,
		content.KindFormula:  len(store.Formulas) == 0,
		content.KindLanguage: len(store.Language) == 0,
	}

	added := 0
	for i := range items {
		gc := &items[i]
		if !empty[gc.Kind] || gc.Validate() != nil {
			continue
		}
		if c.contains(store, gc.Kind, gc.Key()) {
			continue
		}
		switch gc.Kind {
		case content.KindQuestion:
			store.Questions = appendCapped(store.Questions, *gc.Question)
		case content.KindFact:
			store.Facts = appendCapped(store.Facts, *gc.Fact)
		case content.KindFormula:
			store.Formulas = appendCapped(store.Formulas, *gc.Formula)
		case content.KindLanguage:
			store.Language = appendCapped(store.Language, *gc.LanguageTip)
		}
		added++
	}

	if added == 0 {
		return 0, nil
	}
	return added, c.persist(store)
}

// load deserializes the backing file. Read failure is non-fatal: it is
// logged and treated as an empty cache. Callers must hold c.mu.
func (c *Cache) load() *fileStore {
	store := &fileStore{}

	data, err := os.ReadFile(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			c.log.Warn("cache read failed, treating as empty",
				zap.String("path", c.path), zap.Error(err))
		}
		return store
	}

	if err := json.Unmarshal(data, store); err != nil {
		c.log.Warn("cache file corrupt, treating as empty",
			zap.String("path", c.path), zap.Error(err))
		return &fileStore{}
	}
	return store
}

// persist writes the full store back to the backing file via a temp file
// and rename, so readers never observe a partial write. Callers must hold
// c.mu.
func (c *Cache) persist(store *fileStore) error {
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("replace cache: %w", err)
	}
	return nil
}

func (c *Cache) contains(store *fileStore, kind content.Kind, key string) bool {
	switch kind {
	case content.KindQuestion:
		for _, q := range store.Questions {
			if q.Question == key {
				return true
			}
		}
	case content.KindFact:
		for _, f := range store.Facts {
			if f.Fact == key {
				return true
			}
		}
	case content.KindFormula:
		for _, f := range store.Formulas {
			if f.Title == key {
				return true
			}
		}
	case content.KindLanguage:
		for _, lt := range store.Language {
			if lt.Word == key {
				return true
			}
		}
	}
	return false
}

func appendCapped[T any](seq []T, item T) []T {
	seq = append(seq, item)
	if len(seq) > maxPerKind {
		seq = seq[len(seq)-maxPerKind:]
	}
	return seq
}
