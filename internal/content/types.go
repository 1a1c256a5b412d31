package content

import "fmt"

// Kind identifies a content variety. The string values double as the
// top-level keys of the cache file.
type Kind string

const (
	KindQuestion Kind = "question"
	KindFact     Kind = "fact"
	KindFormula  Kind = "formula"
	KindLanguage Kind = "language"
)

// Kinds lists every content kind in a stable order.
var Kinds = []Kind{KindQuestion, KindFact, KindFormula, KindLanguage}

// ParseKind maps a user-supplied string to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindQuestion, KindFact, KindFormula, KindLanguage:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown content kind: %q", s)
}

// Difficulty grades a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Request describes one content request. It is immutable and lives for a
// single GetContent call.
type Request struct {
	Kind Kind

	// Topic is an optional topic code (e.g. "SM"). Empty means any topic.
	Topic string

	// Difficulty applies to questions only. Empty defaults to medium.
	Difficulty Difficulty
}

// Question is a multiple-choice exam question.
type Question struct {
	Question        string   `json:"question"`
	Options         []string `json:"options"`
	CorrectOptionID int      `json:"correct_option_id"`
	Explanation     string   `json:"explanation"`
	Topic           string   `json:"topic,omitempty"`
	Difficulty      string   `json:"difficulty,omitempty"`
	Source          string   `json:"source,omitempty"`
	VisualHint      string   `json:"visual_hint,omitempty"`
}

// Fact is a one-liner key note.
type Fact struct {
	Fact       string `json:"fact"`
	Topic      string `json:"topic,omitempty"`
	Source     string `json:"source,omitempty"`
	VisualHint string `json:"visual_hint,omitempty"`
}

// Formula is a named formula with its terms explained.
type Formula struct {
	Title       string `json:"title"`
	Formula     string `json:"formula"`
	Explanation string `json:"explanation"`
	Topic       string `json:"topic,omitempty"`
	Source      string `json:"source,omitempty"`
	VisualHint  string `json:"visual_hint,omitempty"`
}

// LanguageTip is a micro language lesson: one word per day.
type LanguageTip struct {
	Language string `json:"language"`
	Word     string `json:"word"`
	Phonetic string `json:"phonetic,omitempty"`
	Meaning  string `json:"meaning"`
	Usage    string `json:"usage,omitempty"`
	Tip      string `json:"tip,omitempty"`
}

// GeneratedContent is a tagged union over the four content shapes. Exactly
// one of the variant pointers matching Kind is set.
type GeneratedContent struct {
	Kind        Kind
	Question    *Question
	Fact        *Fact
	Formula     *Formula
	LanguageTip *LanguageTip
}

// Key returns the natural key used for cache deduplication: the question
// text, fact text, formula title, or word.
func (c *GeneratedContent) Key() string {
	switch c.Kind {
	case KindQuestion:
		if c.Question != nil {
			return c.Question.Question
		}
	case KindFact:
		if c.Fact != nil {
			return c.Fact.Fact
		}
	case KindFormula:
		if c.Formula != nil {
			return c.Formula.Title
		}
	case KindLanguage:
		if c.LanguageTip != nil {
			return c.LanguageTip.Word
		}
	}
	return ""
}

// Validate checks the kind's required-field set. Content failing this is
// never cached and never returned to callers.
func (c *GeneratedContent) Validate() error {
	switch c.Kind {
	case KindQuestion:
		q := c.Question
		if q == nil {
			return fmt.Errorf("question variant is nil")
		}
		if q.Question == "" {
			return fmt.Errorf("question text is empty")
		}
		if len(q.Options) != 4 {
			return fmt.Errorf("expected 4 options, got %d", len(q.Options))
		}
		for i, opt := range q.Options {
			if opt == "" {
				return fmt.Errorf("option %d is empty", i)
			}
		}
		if q.CorrectOptionID < 0 || q.CorrectOptionID > 3 {
			return fmt.Errorf("correct_option_id must be 0-3, got %d", q.CorrectOptionID)
		}
		if q.Explanation == "" {
			return fmt.Errorf("explanation is empty")
		}
	case KindFact:
		if c.Fact == nil {
			return fmt.Errorf("fact variant is nil")
		}
		if c.Fact.Fact == "" {
			return fmt.Errorf("fact text is empty")
		}
	case KindFormula:
		f := c.Formula
		if f == nil {
			return fmt.Errorf("formula variant is nil")
		}
		if f.Title == "" {
			return fmt.Errorf("formula title is empty")
		}
		if f.Formula == "" {
			return fmt.Errorf("formula expression is empty")
		}
		if f.Explanation == "" {
			return fmt.Errorf("formula explanation is empty")
		}
	case KindLanguage:
		lt := c.LanguageTip
		if lt == nil {
			return fmt.Errorf("language variant is nil")
		}
		if lt.Language == "" {
			return fmt.Errorf("language is empty")
		}
		if lt.Word == "" {
			return fmt.Errorf("word is empty")
		}
		if lt.Meaning == "" {
			return fmt.Errorf("meaning is empty")
		}
	default:
		return fmt.Errorf("unknown content kind: %q", c.Kind)
	}
	return nil
}
