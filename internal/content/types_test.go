package content

import "testing"

func validQuestion() *GeneratedContent {
	return &GeneratedContent{
		Kind: KindQuestion,
		Question: &Question{
			Question:        "What is the unit of dynamic viscosity?",
			Options:         []string{"Pa.s", "N/m", "kg/m^3", "m/s^2"},
			CorrectOptionID: 0,
			Explanation:     "Dynamic viscosity is measured in pascal-seconds.",
		},
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(string(k))
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", k, err)
		}
		if got != k {
			t.Fatalf("ParseKind(%q) = %q", k, got)
		}
	}

	if _, err := ParseKind("poem"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestValidate_Question(t *testing.T) {
	if err := validQuestion().Validate(); err != nil {
		t.Fatalf("valid question rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Question)
	}{
		{"empty text", func(q *Question) { q.Question = "" }},
		{"three options", func(q *Question) { q.Options = q.Options[:3] }},
		{"blank option", func(q *Question) { q.Options[2] = "" }},
		{"negative answer", func(q *Question) { q.CorrectOptionID = -1 }},
		{"answer too large", func(q *Question) { q.CorrectOptionID = 4 }},
		{"empty explanation", func(q *Question) { q.Explanation = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validQuestion()
			tt.mutate(c.Question)
			if err := c.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestValidate_OtherKinds(t *testing.T) {
	fact := &GeneratedContent{Kind: KindFact, Fact: &Fact{Fact: "Water is H2O."}}
	if err := fact.Validate(); err != nil {
		t.Fatalf("valid fact rejected: %v", err)
	}

	emptyFact := &GeneratedContent{Kind: KindFact, Fact: &Fact{}}
	if err := emptyFact.Validate(); err == nil {
		t.Fatal("expected error for empty fact")
	}

	formula := &GeneratedContent{Kind: KindFormula, Formula: &Formula{
		Title: "Darcy's Law", Formula: "q = k*i*A", Explanation: "Flow through porous media.",
	}}
	if err := formula.Validate(); err != nil {
		t.Fatalf("valid formula rejected: %v", err)
	}

	noExpr := &GeneratedContent{Kind: KindFormula, Formula: &Formula{Title: "X", Explanation: "Y"}}
	if err := noExpr.Validate(); err == nil {
		t.Fatal("expected error for missing expression")
	}

	tip := &GeneratedContent{Kind: KindLanguage, LanguageTip: &LanguageTip{
		Language: "German", Word: "Hallo", Meaning: "Hello",
	}}
	if err := tip.Validate(); err != nil {
		t.Fatalf("valid language tip rejected: %v", err)
	}

	nilVariant := &GeneratedContent{Kind: KindFact}
	if err := nilVariant.Validate(); err == nil {
		t.Fatal("expected error for nil variant")
	}
}

func TestKey(t *testing.T) {
	q := validQuestion()
	if q.Key() != q.Question.Question {
		t.Fatalf("question key = %q", q.Key())
	}

	f := &GeneratedContent{Kind: KindFormula, Formula: &Formula{Title: "Darcy's Law"}}
	if f.Key() != "Darcy's Law" {
		t.Fatalf("formula key = %q", f.Key())
	}

	empty := &GeneratedContent{Kind: KindQuestion}
	if empty.Key() != "" {
		t.Fatalf("expected empty key for nil variant, got %q", empty.Key())
	}
}

func TestSeed_AllValid(t *testing.T) {
	items := Seed()
	if len(items) == 0 {
		t.Fatal("expected seed content")
	}

	perKind := map[Kind]int{}
	for i, c := range items {
		if err := c.Validate(); err != nil {
			t.Fatalf("seed item %d invalid: %v", i, err)
		}
		perKind[c.Kind]++
	}
	for _, k := range Kinds {
		if perKind[k] == 0 {
			t.Fatalf("no seed content for kind %q", k)
		}
	}
}
