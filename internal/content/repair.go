package content

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrParse indicates a provider's raw text could not be repaired into valid
// content of the requested kind. Treated as a failed generation attempt,
// never a crash.
type ErrParse struct {
	Kind Kind
	Raw  string
	Err  error
}

func (e *ErrParse) Error() string {
	return fmt.Sprintf("parse %s content: %v", e.Kind, e.Err)
}

func (e *ErrParse) Unwrap() error { return e.Err }

// RepairAndParse extracts a JSON object of the given kind from a provider's
// raw output, tolerating markdown fences, surrounding prose, and a truncated
// closing brace. The repaired object is validated against the kind's schema
// and required-field set before being returned.
func RepairAndParse(raw string, kind Kind) (*GeneratedContent, error) {
	cleaned := repairJSON(raw)

	var parsed any
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, &ErrParse{Kind: kind, Raw: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiledSchema(kind)
	if err != nil {
		return nil, &ErrParse{Kind: kind, Raw: raw, Err: err}
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ErrParse{Kind: kind, Raw: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	c := &GeneratedContent{Kind: kind}
	var unmarshalErr error
	switch kind {
	case KindQuestion:
		c.Question = &Question{}
		unmarshalErr = json.Unmarshal([]byte(cleaned), c.Question)
	case KindFact:
		c.Fact = &Fact{}
		unmarshalErr = json.Unmarshal([]byte(cleaned), c.Fact)
	case KindFormula:
		c.Formula = &Formula{}
		unmarshalErr = json.Unmarshal([]byte(cleaned), c.Formula)
	case KindLanguage:
		c.LanguageTip = &LanguageTip{}
		unmarshalErr = json.Unmarshal([]byte(cleaned), c.LanguageTip)
	default:
		unmarshalErr = fmt.Errorf("unknown content kind: %q", kind)
	}
	if unmarshalErr != nil {
		return nil, &ErrParse{Kind: kind, Raw: raw, Err: unmarshalErr}
	}

	if err := c.Validate(); err != nil {
		return nil, &ErrParse{Kind: kind, Raw: raw, Err: err}
	}

	return c, nil
}

// repairJSON performs best-effort cleanup of raw model output: strips code
// fences, slices surrounding prose away, and closes a truncated top-level
// brace. Heuristic only; deeply nested truncation still fails to parse.
func repairJSON(raw string) string {
	s := strings.TrimSpace(raw)

	// Strip a markdown code fence, with or without a language tag.
	if strings.HasPrefix(s, "```") {
		s = s[3:]
		if idx := strings.Index(s, "\n"); idx != -1 && !strings.Contains(s[:idx], "{") {
			// Drop the language tag line (e.g. "json").
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	// Slice between the first '{' and the last '}' when prose surrounds
	// the object.
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	switch {
	case start == -1:
		return s
	case end > start:
		s = s[start : end+1]
	default:
		// Opening brace but no closing one: truncated output. Append a
		// single closing brace as a best-effort repair.
		s = s[start:] + "}"
	}

	return strings.TrimSpace(s)
}

// schemaCache caches compiled JSON schemas by kind.
var schemaCache sync.Map // map[Kind]*jsonschema.Schema

func compiledSchema(kind Kind) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(kind); ok {
		return cached.(*jsonschema.Schema), nil
	}

	def, ok := kindSchemas[kind]
	if !ok {
		return nil, fmt.Errorf("no schema for kind %q", kind)
	}

	// The jsonschema library expects a parsed JSON value, not raw bytes.
	// Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", kind)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	schemaCache.Store(kind, compiled)
	return compiled, nil
}
