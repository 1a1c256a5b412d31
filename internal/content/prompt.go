package content

import (
	"fmt"
	"strings"

	"github.com/gateprep/gatefeed/internal/llm"
)

const systemPrompt = `You are a content writer for a GATE Civil Engineering exam preparation channel.

Rules:
- Output a single JSON object exactly matching the shape requested. No markdown, no surrounding prose.
- Use plain ASCII text for all math. No LaTeX, no Unicode symbols. Use / for fractions, * for multiplication, ^ for exponents.
- Content must be technically correct and at genuine GATE exam standard.
- Cite real references (IS codes, standard textbooks) in the "source" field where one applies.`

const questionShape = `{
  "question": "The question text here (max 300 chars)",
  "options": ["Option 1", "Option 2", "Option 3", "Option 4"],
  "correct_option_id": 0,
  "explanation": "A clear explanation of the solution (max 200 chars)",
  "topic": "SM",
  "difficulty": "medium",
  "source": "IS 456:2000 or a standard textbook",
  "visual_hint": "Optional one-line description of a helpful diagram"
}`

const factShape = `{
  "fact": "The text of the fact",
  "topic": "ENV",
  "source": "Civil Engineering Standards",
  "visual_hint": ""
}`

const formulaShape = `{
  "title": "Name of the formula",
  "formula": "The mathematical expression in plain text",
  "explanation": "Brief explanation of the terms and context",
  "topic": "FM",
  "source": "Engineers Reference",
  "visual_hint": ""
}`

const languageShape = `{
  "language": "German",
  "word": "The word or short phrase",
  "phonetic": "How to pronounce it",
  "meaning": "What it means in English",
  "usage": "A short example sentence",
  "tip": "A memory aid or usage tip"
}`

// BuildPrompt maps a content request to the provider-agnostic prompt.
// Pure: no side effects and no failure mode. Unknown topic codes fall back
// to a generic multi-topic prompt rather than erroring.
func BuildPrompt(req Request) llm.Request {
	var b strings.Builder

	switch req.Kind {
	case KindFact:
		b.WriteString("Generate a high-value key note or one-liner for Civil Engineering GATE preparation.\n")
		b.WriteString("It should be a key concept, an important IS code provision (IS 456, IS 800 etc), or a vital material property.\n")
		writeTopicLine(&b, req.Topic)
		b.WriteString("\nOutput JSON with this exact structure:\n")
		b.WriteString(factShape)

	case KindFormula:
		b.WriteString("Generate a key Civil Engineering formula often asked in GATE.\n")
		writeTopicLine(&b, req.Topic)
		b.WriteString("\nOutput JSON with this exact structure:\n")
		b.WriteString(formulaShape)

	case KindLanguage:
		b.WriteString("Generate a micro language lesson: one useful everyday word or phrase in a world language (German, Japanese, French, Spanish, ...), for an engineering student learning one word per day.\n")
		b.WriteString("\nOutput JSON with this exact structure:\n")
		b.WriteString(languageShape)

	default: // KindQuestion
		difficulty := req.Difficulty
		if difficulty == "" {
			difficulty = DifficultyMedium
		}

		b.WriteString("Generate a challenging multiple-choice question (MCQ) for the Civil Engineering GATE exam.\n")
		if KnownTopic(req.Topic) {
			fmt.Fprintf(&b, "The question must be on the topic: %s.\n", TopicName(req.Topic))
		} else {
			b.WriteString("Topics can include: Soil Mechanics, Fluid Mechanics, Structural Analysis, Environmental Engineering, Transportation, Geomatics, RCC, Steel Structures.\n")
		}
		fmt.Fprintf(&b, "Target difficulty: %s.\n", difficulty)
		b.WriteString("Ensure the question requires conceptual understanding or standard calculation.\n")
		b.WriteString("Provide exactly 4 options with exactly one correct answer; distractors should reflect common mistakes.\n")
		b.WriteString("\nOutput JSON with this exact structure:\n")
		b.WriteString(questionShape)
		b.WriteString("\nNote: correct_option_id must be an integer: 0 for the 1st option, 1 for the 2nd, etc.")
	}

	return llm.Request{
		System:      systemPrompt,
		User:        b.String(),
		JSON:        true,
		MaxTokens:   1024,
		Temperature: 1.0,
	}
}

func writeTopicLine(b *strings.Builder, topic string) {
	if KnownTopic(topic) {
		fmt.Fprintf(b, "The content must be on the topic: %s.\n", TopicName(topic))
	}
}
