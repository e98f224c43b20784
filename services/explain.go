package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rozanashayari/daily-poetry-backend/models"
)

// PoemExplanation is the four-section reading guide shown alongside a
// poem: what it says, how it says it, where it comes from and what it
// stirs.
type PoemExplanation struct {
	Language string `json:"language"`
	Meaning  string `json:"meaning"`
	Literary string `json:"literary"`
	Context  string `json:"context"`
	Emotion  string `json:"emotion"`
}

var explanationLanguages = map[string]bool{
	"urdu":    true,
	"hindi":   true,
	"english": true,
}

// ExplainPoem asks Gemini for an explanation of the poem in the reader's
// language.
func ExplainPoem(ctx context.Context, poem *models.Poem, language string) (*PoemExplanation, error) {
	if !explanationLanguages[language] {
		return nil, NewValidationError("language must be one of urdu, hindi, english")
	}

	var body, authorName string
	switch language {
	case "urdu":
		body, authorName = poem.Urdu, poem.Author.Urdu
	case "hindi":
		body, authorName = poem.Hindi, poem.Author.Hindi
	default:
		body, authorName = poem.English, poem.Author.English
	}

	prompt := fmt.Sprintf(`You are a literature teacher. Explain the following poem by %s.
Theme: %s. Category: %s.

%s

Respond in %s, as a JSON object with exactly these string keys:
"meaning" (what the poem says), "literary" (devices and craft),
"context" (historical background of the poet), "emotion" (its emotional effect).
Return only the JSON object, no markdown fences.`,
		authorName, poem.Metadata.Theme, poem.Category, body, language)

	text, err := GeminiGenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	// Models wrap JSON in fences despite instructions often enough.
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	explanation := PoemExplanation{Language: language}
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &explanation); err != nil {
		return nil, fmt.Errorf("failed to parse explanation: %w", err)
	}
	return &explanation, nil
}
