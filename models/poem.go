package models

import (
	"encoding/json"
	"time"
)

// Difficulty levels carried in poem metadata.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Author holds the poet's name in all three languages.
type Author struct {
	Urdu    string `json:"urdu"`
	Hindi   string `json:"hindi"`
	English string `json:"english"`
}

// PoemMetadata carries per-poem counters and presentation hints. Unknown
// fields supplied by callers are kept in Extra and round-tripped on
// serialization so nothing an admin stored is silently dropped.
type PoemMetadata struct {
	Theme          string
	Difficulty     string
	AudioAvailable bool
	Views          int
	Shares         int
	Extra          map[string]any
}

func (m PoemMetadata) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(m.Extra)+5)
	for k, v := range m.Extra {
		out[k] = v
	}
	out["theme"] = m.Theme
	out["difficulty"] = m.Difficulty
	out["audioAvailable"] = m.AudioAvailable
	out["views"] = m.Views
	out["shares"] = m.Shares
	return json.Marshal(out)
}

func (m *PoemMetadata) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = PoemMetadata{Difficulty: DifficultyMedium}
	for key, val := range raw {
		switch key {
		case "theme":
			if err := json.Unmarshal(val, &m.Theme); err != nil {
				return err
			}
		case "difficulty":
			if err := json.Unmarshal(val, &m.Difficulty); err != nil {
				return err
			}
		case "audioAvailable":
			if err := json.Unmarshal(val, &m.AudioAvailable); err != nil {
				return err
			}
		case "views":
			if err := json.Unmarshal(val, &m.Views); err != nil {
				return err
			}
		case "shares":
			if err := json.Unmarshal(val, &m.Shares); err != nil {
				return err
			}
		default:
			var v any
			if err := json.Unmarshal(val, &v); err != nil {
				return err
			}
			if m.Extra == nil {
				m.Extra = make(map[string]any)
			}
			m.Extra[key] = v
		}
	}
	return nil
}

// NewPoemMetadata builds metadata from an optional caller-supplied overlay.
// Defaults apply only where the overlay is silent; counters start at zero
// unless the caller set them explicitly.
func NewPoemMetadata(overlay map[string]any) PoemMetadata {
	m := PoemMetadata{Difficulty: DifficultyMedium}
	m.applyOverlay(overlay)
	return m
}

// Merged returns a copy of m with the overlay's fields shallow-merged on
// top. Keys absent from the overlay are preserved.
func (m PoemMetadata) Merged(overlay map[string]any) PoemMetadata {
	out := m
	if len(m.Extra) > 0 {
		out.Extra = make(map[string]any, len(m.Extra))
		for k, v := range m.Extra {
			out.Extra[k] = v
		}
	}
	out.applyOverlay(overlay)
	return out
}

func (m *PoemMetadata) applyOverlay(overlay map[string]any) {
	for key, val := range overlay {
		switch key {
		case "theme":
			if s, ok := val.(string); ok {
				m.Theme = s
			}
		case "difficulty":
			if s, ok := val.(string); ok {
				m.Difficulty = s
			}
		case "audioAvailable":
			if b, ok := val.(bool); ok {
				m.AudioAvailable = b
			}
		case "views":
			if n, ok := asInt(val); ok {
				m.Views = n
			}
		case "shares":
			if n, ok := asInt(val); ok {
				m.Shares = n
			}
		default:
			if m.Extra == nil {
				m.Extra = make(map[string]any)
			}
			m.Extra[key] = val
		}
	}
}

// JSON numbers decode as float64.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// Poem is the central entity: one poem in three languages plus lifecycle
// and scheduling state.
type Poem struct {
	ID            string       `json:"id"`
	Urdu          string       `json:"urdu"`
	Hindi         string       `json:"hindi"`
	English       string       `json:"english"`
	Author        Author       `json:"author"`
	Category      string       `json:"category"`
	DateAdded     time.Time    `json:"dateAdded"`
	DateModified  *time.Time   `json:"dateModified,omitempty"`
	DateDeleted   *time.Time   `json:"dateDeleted,omitempty"`
	ScheduledDate *string      `json:"scheduledDate"`
	IsActive      bool         `json:"isActive"`
	Metadata      PoemMetadata `json:"metadata"`
}

// PoemInput is the payload for creating a poem.
type PoemInput struct {
	Urdu     string         `json:"urdu"`
	Hindi    string         `json:"hindi"`
	English  string         `json:"english"`
	Author   *Author        `json:"author"`
	Category string         `json:"category"`
	Metadata map[string]any `json:"metadata"`
}

// PoemUpdate is a partial update. Lifecycle fields (id, isActive,
// dateAdded, dateDeleted) are deliberately not representable here: id is
// immutable and activation only moves through the delete operations.
type PoemUpdate struct {
	Urdu          *string        `json:"urdu"`
	Hindi         *string        `json:"hindi"`
	English       *string        `json:"english"`
	Author        *Author        `json:"author"`
	Category      *string        `json:"category"`
	ScheduledDate *string        `json:"scheduledDate"`
	Metadata      map[string]any `json:"metadata"`
}

// Apply merges the update into the poem field by field. Metadata is a
// nested shallow merge. dateModified stamping is the repository's job.
func (u PoemUpdate) Apply(p *Poem) {
	if u.Urdu != nil {
		p.Urdu = *u.Urdu
	}
	if u.Hindi != nil {
		p.Hindi = *u.Hindi
	}
	if u.English != nil {
		p.English = *u.English
	}
	if u.Author != nil {
		p.Author = *u.Author
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.ScheduledDate != nil {
		p.ScheduledDate = u.ScheduledDate
	}
	if u.Metadata != nil {
		p.Metadata = p.Metadata.Merged(u.Metadata)
	}
}
