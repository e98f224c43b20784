package services

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rozanashayari/daily-poetry-backend/models"
)

// SearchFilter narrows a search beyond the free-text query.
type SearchFilter struct {
	Language string // all | urdu | hindi | english
	Category string
	Author   string
	Limit    int
}

// Search runs the relevance-ranked search over active poems. Queries
// shorter than two characters are rejected. Ties keep the original
// collection order.
func (r *PoemRepository) Search(ctx context.Context, query string, f SearchFilter) ([]models.Poem, error) {
	if utf8.RuneCountInString(query) < 2 {
		return nil, NewValidationError("search query must be at least 2 characters long")
	}

	poems, err := r.loadCollection(ctx)
	if err != nil {
		return nil, err
	}

	queryLower := strings.ToLower(query)
	language := f.Language
	if language == "" {
		language = "all"
	}

	results := make([]models.Poem, 0)
	for _, p := range poems {
		if !p.IsActive {
			continue
		}
		if !matchesQuery(p, queryLower, language) {
			continue
		}
		if f.Category != "" && f.Category != "all" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.Author != "" && !matchesAuthor(p, strings.ToLower(f.Author)) {
			continue
		}
		results = append(results, p)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return relevanceScore(results[i], queryLower) > relevanceScore(results[j], queryLower)
	})

	limit := f.Limit
	if limit < 1 {
		limit = 20
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func matchesQuery(p models.Poem, queryLower, language string) bool {
	if language == "all" || language == "urdu" {
		if strings.Contains(strings.ToLower(p.Urdu), queryLower) {
			return true
		}
	}
	if language == "all" || language == "hindi" {
		if strings.Contains(strings.ToLower(p.Hindi), queryLower) {
			return true
		}
	}
	if language == "all" || language == "english" {
		if strings.Contains(strings.ToLower(p.English), queryLower) {
			return true
		}
	}
	return matchesAuthor(p, queryLower) ||
		strings.Contains(strings.ToLower(p.Metadata.Theme), queryLower)
}

func matchesAuthor(p models.Poem, queryLower string) bool {
	return strings.Contains(strings.ToLower(p.Author.English), queryLower) ||
		strings.Contains(strings.ToLower(p.Author.Hindi), queryLower) ||
		strings.Contains(strings.ToLower(p.Author.Urdu), queryLower)
}

// relevanceScore sums the additive match score: +10 per content field
// whose first line contains the query, +5 per matching author name, +1 per
// content field containing the query anywhere, +20 when any content field
// equals the query outright.
func relevanceScore(p models.Poem, queryLower string) int {
	score := 0

	contents := []string{p.Urdu, p.Hindi, p.English}
	for _, content := range contents {
		firstLine, _, _ := strings.Cut(content, "\n")
		if strings.Contains(strings.ToLower(firstLine), queryLower) {
			score += 10
		}
	}

	for _, name := range []string{p.Author.English, p.Author.Hindi, p.Author.Urdu} {
		if strings.Contains(strings.ToLower(name), queryLower) {
			score += 5
		}
	}

	for _, content := range contents {
		if strings.Contains(strings.ToLower(content), queryLower) {
			score++
		}
	}

	for _, content := range contents {
		if strings.ToLower(content) == queryLower {
			score += 20
			break
		}
	}

	return score
}
