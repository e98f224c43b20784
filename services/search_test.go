package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rozanashayari/daily-poetry-backend/models"
)

func searchInput(english, authorEnglish string) models.PoemInput {
	return models.PoemInput{
		Urdu:    "اردو سطر\nدوسری سطر",
		Hindi:   "हिंदी पंक्ति\nदूसरी पंक्ति",
		English: english,
		Author: &models.Author{
			Urdu:    "شاعر",
			Hindi:   "कवि",
			English: authorEnglish,
		},
	}
}

func TestSearchRejectsShortQuery(t *testing.T) {
	r, _ := testRepo()

	for _, q := range []string{"", "m"} {
		_, err := r.Search(context.Background(), q, SearchFilter{})
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Equal(t, "search query must be at least 2 characters long", MessageOf(err))
	}

	// Two runes is enough even when multibyte.
	_, err := r.Search(context.Background(), "دل", SearchFilter{})
	assert.NoError(t, err)
}

func TestSearchRanksByRelevance(t *testing.T) {
	r, _ := testRepo()
	ctx := context.Background()

	// First-line beats author-name beats body-only.
	bodyHit, err := r.Create(ctx, searchInput("some opening line\nthe moonlight verse", "Anon"))
	require.NoError(t, err)
	firstLineHit, err := r.Create(ctx, searchInput("moonlight opens this poem\nsecond line", "Anon"))
	require.NoError(t, err)
	authorHit, err := r.Create(ctx, searchInput("nothing relevant here\nat all", "Moonlight Poet"))
	require.NoError(t, err)

	results, err := r.Search(ctx, "moonlight", SearchFilter{})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, firstLineHit.ID, results[0].ID) // 10 + 1
	assert.Equal(t, authorHit.ID, results[1].ID)    // 5
	assert.Equal(t, bodyHit.ID, results[2].ID)      // 1
}

func TestSearchExactMatchBonus(t *testing.T) {
	exact := models.Poem{English: "Moonlight", Author: models.Author{English: "Anon"}}
	partial := models.Poem{English: "Moonlight sonata", Author: models.Author{English: "Anon"}}

	assert.Greater(t, relevanceScore(exact, "moonlight"), relevanceScore(partial, "moonlight"))
}

func TestSearchLanguageRestriction(t *testing.T) {
	r, _ := testRepo()
	ctx := context.Background()

	input := models.PoemInput{
		Urdu:    "چاندنی رات",
		Hindi:   "चांदनी रात",
		English: "moonlit night",
		Author: &models.Author{
			Urdu:    "شاعر",
			Hindi:   "कवि",
			English: "Someone",
		},
	}
	_, err := r.Create(ctx, input)
	require.NoError(t, err)

	results, err := r.Search(ctx, "moonlit", SearchFilter{Language: "english"})
	require.NoError(t, err)
	assert.Len(t, results, 1)

	// Restricting to urdu hides the english-only match.
	results, err = r.Search(ctx, "moonlit", SearchFilter{Language: "urdu"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchSkipsInactiveAndHonorsFilters(t *testing.T) {
	r, _ := testRepo()
	ctx := context.Background()

	input := searchInput("the moonlight verse", "Ghalib")
	input.Category = "nature"
	kept, err := r.Create(ctx, input)
	require.NoError(t, err)

	input = searchInput("another moonlight verse", "Mir")
	input.Category = "romance"
	_, err = r.Create(ctx, input)
	require.NoError(t, err)

	deleted, err := r.Create(ctx, searchInput("deleted moonlight verse", "Hali"))
	require.NoError(t, err)
	require.NoError(t, r.SoftDelete(ctx, deleted.ID))

	results, err := r.Search(ctx, "moonlight", SearchFilter{})
	require.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = r.Search(ctx, "moonlight", SearchFilter{Category: "nature"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, kept.ID, results[0].ID)

	results, err = r.Search(ctx, "moonlight", SearchFilter{Author: "ghal"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, kept.ID, results[0].ID)

	results, err = r.Search(ctx, "moonlight", SearchFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}
