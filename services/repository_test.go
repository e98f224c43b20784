package services

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rozanashayari/daily-poetry-backend/models"
	"github.com/rozanashayari/daily-poetry-backend/store"
)

func testRepo() (*PoemRepository, *store.MemoryStore) {
	ms := store.NewMemoryStore()
	r := NewPoemRepository(ms)
	base := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	tick := 0
	r.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	r.rng = rand.New(rand.NewSource(1))
	return r, ms
}

func testInput(english, category string) models.PoemInput {
	return models.PoemInput{
		Urdu:     "اردو متن " + english,
		Hindi:    "हिंदी पाठ " + english,
		English:  english,
		Author: &models.Author{
			Urdu:    "غالب",
			Hindi:   "ग़ालिब",
			English: "Ghalib",
		},
		Category: category,
	}
}

func TestCreateValidation(t *testing.T) {
	r, _ := testRepo()
	ctx := context.Background()

	_, err := r.Create(ctx, models.PoemInput{English: "only english"})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "missing required fields: urdu, hindi, english, author", MessageOf(err))

	input := testInput("a poem", "")
	input.Author = &models.Author{English: "Ghalib"}
	_, err = r.Create(ctx, input)
	require.Error(t, err)
	assert.Equal(t, "author names required in all three languages", MessageOf(err))

	// Whitespace-only content counts as missing.
	input = testInput("a poem", "")
	input.Urdu = "   "
	_, err = r.Create(ctx, input)
	assert.True(t, IsValidation(err))
}

func TestCreateDefaults(t *testing.T) {
	r, _ := testRepo()
	ctx := context.Background()

	poem, err := r.Create(ctx, testInput("  spaced out  ", ""))
	require.NoError(t, err)

	assert.Equal(t, "spaced out", poem.English)
	assert.Equal(t, "general", poem.Category)
	assert.True(t, poem.IsActive)
	assert.Contains(t, poem.ID, "poem_")
	assert.Equal(t, models.DifficultyMedium, poem.Metadata.Difficulty)
	assert.Zero(t, poem.Metadata.Views)
	assert.Nil(t, poem.ScheduledDate)
}

func TestUpdateKeepsIdentity(t *testing.T) {
	r, _ := testRepo()
	ctx := context.Background()

	created, err := r.Create(ctx, testInput("original", "romance"))
	require.NoError(t, err)

	newText := "revised"
	updated, err := r.Update(ctx, created.ID, models.PoemUpdate{English: &newText})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "revised", updated.English)
	assert.Equal(t, created.Urdu, updated.Urdu)
	assert.Equal(t, created.DateAdded, updated.DateAdded)
	assert.True(t, updated.IsActive)
	require.NotNil(t, updated.DateModified)
	assert.True(t, updated.DateModified.After(created.DateAdded))
}

func TestUpdateMergesMetadata(t *testing.T) {
	r, _ := testRepo()
	ctx := context.Background()

	input := testInput("metadata poem", "")
	input.Metadata = map[string]any{"theme": "love", "views": 3}
	created, err := r.Create(ctx, input)
	require.NoError(t, err)

	updated, err := r.Update(ctx, created.ID, models.PoemUpdate{
		Metadata: map[string]any{"difficulty": models.DifficultyHard, "mood": "wistful"},
	})
	require.NoError(t, err)

	assert.Equal(t, "love", updated.Metadata.Theme)
	assert.Equal(t, models.DifficultyHard, updated.Metadata.Difficulty)
	assert.Equal(t, 3, updated.Metadata.Views)
	assert.Equal(t, "wistful", updated.Metadata.Extra["mood"])
}

func TestUpdateNotFound(t *testing.T) {
	r, _ := testRepo()

	_, err := r.Update(context.Background(), "poem_missing", models.PoemUpdate{})
	assert.True(t, IsNotFound(err))
}

func TestSoftDeleteIsIdempotent(t *testing.T) {
	r, _ := testRepo()
	ctx := context.Background()

	created, err := r.Create(ctx, testInput("to delete", ""))
	require.NoError(t, err)

	require.NoError(t, r.SoftDelete(ctx, created.ID))
	first, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, first.IsActive)
	require.NotNil(t, first.DateDeleted)

	// A second delete re-stamps but stays soft-deleted.
	require.NoError(t, r.SoftDelete(ctx, created.ID))
	second, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, second.IsActive)
	assert.True(t, second.DateDeleted.After(*first.DateDeleted))
}

func TestPermanentDelete(t *testing.T) {
	r, _ := testRepo()
	ctx := context.Background()

	created, err := r.Create(ctx, testInput("gone for good", ""))
	require.NoError(t, err)

	require.NoError(t, r.PermanentDelete(ctx, created.ID))

	_, err = r.GetByID(ctx, created.ID)
	assert.True(t, IsNotFound(err))

	err = r.PermanentDelete(ctx, created.ID)
	assert.True(t, IsNotFound(err))
}

func TestListFiltersAndSorts(t *testing.T) {
	r, _ := testRepo()
	ctx := context.Background()

	first, err := r.Create(ctx, testInput("oldest", "nature"))
	require.NoError(t, err)
	second, err := r.Create(ctx, testInput("middle", "romance"))
	require.NoError(t, err)
	third, err := r.Create(ctx, testInput("newest", "nature"))
	require.NoError(t, err)

	require.NoError(t, r.SoftDelete(ctx, second.ID))

	active, _, err := r.List(ctx, ListFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, third.ID, active[0].ID)
	assert.Equal(t, first.ID, active[1].ID)

	all, _, err := r.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	nature, _, err := r.List(ctx, ListFilter{ActiveOnly: true, Category: "Nature"})
	require.NoError(t, err)
	assert.Len(t, nature, 2)

	matched, _, err := r.List(ctx, ListFilter{Search: "NEWEST"})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, third.ID, matched[0].ID)
}

func TestListPaginationCoversEveryPoemOnce(t *testing.T) {
	r, _ := testRepo()
	ctx := context.Background()

	created := make(map[string]bool)
	for i := 0; i < 7; i++ {
		poem, err := r.Create(ctx, testInput("poem number "+string(rune('a'+i)), ""))
		require.NoError(t, err)
		created[poem.ID] = true
	}

	seen := make(map[string]bool)
	page := 1
	for {
		poems, pagination, err := r.List(ctx, ListFilter{ActiveOnly: true, Page: page, Limit: 3})
		require.NoError(t, err)
		assert.Equal(t, 7, pagination.Total)
		assert.Equal(t, 3, pagination.TotalPages)
		for _, p := range poems {
			assert.False(t, seen[p.ID], "poem repeated across pages")
			seen[p.ID] = true
		}
		if !pagination.HasNext {
			break
		}
		page++
	}
	assert.Equal(t, created, seen)
}

func TestListOutOfRangePageIsEmpty(t *testing.T) {
	r, _ := testRepo()
	ctx := context.Background()

	_, err := r.Create(ctx, testInput("lonely", ""))
	require.NoError(t, err)

	poems, pagination, err := r.List(ctx, ListFilter{Page: 5, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, poems)
	assert.Equal(t, 1, pagination.Total)
	assert.False(t, pagination.HasNext)
	assert.True(t, pagination.HasPrev)
}

func TestRandomTracksViewAndRespectsFilters(t *testing.T) {
	r, _ := testRepo()
	ctx := context.Background()

	a, err := r.Create(ctx, testInput("alpha", "nature"))
	require.NoError(t, err)
	b, err := r.Create(ctx, testInput("beta", "romance"))
	require.NoError(t, err)

	// Excluding one candidate leaves exactly the other.
	poem, err := r.Random(ctx, "", a.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, poem.ID)
	assert.Equal(t, 1, poem.Metadata.Views)

	poem, err = r.Random(ctx, "nature", "")
	require.NoError(t, err)
	assert.Equal(t, a.ID, poem.ID)

	require.NoError(t, r.SoftDelete(ctx, a.ID))
	_, err = r.Random(ctx, "nature", "")
	assert.True(t, IsNotFound(err))
}

func TestCategoriesSummary(t *testing.T) {
	r, _ := testRepo()
	ctx := context.Background()

	_, err := r.Create(ctx, testInput("one", "Sufi Poetry"))
	require.NoError(t, err)
	_, err = r.Create(ctx, testInput("two", "Sufi Poetry"))
	require.NoError(t, err)
	hidden, err := r.Create(ctx, testInput("three", "nature"))
	require.NoError(t, err)
	require.NoError(t, r.SoftDelete(ctx, hidden.ID))

	categories, err := r.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Sufi Poetry", categories[0].Name)
	assert.Equal(t, "sufi-poetry", categories[0].Slug)
	assert.Equal(t, 2, categories[0].Count)
}

func TestCategoryLifecycle(t *testing.T) {
	r, _ := testRepo()
	ctx := context.Background()

	poem, err := r.Create(ctx, testInput("seasonal", "nature"))
	require.NoError(t, err)

	listed, _, err := r.List(ctx, ListFilter{ActiveOnly: true, Category: "nature"})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, poem.ID, listed[0].ID)

	require.NoError(t, r.SoftDelete(ctx, poem.ID))

	listed, _, err = r.List(ctx, ListFilter{ActiveOnly: true, Category: "nature"})
	require.NoError(t, err)
	assert.Empty(t, listed)

	// Without the active filter the record is still there, deactivated.
	listed, _, err = r.List(ctx, ListFilter{Category: "nature"})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.False(t, listed[0].IsActive)
}

func TestListByCategoryLimits(t *testing.T) {
	r, _ := testRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := r.Create(ctx, testInput("nature poem "+string(rune('a'+i)), "nature"))
		require.NoError(t, err)
	}

	poems, err := r.ListByCategory(ctx, "nature", 3, true)
	require.NoError(t, err)
	assert.Len(t, poems, 3)

	poems, err = r.ListByCategory(ctx, "unknown", 0, false)
	require.NoError(t, err)
	assert.Empty(t, poems)
}
