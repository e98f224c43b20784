package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rozanashayari/daily-poetry-backend/store"
)

func TestInitializeSeedsOnce(t *testing.T) {
	r, ms := testRepo()
	ctx := context.Background()

	created, err := r.Initialize(ctx)
	require.NoError(t, err)
	assert.True(t, created)

	poems, _, err := r.List(ctx, ListFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, poems, 5)
	for _, p := range poems {
		assert.Contains(t, p.ID, "poem_")
		assert.True(t, p.IsActive)
		assert.NotEmpty(t, p.Urdu)
		assert.NotEmpty(t, p.Hindi)
		assert.NotEmpty(t, p.English)
	}

	// Counters and the subscriber list exist after seeding.
	views, err := getCounter(ctx, ms, store.TotalViewsKey)
	require.NoError(t, err)
	assert.Zero(t, views)

	_, err = ms.Get(ctx, store.SubscribersKey)
	assert.NoError(t, err)

	// Today has a schedule entry so the first visit is deterministic.
	s := NewScheduler(ms, r)
	s.now = r.now
	_, _, err = s.GetToday(ctx)
	assert.NoError(t, err)
}

func TestInitializeIsNoOpWhenPopulated(t *testing.T) {
	r, _ := testRepo()
	ctx := context.Background()

	existing, err := r.Create(ctx, testInput("pre-existing", ""))
	require.NoError(t, err)

	created, err := r.Initialize(ctx)
	require.NoError(t, err)
	assert.False(t, created)

	poems, _, err := r.List(ctx, ListFilter{})
	require.NoError(t, err)
	require.Len(t, poems, 1)
	assert.Equal(t, existing.ID, poems[0].ID)
}
