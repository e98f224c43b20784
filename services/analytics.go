package services

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/rozanashayari/daily-poetry-backend/models"
	"github.com/rozanashayari/daily-poetry-backend/store"
)

// AnalyticsService derives the analytics report from the current
// collection state and the global counters. Nothing here is cached.
//
// total_views/total_shares are historical counters and can diverge from
// the per-poem sums, e.g. after a viewed poem is permanently deleted.
// That divergence is kept as-is.
type AnalyticsService struct {
	store store.KVStore
	repo  *PoemRepository
	now   func() time.Time
}

func NewAnalyticsService(s store.KVStore, repo *PoemRepository) *AnalyticsService {
	return &AnalyticsService{store: s, repo: repo, now: time.Now}
}

func (a *AnalyticsService) loadSubscribers(ctx context.Context) ([]models.Subscriber, error) {
	raw, err := a.store.Get(ctx, store.SubscribersKey)
	if errors.Is(err, store.ErrKeyNotFound) {
		return []models.Subscriber{}, nil
	}
	if err != nil {
		return nil, NewStorageError(err)
	}
	var subs []models.Subscriber
	if err := json.Unmarshal(raw, &subs); err != nil {
		return nil, NewStorageError(err)
	}
	return subs, nil
}

// Snapshot computes the full analytics report.
func (a *AnalyticsService) Snapshot(ctx context.Context) (*models.AnalyticsReport, error) {
	poems, err := a.repo.loadCollection(ctx)
	if err != nil {
		return nil, err
	}
	totalViews, err := getCounter(ctx, a.store, store.TotalViewsKey)
	if err != nil {
		return nil, err
	}
	totalShares, err := getCounter(ctx, a.store, store.TotalSharesKey)
	if err != nil {
		return nil, err
	}
	subscribers, err := a.loadSubscribers(ctx)
	if err != nil {
		return nil, err
	}

	categories := make(map[string]int)
	authors := make(map[string]int)
	activePoems := 0
	for _, p := range poems {
		if p.IsActive {
			activePoems++
		}
		category := p.Category
		if category == "" {
			category = "general"
		}
		categories[category]++
		authors[p.Author.English]++
	}

	activeSubscribers := 0
	for _, sub := range subscribers {
		if sub.IsActive {
			activeSubscribers++
		}
	}

	avgViews := 0
	if activePoems > 0 {
		avgViews = int(math.Round(float64(totalViews) / float64(activePoems)))
	}

	report := &models.AnalyticsReport{
		Overview: models.AnalyticsOverview{
			TotalPoems:           len(poems),
			ActivePoems:          activePoems,
			InactivePoems:        len(poems) - activePoems,
			TotalViews:           totalViews,
			TotalShares:          totalShares,
			AvgViewsPerPoem:      avgViews,
			EmailSubscribers:     activeSubscribers,
			TotalSubscribersEver: len(subscribers),
		},
		Categories:   categories,
		Authors:      authors,
		PopularPoems: popularPoems(poems),
		LastUpdated:  a.now(),
	}
	return report, nil
}

// popularPoems ranks active poems by views descending, ties keeping the
// original collection order, and summarizes the top five.
func popularPoems(poems []models.Poem) []models.PopularPoem {
	active := make([]models.Poem, 0, len(poems))
	for _, p := range poems {
		if p.IsActive {
			active = append(active, p)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Metadata.Views > active[j].Metadata.Views
	})
	if len(active) > 5 {
		active = active[:5]
	}

	popular := make([]models.PopularPoem, 0, len(active))
	for _, p := range active {
		popular = append(popular, models.PopularPoem{
			ID:     p.ID,
			Title:  poemTitle(p.English),
			Author: p.Author.English,
			Views:  p.Metadata.Views,
			Shares: p.Metadata.Shares,
		})
	}
	return popular
}

// poemTitle summarizes a poem body as its first 50 characters.
func poemTitle(english string) string {
	runes := []rune(english)
	if len(runes) > 50 {
		runes = runes[:50]
	}
	return string(runes) + "..."
}

// RecordShare bumps the poem's share counter, the global total_shares and
// the per-platform counter, and returns the poem's new share count.
func (a *AnalyticsService) RecordShare(ctx context.Context, poemID, platform string) (int, error) {
	if platform == "" {
		platform = "unknown"
	}

	poems, err := a.repo.loadCollection(ctx)
	if err != nil {
		return 0, err
	}
	idx := findPoem(poems, poemID)
	if idx == -1 {
		return 0, NewNotFoundError("poem not found")
	}

	poems[idx].Metadata.Shares++
	if err := a.repo.saveCollection(ctx, poems); err != nil {
		return 0, err
	}

	if _, err := bumpCounter(ctx, a.store, store.TotalSharesKey); err != nil {
		return 0, err
	}
	if _, err := bumpCounter(ctx, a.store, store.PlatformSharesKey(platform)); err != nil {
		return 0, err
	}
	return poems[idx].Metadata.Shares, nil
}
