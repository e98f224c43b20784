package services

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"regexp"
	"time"

	"github.com/rozanashayari/daily-poetry-backend/models"
	"github.com/rozanashayari/daily-poetry-backend/store"
)

var dateRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Scheduler maps calendar dates to poems. Each schedule entry is a value
// snapshot of the poem taken at scheduling time; the entry, not the poem's
// scheduledDate hint, decides what shows on a given date.
type Scheduler struct {
	store store.KVStore
	repo  *PoemRepository
	now   func() time.Time
	rng   *rand.Rand
}

// NewScheduler builds a scheduler sharing the repository's collection.
func NewScheduler(s store.KVStore, repo *PoemRepository) *Scheduler {
	return &Scheduler{
		store: s,
		repo:  repo,
		now:   time.Now,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *Scheduler) getEntry(ctx context.Context, date string) (*models.Poem, error) {
	raw, err := s.store.Get(ctx, store.DailyPoemKey(date))
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, NewStorageError(err)
	}
	var poem models.Poem
	if err := json.Unmarshal(raw, &poem); err != nil {
		return nil, NewStorageError(err)
	}
	return &poem, nil
}

// Schedule stores a snapshot of the poem under the date key. Without
// overwrite an occupied date is a conflict and nothing changes. The live
// record's scheduledDate hint is set to this date afterwards; only the
// most recent scheduling call's date survives on the record.
func (s *Scheduler) Schedule(ctx context.Context, poemID, date string, overwrite bool) (*models.Poem, error) {
	if !dateRE.MatchString(date) {
		return nil, NewValidationError("invalid date format. Use YYYY-MM-DD")
	}

	poems, err := s.repo.loadCollection(ctx)
	if err != nil {
		return nil, err
	}
	idx := findPoem(poems, poemID)
	if idx == -1 {
		return nil, NewNotFoundError("poem not found")
	}

	if !overwrite {
		existing, err := s.getEntry(ctx, date)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, NewConflictError("a poem is already scheduled for %s. Use overwrite=true to replace it", date)
		}
	}

	// Snapshot first, then stamp the hint on the live record.
	snapshot := poems[idx]
	if err := s.store.Set(ctx, store.DailyPoemKey(date), snapshot); err != nil {
		return nil, NewStorageError(err)
	}

	poems[idx].ScheduledDate = &date
	if err := s.repo.saveCollection(ctx, poems); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// GetForDate resolves the poem for a date. With no explicit entry it picks
// a uniformly random active poem and caches the pick under the date key,
// so later calls for the same date are stable.
func (s *Scheduler) GetForDate(ctx context.Context, date string) (*models.Poem, error) {
	if !dateRE.MatchString(date) {
		return nil, NewValidationError("invalid date format. Use YYYY-MM-DD")
	}

	poem, err := s.getEntry(ctx, date)
	if err != nil {
		return nil, err
	}
	if poem != nil {
		return poem, nil
	}

	poems, err := s.repo.loadCollection(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]models.Poem, 0, len(poems))
	for _, p := range poems {
		if p.IsActive {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return nil, NewNotFoundError("no poems available")
	}

	pick := active[s.rng.Intn(len(active))]
	if err := s.store.Set(ctx, store.DailyPoemKey(date), pick); err != nil {
		return nil, NewStorageError(err)
	}
	return &pick, nil
}

// GetToday resolves today's poem and tracks the view: the live record's
// view counter and the global total_views counter each go up by one on
// every call.
func (s *Scheduler) GetToday(ctx context.Context) (*models.Poem, string, error) {
	today := s.now().Format(DateLayout)
	poem, err := s.GetForDate(ctx, today)
	if err != nil {
		return nil, today, err
	}

	if err := s.repo.trackView(ctx, poem.ID); err != nil {
		return nil, today, err
	}
	if _, err := bumpCounter(ctx, s.store, store.TotalViewsKey); err != nil {
		return nil, today, err
	}
	return poem, today, nil
}

// ListScheduled walks every date in the inclusive range and returns the
// dates carrying an explicit schedule entry. Defaults: today through
// limit days ahead (30 when limit is unset).
func (s *Scheduler) ListScheduled(ctx context.Context, startDate, endDate string, limit int) ([]models.ScheduledPoem, error) {
	if limit < 1 {
		limit = 30
	}

	start := s.now()
	if startDate != "" {
		t, err := time.Parse(DateLayout, startDate)
		if err != nil {
			return nil, NewValidationError("invalid startDate. Use YYYY-MM-DD")
		}
		start = t
	}

	// Truncate to midnight so the range stays inclusive of its endpoints.
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	end := start.AddDate(0, 0, limit)
	if endDate != "" {
		t, err := time.Parse(DateLayout, endDate)
		if err != nil {
			return nil, NewValidationError("invalid endDate. Use YYYY-MM-DD")
		}
		end = t
	}

	scheduled := []models.ScheduledPoem{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format(DateLayout)
		poem, err := s.getEntry(ctx, dateStr)
		if err != nil {
			return nil, err
		}
		if poem != nil {
			scheduled = append(scheduled, models.ScheduledPoem{Date: dateStr, Poem: *poem})
		}
	}
	return scheduled, nil
}
