package services

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/rozanashayari/daily-poetry-backend/models"
	"github.com/rozanashayari/daily-poetry-backend/store"
)

// DateLayout is the calendar date format used for scheduling keys.
const DateLayout = "2006-01-02"

// PoemRepository owns the canonical poem collection. Every mutation is a
// read-modify-write of the whole collection document: load, change the
// in-memory copy, write it back. Nothing is persisted when an operation
// fails partway.
type PoemRepository struct {
	store store.KVStore
	now   func() time.Time
	rng   *rand.Rand
}

// NewPoemRepository builds a repository over the given store.
func NewPoemRepository(s store.KVStore) *PoemRepository {
	return &PoemRepository{
		store: s,
		now:   time.Now,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func newPoemID() string {
	return "poem_" + uuid.NewString()
}

func (r *PoemRepository) loadCollection(ctx context.Context) ([]models.Poem, error) {
	raw, err := r.store.Get(ctx, store.CollectionKey)
	if errors.Is(err, store.ErrKeyNotFound) {
		return []models.Poem{}, nil
	}
	if err != nil {
		return nil, NewStorageError(err)
	}
	var poems []models.Poem
	if err := json.Unmarshal(raw, &poems); err != nil {
		return nil, NewStorageError(err)
	}
	return poems, nil
}

func (r *PoemRepository) saveCollection(ctx context.Context, poems []models.Poem) error {
	if err := r.store.Set(ctx, store.CollectionKey, poems); err != nil {
		return NewStorageError(err)
	}
	return nil
}

func findPoem(poems []models.Poem, id string) int {
	for i := range poems {
		if poems[i].ID == id {
			return i
		}
	}
	return -1
}

// Create validates the input, assigns a fresh id and appends the poem to
// the collection. Text fields are trimmed; two poems may carry identical
// content.
func (r *PoemRepository) Create(ctx context.Context, input models.PoemInput) (*models.Poem, error) {
	urdu := strings.TrimSpace(input.Urdu)
	hindi := strings.TrimSpace(input.Hindi)
	english := strings.TrimSpace(input.English)
	if urdu == "" || hindi == "" || english == "" || input.Author == nil {
		return nil, NewValidationError("missing required fields: urdu, hindi, english, author")
	}

	author := models.Author{
		Urdu:    strings.TrimSpace(input.Author.Urdu),
		Hindi:   strings.TrimSpace(input.Author.Hindi),
		English: strings.TrimSpace(input.Author.English),
	}
	if author.Urdu == "" || author.Hindi == "" || author.English == "" {
		return nil, NewValidationError("author names required in all three languages")
	}

	category := input.Category
	if category == "" {
		category = "general"
	}

	poems, err := r.loadCollection(ctx)
	if err != nil {
		return nil, err
	}

	poem := models.Poem{
		ID:            newPoemID(),
		Urdu:          urdu,
		Hindi:         hindi,
		English:       english,
		Author:        author,
		Category:      category,
		DateAdded:     r.now(),
		ScheduledDate: nil,
		IsActive:      true,
		Metadata:      models.NewPoemMetadata(input.Metadata),
	}

	poems = append(poems, poem)
	if err := r.saveCollection(ctx, poems); err != nil {
		return nil, err
	}
	return &poem, nil
}

// GetByID returns the poem regardless of its active state.
func (r *PoemRepository) GetByID(ctx context.Context, id string) (*models.Poem, error) {
	poems, err := r.loadCollection(ctx)
	if err != nil {
		return nil, err
	}
	idx := findPoem(poems, id)
	if idx == -1 {
		return nil, NewNotFoundError("poem not found")
	}
	poem := poems[idx]
	return &poem, nil
}

// Update merges the partial update into the stored record and stamps
// dateModified. The id is never overwritten; lifecycle fields are not
// reachable through updates.
func (r *PoemRepository) Update(ctx context.Context, id string, upd models.PoemUpdate) (*models.Poem, error) {
	poems, err := r.loadCollection(ctx)
	if err != nil {
		return nil, err
	}
	idx := findPoem(poems, id)
	if idx == -1 {
		return nil, NewNotFoundError("poem not found")
	}

	upd.Apply(&poems[idx])
	modified := r.now()
	poems[idx].DateModified = &modified

	if err := r.saveCollection(ctx, poems); err != nil {
		return nil, err
	}
	poem := poems[idx]
	return &poem, nil
}

// SoftDelete deactivates the poem and stamps dateDeleted. Re-invoking on
// an already-inactive poem just re-stamps.
func (r *PoemRepository) SoftDelete(ctx context.Context, id string) error {
	poems, err := r.loadCollection(ctx)
	if err != nil {
		return err
	}
	idx := findPoem(poems, id)
	if idx == -1 {
		return NewNotFoundError("poem not found")
	}

	deleted := r.now()
	poems[idx].IsActive = false
	poems[idx].DateDeleted = &deleted

	return r.saveCollection(ctx, poems)
}

// PermanentDelete removes the record from the collection entirely.
func (r *PoemRepository) PermanentDelete(ctx context.Context, id string) error {
	poems, err := r.loadCollection(ctx)
	if err != nil {
		return err
	}

	filtered := poems[:0:0]
	for _, p := range poems {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == len(poems) {
		return NewNotFoundError("poem not found")
	}

	return r.saveCollection(ctx, filtered)
}

// ListFilter selects and pages the collection listing.
type ListFilter struct {
	ActiveOnly bool
	Category   string
	Search     string
	Page       int
	Limit      int
}

// Pagination describes the returned page.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// List filters the collection, sorts it by dateAdded descending and
// returns the requested page. An out-of-range page yields an empty slice.
func (r *PoemRepository) List(ctx context.Context, f ListFilter) ([]models.Poem, Pagination, error) {
	poems, err := r.loadCollection(ctx)
	if err != nil {
		return nil, Pagination{}, err
	}

	filtered := make([]models.Poem, 0, len(poems))
	for _, p := range poems {
		if f.ActiveOnly && !p.IsActive {
			continue
		}
		if f.Category != "" && f.Category != "all" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.Search != "" && !matchesSearch(p, strings.ToLower(f.Search)) {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].DateAdded.After(filtered[j].DateAdded)
	})

	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = 50
	}

	total := len(filtered)
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	pagination := Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		HasNext:    end < total,
		HasPrev:    page > 1,
	}
	return filtered[start:end], pagination, nil
}

// matchesSearch checks the case-insensitive substring predicate across all
// three content bodies, all three author names and the metadata theme.
func matchesSearch(p models.Poem, queryLower string) bool {
	return strings.Contains(strings.ToLower(p.Urdu), queryLower) ||
		strings.Contains(strings.ToLower(p.Hindi), queryLower) ||
		strings.Contains(strings.ToLower(p.English), queryLower) ||
		strings.Contains(strings.ToLower(p.Author.English), queryLower) ||
		strings.Contains(strings.ToLower(p.Author.Hindi), queryLower) ||
		strings.Contains(strings.ToLower(p.Author.Urdu), queryLower) ||
		strings.Contains(strings.ToLower(p.Metadata.Theme), queryLower)
}

// ListByCategory returns active poems of a category, optionally shuffled,
// capped at limit.
func (r *PoemRepository) ListByCategory(ctx context.Context, category string, limit int, shuffle bool) ([]models.Poem, error) {
	poems, err := r.loadCollection(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Poem, 0, len(poems))
	for _, p := range poems {
		if p.IsActive && strings.EqualFold(p.Category, category) {
			filtered = append(filtered, p)
		}
	}

	if shuffle {
		r.rng.Shuffle(len(filtered), func(i, j int) {
			filtered[i], filtered[j] = filtered[j], filtered[i]
		})
	}

	if limit < 1 {
		limit = 20
	}
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

// Random picks a uniformly random active poem, optionally restricted to a
// category and excluding one id, and tracks a view on it. The global view
// counter is deliberately untouched here; only the daily poem feeds it.
func (r *PoemRepository) Random(ctx context.Context, category, excludeID string) (*models.Poem, error) {
	poems, err := r.loadCollection(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]int, 0, len(poems))
	for i, p := range poems {
		if !p.IsActive {
			continue
		}
		if category != "" && category != "all" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if excludeID != "" && p.ID == excludeID {
			continue
		}
		candidates = append(candidates, i)
	}
	if len(candidates) == 0 {
		return nil, NewNotFoundError("no active poems available")
	}

	idx := candidates[r.rng.Intn(len(candidates))]
	poems[idx].Metadata.Views++
	if err := r.saveCollection(ctx, poems); err != nil {
		return nil, err
	}
	poem := poems[idx]
	return &poem, nil
}

// Categories lists the distinct categories of active poems, sorted by
// name, each with a URL slug and its active poem count.
func (r *PoemRepository) Categories(ctx context.Context) ([]models.CategorySummary, error) {
	poems, err := r.loadCollection(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, p := range poems {
		if p.IsActive && p.Category != "" {
			counts[p.Category]++
		}
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	summaries := make([]models.CategorySummary, 0, len(names))
	for _, name := range names {
		summaries = append(summaries, models.CategorySummary{
			Name:  name,
			Slug:  slug.Make(name),
			Count: counts[name],
		})
	}
	return summaries, nil
}

// trackView bumps a poem's view counter inside the live collection. Safe
// to call with an id that has since been permanently deleted.
func (r *PoemRepository) trackView(ctx context.Context, id string) error {
	poems, err := r.loadCollection(ctx)
	if err != nil {
		return err
	}
	idx := findPoem(poems, id)
	if idx == -1 {
		return nil
	}
	poems[idx].Metadata.Views++
	return r.saveCollection(ctx, poems)
}
