package timesheet

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/billing-tracker/internal/cache"
	domain "github.com/BruksfildServices01/billing-tracker/internal/domain/timesheet"
	"github.com/BruksfildServices01/billing-tracker/internal/models"
)

type fakeRepo struct {
	projects  map[uint]*models.Project
	assignees map[uint]*models.Assignee
	entries   map[uint]*models.TimeEntry
	nextID    uint
	listCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		projects:  map[uint]*models.Project{},
		assignees: map[uint]*models.Assignee{},
		entries:   map[uint]*models.TimeEntry{},
	}
}

var _ domain.Repository = (*fakeRepo)(nil)

func (r *fakeRepo) ProjectExists(_ context.Context, id uint) (bool, error) {
	_, ok := r.projects[id]
	return ok, nil
}

func (r *fakeRepo) AssigneeExists(_ context.Context, id uint) (bool, error) {
	_, ok := r.assignees[id]
	return ok, nil
}

func (r *fakeRepo) hydrate(e models.TimeEntry) *models.TimeEntry {
	e.Project = r.projects[e.ProjectID]
	e.Assignee = r.assignees[e.AssigneeID]
	return &e
}

func (r *fakeRepo) GetEntry(_ context.Context, id uint) (*models.TimeEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.hydrate(*e), nil
}

func (r *fakeRepo) CreateEntry(_ context.Context, e *models.TimeEntry) error {
	r.nextID++
	e.ID = r.nextID
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

func (r *fakeRepo) UpdateEntry(_ context.Context, e *models.TimeEntry) error {
	if _, ok := r.entries[e.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

func (r *fakeRepo) DeleteEntry(_ context.Context, id uint) error {
	if _, ok := r.entries[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *fakeRepo) ListEntries(_ context.Context, f domain.EntryFilter) ([]models.TimeEntry, error) {
	r.listCalls++
	var out []models.TimeEntry
	for _, e := range r.entries {
		if f.Period != nil && !f.Period.Contains(e.Date) {
			continue
		}
		if f.ProjectID != nil && e.ProjectID != *f.ProjectID {
			continue
		}
		if f.AssigneeID != nil && e.AssigneeID != *f.AssigneeID {
			continue
		}
		out = append(out, *r.hydrate(*e))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// memoryCache mimics the generation semantics of the redis cache.
type memoryCache struct {
	values      map[string][]byte
	gen         cache.Generation
	invalidated int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string][]byte{}}
}

var _ cache.SummaryCache = (*memoryCache)(nil)

func (c *memoryCache) slot(gen cache.Generation, key string) string {
	return fmt.Sprintf("%d:%s", gen, key)
}

func (c *memoryCache) Get(_ context.Context, key string, dst any) (cache.Generation, error) {
	raw, ok := c.values[c.slot(c.gen, key)]
	if !ok {
		return c.gen, cache.ErrMiss
	}
	return c.gen, json.Unmarshal(raw, dst)
}

func (c *memoryCache) Set(_ context.Context, gen cache.Generation, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[c.slot(gen, key)] = raw
	return nil
}

func (c *memoryCache) Invalidate(context.Context) error {
	c.gen++
	c.invalidated++
	return nil
}

func (c *memoryCache) Close() error { return nil }

// racingRepo runs onList once, right after ListEntries has read its rows,
// standing in for a write that commits while a summary is being computed.
type racingRepo struct {
	*fakeRepo
	onList func()
}

func (r *racingRepo) ListEntries(ctx context.Context, f domain.EntryFilter) ([]models.TimeEntry, error) {
	out, err := r.fakeRepo.ListEntries(ctx, f)
	if fn := r.onList; fn != nil {
		r.onList = nil
		fn()
	}
	return out, err
}
