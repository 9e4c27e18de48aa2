package milestone

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/billing-tracker/internal/domain/milestone"
	"github.com/BruksfildServices01/billing-tracker/internal/models"
)

type fakeRepo struct {
	mu         sync.Mutex
	milestones map[uint]*models.Milestone
	payments   map[uint]*models.Payment
	nextID     uint

	createErr error
	updateErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		milestones: map[uint]*models.Milestone{},
		payments:   map[uint]*models.Payment{},
		nextID:     100,
	}
}

var _ domain.Repository = (*fakeRepo)(nil)

func (r *fakeRepo) addMilestone(m models.Milestone) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.milestones[m.ID] = &m
}

func (r *fakeRepo) status(id uint) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.milestones[id].Status
}

func (r *fakeRepo) paymentsFor(id uint) []models.Payment {
	var out []models.Payment
	for _, p := range r.payments {
		if p.MilestoneID == id {
			out = append(out, *p)
		}
	}
	return out
}

func (r *fakeRepo) GetMilestone(_ context.Context, id uint) (*models.Milestone, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.milestones[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m
	cp.Payments = r.paymentsFor(id)
	return &cp, nil
}

func (r *fakeRepo) UpdateStatusLocked(_ context.Context, id uint, resolve domain.ResolveFunc) (domain.Status, domain.Status, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return "", "", r.updateErr
	}
	m, ok := r.milestones[id]
	if !ok {
		return "", "", gorm.ErrRecordNotFound
	}
	cp := *m
	cp.Payments = r.paymentsFor(id)
	prev := domain.Status(m.Status)
	cur := resolve(&cp)
	m.Status = string(cur)
	return prev, cur, nil
}

// ListOverdue returns every milestone; the use case applies the overdue rule.
func (r *fakeRepo) ListOverdue(_ context.Context, _ time.Time) ([]models.Milestone, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Milestone
	for _, m := range r.milestones {
		cp := *m
		cp.Payments = r.paymentsFor(m.ID)
		out = append(out, cp)
	}
	return out, nil
}

func (r *fakeRepo) CreatePayment(_ context.Context, p *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

func (r *fakeRepo) GetPayment(_ context.Context, id uint) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeRepo) DeletePayment(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.payments, id)
	return nil
}

var errBoom = errors.New("boom")
