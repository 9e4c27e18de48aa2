package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/billing-tracker/internal/domain/milestone"
	"github.com/BruksfildServices01/billing-tracker/internal/models"
)

type MilestoneGormRepository struct {
	db *gorm.DB
}

func NewMilestoneGormRepository(db *gorm.DB) *MilestoneGormRepository {
	return &MilestoneGormRepository{db: db}
}

var _ domain.Repository = (*MilestoneGormRepository)(nil)

// --------------------------------------------------
// Milestone
// --------------------------------------------------

func (r *MilestoneGormRepository) GetMilestone(
	ctx context.Context,
	id uint,
) (*models.Milestone, error) {

	var m models.Milestone
	if err := r.db.WithContext(ctx).
		Preload("Payments").
		First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MilestoneGormRepository) UpdateStatusLocked(
	ctx context.Context,
	id uint,
	resolve domain.ResolveFunc,
) (domain.Status, domain.Status, error) {

	var previous, current domain.Status

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m models.Milestone
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&m).Error; err != nil {
			return err
		}

		// Payments are read after the lock is held so a concurrent payment
		// write for the same milestone waits for this transaction.
		if err := tx.
			Where("milestone_id = ?", id).
			Find(&m.Payments).Error; err != nil {
			return err
		}

		previous = domain.Status(m.Status)
		current = resolve(&m)

		return tx.
			Model(&models.Milestone{}).
			Where("id = ?", id).
			Update("status", string(current)).Error
	})
	if err != nil {
		return "", "", err
	}

	return previous, current, nil
}

func (r *MilestoneGormRepository) ListOverdue(
	ctx context.Context,
	now time.Time,
) ([]models.Milestone, error) {

	var list []models.Milestone
	if err := r.db.WithContext(ctx).
		Preload("Project.Client").
		Preload("Project.ProjectType").
		Preload("Payments").
		Where(
			"status = ? OR (status = ? AND due_date < ?)",
			string(domain.StatusOverdue),
			string(domain.StatusPending),
			now,
		).
		Order("due_date ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}

	return list, nil
}

// --------------------------------------------------
// Payment
// --------------------------------------------------

func (r *MilestoneGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *MilestoneGormRepository) GetPayment(
	ctx context.Context,
	id uint,
) (*models.Payment, error) {

	var p models.Payment
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *MilestoneGormRepository) DeletePayment(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Payment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
