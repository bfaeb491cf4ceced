package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amenibouabdallah/JOBS-sub001/internal/model"
)

// ActivityRepository is the activity data access interface.
type ActivityRepository interface {
	Create(ctx context.Context, a *model.Activity) error
	GetByID(ctx context.Context, id string) (*model.Activity, error)
	// GetByIDForUpdate locks the activity row so concurrent selections
	// serialize their capacity checks.
	GetByIDForUpdate(ctx context.Context, id string) (*model.Activity, error)
	List(ctx context.Context) ([]model.Activity, error)
	ListRequired(ctx context.Context) ([]model.Activity, error)
	Update(ctx context.Context, a *model.Activity) error
	Delete(ctx context.Context, id string) error
}

type activityRepo struct {
	db *gorm.DB
}

// NewActivityRepo creates the GORM-backed ActivityRepository.
func NewActivityRepo(db *gorm.DB) ActivityRepository {
	return &activityRepo{db: db}
}

func (r *activityRepo) Create(ctx context.Context, a *model.Activity) error {
	return dbFor(ctx, r.db).Create(a).Error
}

func (r *activityRepo) GetByID(ctx context.Context, id string) (*model.Activity, error) {
	var a model.Activity
	err := dbFor(ctx, r.db).
		Preload("Salle").
		Preload("ActivityType").
		Where("activity_id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *activityRepo) GetByIDForUpdate(ctx context.Context, id string) (*model.Activity, error) {
	var a model.Activity
	err := dbFor(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("activity_id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *activityRepo) List(ctx context.Context) ([]model.Activity, error) {
	var activities []model.Activity
	err := dbFor(ctx, r.db).
		Preload("Salle").
		Preload("ActivityType").
		Order("starts_at ASC, name ASC").
		Find(&activities).Error
	return activities, err
}

func (r *activityRepo) ListRequired(ctx context.Context) ([]model.Activity, error) {
	var activities []model.Activity
	err := dbFor(ctx, r.db).
		Where("is_required = ?", true).
		Order("starts_at ASC").
		Find(&activities).Error
	return activities, err
}

func (r *activityRepo) Update(ctx context.Context, a *model.Activity) error {
	return dbFor(ctx, r.db).Save(a).Error
}

func (r *activityRepo) Delete(ctx context.Context, id string) error {
	return dbFor(ctx, r.db).
		Where("activity_id = ?", id).
		Delete(&model.Activity{}).Error
}
