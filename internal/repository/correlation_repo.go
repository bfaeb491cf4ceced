package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amenibouabdallah/JOBS-sub001/internal/model"
)

// CorrelationRepository is the activity correlation data access interface.
type CorrelationRepository interface {
	Create(ctx context.Context, c *model.ActivityCorrelation) error
	GetByID(ctx context.Context, id string) (*model.ActivityCorrelation, error)
	List(ctx context.Context) ([]model.ActivityCorrelation, error)
	// ListForActivity returns correlations where the activity appears on
	// either end; EXCLUDES rules are checked in both directions.
	ListForActivity(ctx context.Context, activityID string) ([]model.ActivityCorrelation, error)
	Delete(ctx context.Context, id string) error
}

type correlationRepo struct {
	db *gorm.DB
}

// NewCorrelationRepo creates the GORM-backed CorrelationRepository.
func NewCorrelationRepo(db *gorm.DB) CorrelationRepository {
	return &correlationRepo{db: db}
}

func (r *correlationRepo) Create(ctx context.Context, c *model.ActivityCorrelation) error {
	return dbFor(ctx, r.db).Create(c).Error
}

func (r *correlationRepo) GetByID(ctx context.Context, id string) (*model.ActivityCorrelation, error) {
	var c model.ActivityCorrelation
	err := dbFor(ctx, r.db).
		Where("correlation_id = ?", id).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *correlationRepo) List(ctx context.Context) ([]model.ActivityCorrelation, error) {
	var correlations []model.ActivityCorrelation
	err := dbFor(ctx, r.db).
		Preload("SourceActivity").
		Preload("TargetActivity").
		Order("created_at ASC").
		Find(&correlations).Error
	return correlations, err
}

func (r *correlationRepo) ListForActivity(ctx context.Context, activityID string) ([]model.ActivityCorrelation, error) {
	var correlations []model.ActivityCorrelation
	err := dbFor(ctx, r.db).
		Preload("SourceActivity").
		Preload("TargetActivity").
		Where("source_activity_id = ? OR target_activity_id = ?", activityID, activityID).
		Find(&correlations).Error
	return correlations, err
}

func (r *correlationRepo) Delete(ctx context.Context, id string) error {
	return dbFor(ctx, r.db).
		Where("correlation_id = ?", id).
		Delete(&model.ActivityCorrelation{}).Error
}
