package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amenibouabdallah/JOBS-sub001/internal/model"
)

// ActivityTypeRepository is the activity type data access interface.
type ActivityTypeRepository interface {
	Create(ctx context.Context, t *model.ActivityType) error
	GetByID(ctx context.Context, id string) (*model.ActivityType, error)
	List(ctx context.Context) ([]model.ActivityType, error)
	Update(ctx context.Context, t *model.ActivityType) error
	Delete(ctx context.Context, id string) error
}

type activityTypeRepo struct {
	db *gorm.DB
}

// NewActivityTypeRepo creates the GORM-backed ActivityTypeRepository.
func NewActivityTypeRepo(db *gorm.DB) ActivityTypeRepository {
	return &activityTypeRepo{db: db}
}

func (r *activityTypeRepo) Create(ctx context.Context, t *model.ActivityType) error {
	return dbFor(ctx, r.db).Create(t).Error
}

func (r *activityTypeRepo) GetByID(ctx context.Context, id string) (*model.ActivityType, error) {
	var t model.ActivityType
	err := dbFor(ctx, r.db).
		Where("activity_type_id = ?", id).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *activityTypeRepo) List(ctx context.Context) ([]model.ActivityType, error) {
	var types []model.ActivityType
	err := dbFor(ctx, r.db).
		Order("name ASC").
		Find(&types).Error
	return types, err
}

func (r *activityTypeRepo) Update(ctx context.Context, t *model.ActivityType) error {
	return dbFor(ctx, r.db).Save(t).Error
}

func (r *activityTypeRepo) Delete(ctx context.Context, id string) error {
	return dbFor(ctx, r.db).
		Where("activity_type_id = ?", id).
		Delete(&model.ActivityType{}).Error
}
