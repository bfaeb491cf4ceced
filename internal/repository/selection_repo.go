package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amenibouabdallah/JOBS-sub001/internal/model"
)

// SelectionRepository is the activity selection data access interface.
type SelectionRepository interface {
	Create(ctx context.Context, s *model.ActivitySelection) error
	Exists(ctx context.Context, participantID, activityID string) (bool, error)
	ListByParticipant(ctx context.Context, participantID string) ([]model.ActivitySelection, error)
	CountByActivity(ctx context.Context, activityID string) (int64, error)
	Delete(ctx context.Context, participantID, activityID string) (int64, error)
}

type selectionRepo struct {
	db *gorm.DB
}

// NewSelectionRepo creates the GORM-backed SelectionRepository.
func NewSelectionRepo(db *gorm.DB) SelectionRepository {
	return &selectionRepo{db: db}
}

func (r *selectionRepo) Create(ctx context.Context, s *model.ActivitySelection) error {
	return dbFor(ctx, r.db).Create(s).Error
}

func (r *selectionRepo) Exists(ctx context.Context, participantID, activityID string) (bool, error) {
	var count int64
	err := dbFor(ctx, r.db).
		Model(&model.ActivitySelection{}).
		Where("participant_id = ? AND activity_id = ?", participantID, activityID).
		Count(&count).Error
	return count > 0, err
}

func (r *selectionRepo) ListByParticipant(ctx context.Context, participantID string) ([]model.ActivitySelection, error) {
	var selections []model.ActivitySelection
	err := dbFor(ctx, r.db).
		Preload("Activity").
		Where("participant_id = ?", participantID).
		Order("created_at ASC").
		Find(&selections).Error
	return selections, err
}

func (r *selectionRepo) CountByActivity(ctx context.Context, activityID string) (int64, error) {
	var count int64
	err := dbFor(ctx, r.db).
		Model(&model.ActivitySelection{}).
		Where("activity_id = ?", activityID).
		Count(&count).Error
	return count, err
}

func (r *selectionRepo) Delete(ctx context.Context, participantID, activityID string) (int64, error) {
	res := dbFor(ctx, r.db).
		Where("participant_id = ? AND activity_id = ?", participantID, activityID).
		Delete(&model.ActivitySelection{})
	return res.RowsAffected, res.Error
}
