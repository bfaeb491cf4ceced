package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amenibouabdallah/JOBS-sub001/internal/model"
	apperrors "github.com/amenibouabdallah/JOBS-sub001/pkg/errors"
)

// ParticipantRepository is the participant data access interface.
type ParticipantRepository interface {
	Create(ctx context.Context, p *model.Participant) error
	GetByID(ctx context.Context, id string) (*model.Participant, error)
	ListByJe(ctx context.Context, jeID string) ([]model.Participant, error)
	// ListByJeForUpdate locks the JE's roster rows, serializing concurrent
	// place reservations within one JE.
	ListByJeForUpdate(ctx context.Context, jeID string) ([]model.Participant, error)
	ListAll(ctx context.Context) ([]model.Participant, error)
	Update(ctx context.Context, p *model.Participant) error
	UpdatePlace(ctx context.Context, participantID string, placeName *string, updatedBy string) error
	Delete(ctx context.Context, id string) error
	CountPaidByJe(ctx context.Context, jeID string) (int64, error)
	ReservedPlacesByJe(ctx context.Context, jeID string) ([]string, error)
}

type participantRepo struct {
	db *gorm.DB
}

// NewParticipantRepo creates the GORM-backed ParticipantRepository.
func NewParticipantRepo(db *gorm.DB) ParticipantRepository {
	return &participantRepo{db: db}
}

func (r *participantRepo) Create(ctx context.Context, p *model.Participant) error {
	return dbFor(ctx, r.db).Create(p).Error
}

func (r *participantRepo) GetByID(ctx context.Context, id string) (*model.Participant, error) {
	var p model.Participant
	err := dbFor(ctx, r.db).
		Preload("Je").
		Where("participant_id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *participantRepo) ListByJe(ctx context.Context, jeID string) ([]model.Participant, error) {
	var participants []model.Participant
	err := dbFor(ctx, r.db).
		Where("je_id = ?", jeID).
		Order("last_name ASC, first_name ASC").
		Find(&participants).Error
	return participants, err
}

func (r *participantRepo) ListByJeForUpdate(ctx context.Context, jeID string) ([]model.Participant, error) {
	var participants []model.Participant
	err := dbFor(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("je_id = ?", jeID).
		Order("last_name ASC, first_name ASC").
		Find(&participants).Error
	return participants, err
}

func (r *participantRepo) ListAll(ctx context.Context) ([]model.Participant, error) {
	var participants []model.Participant
	err := dbFor(ctx, r.db).
		Preload("Je").
		Order("last_name ASC, first_name ASC").
		Find(&participants).Error
	return participants, err
}

func (r *participantRepo) Update(ctx context.Context, p *model.Participant) error {
	return dbFor(ctx, r.db).Save(p).Error
}

func (r *participantRepo) UpdatePlace(ctx context.Context, participantID string, placeName *string, updatedBy string) error {
	err := dbFor(ctx, r.db).
		Model(&model.Participant{}).
		Where("participant_id = ?", participantID).
		Updates(map[string]interface{}{
			"place_name": placeName,
			"updated_by": updatedBy,
			"updated_at": gorm.Expr("NOW()"),
		}).Error
	// uq_participants_place firing means a concurrent writer holds the name
	if apperrors.IsUniqueViolation(err) {
		return apperrors.ErrPlaceTaken
	}
	return err
}

func (r *participantRepo) Delete(ctx context.Context, id string) error {
	return dbFor(ctx, r.db).
		Where("participant_id = ?", id).
		Delete(&model.Participant{}).Error
}

func (r *participantRepo) CountPaidByJe(ctx context.Context, jeID string) (int64, error) {
	var count int64
	err := dbFor(ctx, r.db).
		Model(&model.Participant{}).
		Where("je_id = ? AND payment_status IN ?", jeID, []string{model.PaymentPartial, model.PaymentPaid}).
		Count(&count).Error
	return count, err
}

func (r *participantRepo) ReservedPlacesByJe(ctx context.Context, jeID string) ([]string, error) {
	var places []string
	err := dbFor(ctx, r.db).
		Model(&model.Participant{}).
		Where("je_id = ? AND place_name IS NOT NULL", jeID).
		Order("place_name ASC").
		Pluck("place_name", &places).Error
	return places, err
}
