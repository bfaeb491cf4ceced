package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amenibouabdallah/JOBS-sub001/internal/model"
)

// JeRepository is the Junior-Entreprise data access interface.
type JeRepository interface {
	Create(ctx context.Context, je *model.Je) error
	GetByID(ctx context.Context, id string) (*model.Je, error)
	GetByName(ctx context.Context, name string) (*model.Je, error)
	List(ctx context.Context) ([]model.Je, error)
	Update(ctx context.Context, je *model.Je) error
	Delete(ctx context.Context, id string) error
	CountParticipants(ctx context.Context, jeID string) (int64, error)
}

type jeRepo struct {
	db *gorm.DB
}

// NewJeRepo creates the GORM-backed JeRepository.
func NewJeRepo(db *gorm.DB) JeRepository {
	return &jeRepo{db: db}
}

func (r *jeRepo) Create(ctx context.Context, je *model.Je) error {
	return dbFor(ctx, r.db).Create(je).Error
}

func (r *jeRepo) GetByID(ctx context.Context, id string) (*model.Je, error) {
	var je model.Je
	err := dbFor(ctx, r.db).
		Preload("Participants").
		Where("je_id = ?", id).
		First(&je).Error
	if err != nil {
		return nil, err
	}
	return &je, nil
}

func (r *jeRepo) GetByName(ctx context.Context, name string) (*model.Je, error) {
	var je model.Je
	err := dbFor(ctx, r.db).
		Where("name = ?", name).
		First(&je).Error
	if err != nil {
		return nil, err
	}
	return &je, nil
}

func (r *jeRepo) List(ctx context.Context) ([]model.Je, error) {
	var jes []model.Je
	err := dbFor(ctx, r.db).
		Order("name ASC").
		Find(&jes).Error
	return jes, err
}

func (r *jeRepo) Update(ctx context.Context, je *model.Je) error {
	return dbFor(ctx, r.db).Save(je).Error
}

func (r *jeRepo) Delete(ctx context.Context, id string) error {
	return dbFor(ctx, r.db).
		Where("je_id = ?", id).
		Delete(&model.Je{}).Error
}

func (r *jeRepo) CountParticipants(ctx context.Context, jeID string) (int64, error) {
	var count int64
	err := dbFor(ctx, r.db).
		Model(&model.Participant{}).
		Where("je_id = ?", jeID).
		Count(&count).Error
	return count, err
}
