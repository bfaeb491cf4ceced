package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amenibouabdallah/JOBS-sub001/internal/model"
)

// SalleRepository is the room data access interface.
type SalleRepository interface {
	Create(ctx context.Context, s *model.Salle) error
	GetByID(ctx context.Context, id string) (*model.Salle, error)
	GetByName(ctx context.Context, name string) (*model.Salle, error)
	List(ctx context.Context) ([]model.Salle, error)
	Update(ctx context.Context, s *model.Salle) error
	Delete(ctx context.Context, id string) error
}

type salleRepo struct {
	db *gorm.DB
}

// NewSalleRepo creates the GORM-backed SalleRepository.
func NewSalleRepo(db *gorm.DB) SalleRepository {
	return &salleRepo{db: db}
}

func (r *salleRepo) Create(ctx context.Context, s *model.Salle) error {
	return dbFor(ctx, r.db).Create(s).Error
}

func (r *salleRepo) GetByID(ctx context.Context, id string) (*model.Salle, error) {
	var s model.Salle
	err := dbFor(ctx, r.db).
		Where("salle_id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *salleRepo) GetByName(ctx context.Context, name string) (*model.Salle, error) {
	var s model.Salle
	err := dbFor(ctx, r.db).
		Where("name = ?", name).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *salleRepo) List(ctx context.Context) ([]model.Salle, error) {
	var salles []model.Salle
	err := dbFor(ctx, r.db).
		Order("name ASC").
		Find(&salles).Error
	return salles, err
}

func (r *salleRepo) Update(ctx context.Context, s *model.Salle) error {
	return dbFor(ctx, r.db).Save(s).Error
}

func (r *salleRepo) Delete(ctx context.Context, id string) error {
	return dbFor(ctx, r.db).
		Where("salle_id = ?", id).
		Delete(&model.Salle{}).Error
}
