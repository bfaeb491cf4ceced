package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amenibouabdallah/JOBS-sub001/internal/model"
	apperrors "github.com/amenibouabdallah/JOBS-sub001/pkg/errors"
)

// ZoneRepository is the zone data access interface. The je_id column is the
// only stored ownership mapping; a partial unique index keeps it one zone
// per JE even if two transactions race past the row lock.
type ZoneRepository interface {
	CreateBatch(ctx context.Context, zones []model.Zone) error
	GetByID(ctx context.Context, id string) (*model.Zone, error)
	// GetByIDForUpdate locks the zone row for the reservation
	// read-check-write sequence.
	GetByIDForUpdate(ctx context.Context, id string) (*model.Zone, error)
	GetByJe(ctx context.Context, jeID string) (*model.Zone, error)
	List(ctx context.Context) ([]model.Zone, error)
	Count(ctx context.Context) (int64, error)
	UpdateOwner(ctx context.Context, zoneID string, jeID *string, updatedBy string) error
	ReleaseByJe(ctx context.Context, jeID string, updatedBy string) error
}

type zoneRepo struct {
	db *gorm.DB
}

// NewZoneRepo creates the GORM-backed ZoneRepository.
func NewZoneRepo(db *gorm.DB) ZoneRepository {
	return &zoneRepo{db: db}
}

func (r *zoneRepo) CreateBatch(ctx context.Context, zones []model.Zone) error {
	return dbFor(ctx, r.db).Create(&zones).Error
}

func (r *zoneRepo) GetByID(ctx context.Context, id string) (*model.Zone, error) {
	var zone model.Zone
	err := dbFor(ctx, r.db).
		Preload("Je.Participants").
		Where("zone_id = ?", id).
		First(&zone).Error
	if err != nil {
		return nil, err
	}
	return &zone, nil
}

func (r *zoneRepo) GetByIDForUpdate(ctx context.Context, id string) (*model.Zone, error) {
	var zone model.Zone
	err := dbFor(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("zone_id = ?", id).
		First(&zone).Error
	if err != nil {
		return nil, err
	}
	return &zone, nil
}

func (r *zoneRepo) GetByJe(ctx context.Context, jeID string) (*model.Zone, error) {
	var zone model.Zone
	err := dbFor(ctx, r.db).
		Where("je_id = ?", jeID).
		First(&zone).Error
	if err != nil {
		return nil, err
	}
	return &zone, nil
}

func (r *zoneRepo) List(ctx context.Context) ([]model.Zone, error) {
	var zones []model.Zone
	err := dbFor(ctx, r.db).
		Preload("Je").
		Order("name ASC").
		Find(&zones).Error
	return zones, err
}

func (r *zoneRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := dbFor(ctx, r.db).
		Model(&model.Zone{}).
		Count(&count).Error
	return count, err
}

func (r *zoneRepo) UpdateOwner(ctx context.Context, zoneID string, jeID *string, updatedBy string) error {
	err := dbFor(ctx, r.db).
		Model(&model.Zone{}).
		Where("zone_id = ?", zoneID).
		Updates(map[string]interface{}{
			"je_id":      jeID,
			"updated_by": updatedBy,
			"updated_at": gorm.Expr("NOW()"),
		}).Error
	// uq_zones_owner firing means a concurrent writer won the zone
	if apperrors.IsUniqueViolation(err) {
		return apperrors.ErrZoneTaken
	}
	return err
}

func (r *zoneRepo) ReleaseByJe(ctx context.Context, jeID string, updatedBy string) error {
	return dbFor(ctx, r.db).
		Model(&model.Zone{}).
		Where("je_id = ?", jeID).
		Updates(map[string]interface{}{
			"je_id":      nil,
			"updated_by": updatedBy,
			"updated_at": gorm.Expr("NOW()"),
		}).Error
}
