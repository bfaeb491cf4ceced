package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amenibouabdallah/JOBS-sub001/internal/model"
)

// JobRepository is the job offer data access interface.
type JobRepository interface {
	Create(ctx context.Context, j *model.Job) error
	GetByID(ctx context.Context, id string) (*model.Job, error)
	List(ctx context.Context, publishedOnly bool) ([]model.Job, error)
	Update(ctx context.Context, j *model.Job) error
	Delete(ctx context.Context, id string) error
}

type jobRepo struct {
	db *gorm.DB
}

// NewJobRepo creates the GORM-backed JobRepository.
func NewJobRepo(db *gorm.DB) JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, j *model.Job) error {
	return dbFor(ctx, r.db).Create(j).Error
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*model.Job, error) {
	var j model.Job
	err := dbFor(ctx, r.db).
		Where("job_id = ?", id).
		First(&j).Error
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *jobRepo) List(ctx context.Context, publishedOnly bool) ([]model.Job, error) {
	var jobs []model.Job
	db := dbFor(ctx, r.db)
	if publishedOnly {
		db = db.Where("published = ?", true)
	}
	err := db.Order("company ASC, title ASC").Find(&jobs).Error
	return jobs, err
}

func (r *jobRepo) Update(ctx context.Context, j *model.Job) error {
	return dbFor(ctx, r.db).Save(j).Error
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	return dbFor(ctx, r.db).
		Where("job_id = ?", id).
		Delete(&model.Job{}).Error
}
