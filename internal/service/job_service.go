package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/amenibouabdallah/JOBS-sub001/internal/dto"
	"github.com/amenibouabdallah/JOBS-sub001/internal/model"
	"github.com/amenibouabdallah/JOBS-sub001/internal/repository"
)

// ErrJobNotFound is returned for unknown job offers.
var ErrJobNotFound = errors.New("job not found")

// JobService manages the job board.
type JobService interface {
	Create(ctx context.Context, req *dto.CreateJobRequest, callerID string) (*dto.JobResponse, error)
	GetByID(ctx context.Context, id string) (*dto.JobResponse, error)
	// List returns published offers only unless includeUnpublished is set
	// (admin view).
	List(ctx context.Context, includeUnpublished bool) ([]dto.JobResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateJobRequest, callerID string) (*dto.JobResponse, error)
	Delete(ctx context.Context, id string) error
}

type jobService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewJobService creates a JobService.
func NewJobService(repo *repository.Repository, logger *zap.Logger) JobService {
	return &jobService{repo: repo, logger: logger}
}

func (s *jobService) Create(ctx context.Context, req *dto.CreateJobRequest, callerID string) (*dto.JobResponse, error) {
	job := &model.Job{
		Title:        req.Title,
		Company:      req.Company,
		Description:  req.Description,
		ContactEmail: req.ContactEmail,
		Published:    true,
	}
	if req.Published != nil {
		job.Published = *req.Published
	}
	job.CreatedBy = &callerID
	job.UpdatedBy = &callerID

	if err := s.repo.Job.Create(ctx, job); err != nil {
		s.logger.Error("creating job failed", zap.String("title", req.Title), zap.Error(err))
		return nil, err
	}
	return toJobResponse(job), nil
}

func (s *jobService) GetByID(ctx context.Context, id string) (*dto.JobResponse, error) {
	job, err := s.repo.Job.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return toJobResponse(job), nil
}

func (s *jobService) List(ctx context.Context, includeUnpublished bool) ([]dto.JobResponse, error) {
	jobs, err := s.repo.Job.List(ctx, !includeUnpublished)
	if err != nil {
		s.logger.Error("listing jobs failed", zap.Error(err))
		return nil, err
	}
	result := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		result = append(result, *toJobResponse(&jobs[i]))
	}
	return result, nil
}

func (s *jobService) Update(ctx context.Context, id string, req *dto.UpdateJobRequest, callerID string) (*dto.JobResponse, error) {
	job, err := s.repo.Job.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.ContactEmail != nil {
		job.ContactEmail = *req.ContactEmail
	}
	if req.Published != nil {
		job.Published = *req.Published
	}
	job.UpdatedBy = &callerID

	if err := s.repo.Job.Update(ctx, job); err != nil {
		s.logger.Error("updating job failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toJobResponse(job), nil
}

func (s *jobService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Job.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJobNotFound
		}
		return err
	}
	if err := s.repo.Job.Delete(ctx, id); err != nil {
		s.logger.Error("deleting job failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func toJobResponse(job *model.Job) *dto.JobResponse {
	return &dto.JobResponse{
		ID:           job.JobID,
		Title:        job.Title,
		Company:      job.Company,
		Description:  job.Description,
		ContactEmail: job.ContactEmail,
		Published:    job.Published,
		CreatedAt:    fmtTime(job.CreatedAt),
		UpdatedAt:    fmtTime(job.UpdatedAt),
	}
}
