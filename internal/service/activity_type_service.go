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

// ActivityTypeService manages activity categories.
type ActivityTypeService interface {
	Create(ctx context.Context, req *dto.CreateActivityTypeRequest, callerID string) (*dto.ActivityTypeResponse, error)
	List(ctx context.Context) ([]dto.ActivityTypeResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateActivityTypeRequest, callerID string) (*dto.ActivityTypeResponse, error)
	Delete(ctx context.Context, id string) error
}

type activityTypeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewActivityTypeService creates an ActivityTypeService.
func NewActivityTypeService(repo *repository.Repository, logger *zap.Logger) ActivityTypeService {
	return &activityTypeService{repo: repo, logger: logger}
}

func (s *activityTypeService) Create(ctx context.Context, req *dto.CreateActivityTypeRequest, callerID string) (*dto.ActivityTypeResponse, error) {
	t := &model.ActivityType{
		Name:        req.Name,
		Description: req.Description,
	}
	t.CreatedBy = &callerID
	t.UpdatedBy = &callerID

	if err := s.repo.ActivityType.Create(ctx, t); err != nil {
		s.logger.Error("creating activity type failed", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}
	return toActivityTypeResponse(t), nil
}

func (s *activityTypeService) List(ctx context.Context) ([]dto.ActivityTypeResponse, error) {
	types, err := s.repo.ActivityType.List(ctx)
	if err != nil {
		s.logger.Error("listing activity types failed", zap.Error(err))
		return nil, err
	}
	result := make([]dto.ActivityTypeResponse, 0, len(types))
	for i := range types {
		result = append(result, *toActivityTypeResponse(&types[i]))
	}
	return result, nil
}

func (s *activityTypeService) Update(ctx context.Context, id string, req *dto.UpdateActivityTypeRequest, callerID string) (*dto.ActivityTypeResponse, error) {
	t, err := s.repo.ActivityType.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityTypeNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	t.UpdatedBy = &callerID

	if err := s.repo.ActivityType.Update(ctx, t); err != nil {
		s.logger.Error("updating activity type failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toActivityTypeResponse(t), nil
}

func (s *activityTypeService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.ActivityType.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrActivityTypeNotFound
		}
		return err
	}
	if err := s.repo.ActivityType.Delete(ctx, id); err != nil {
		s.logger.Error("deleting activity type failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func toActivityTypeResponse(t *model.ActivityType) *dto.ActivityTypeResponse {
	return &dto.ActivityTypeResponse{
		ID:          t.ActivityTypeID,
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   fmtTime(t.CreatedAt),
		UpdatedAt:   fmtTime(t.UpdatedAt),
	}
}
