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

// ── activity module errors ──

var (
	ErrActivityNotFound      = errors.New("activity not found")
	ErrActivityHasSelections = errors.New("activity still has selections")
	ErrInvalidSchedule       = errors.New("activity must end after it starts")
	ErrSalleNotFound         = errors.New("salle not found")
	ErrActivityTypeNotFound  = errors.New("activity type not found")
)

// ActivityService manages the seminar program.
type ActivityService interface {
	Create(ctx context.Context, req *dto.CreateActivityRequest, callerID string) (*dto.ActivityResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ActivityResponse, error)
	List(ctx context.Context) ([]dto.ActivityResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateActivityRequest, callerID string) (*dto.ActivityResponse, error)
	// Delete refuses to remove an activity that still has selections.
	Delete(ctx context.Context, id string) error
}

type activityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewActivityService creates an ActivityService.
func NewActivityService(repo *repository.Repository, logger *zap.Logger) ActivityService {
	return &activityService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *activityService) Create(ctx context.Context, req *dto.CreateActivityRequest, callerID string) (*dto.ActivityResponse, error) {
	if err := s.checkRefs(ctx, req.SalleID, req.ActivityTypeID); err != nil {
		return nil, err
	}

	activity := &model.Activity{
		Name:             req.Name,
		Description:      req.Description,
		StartsAt:         req.StartsAt,
		EndsAt:           req.EndsAt,
		Capacity:         req.Capacity,
		SalleID:          req.SalleID,
		ActivityTypeID:   req.ActivityTypeID,
		IsRequired:       req.IsRequired,
		RequiredForRoles: model.StringArray(req.RequiredForRoles),
	}
	activity.CreatedBy = &callerID
	activity.UpdatedBy = &callerID

	if err := s.repo.Activity.Create(ctx, activity); err != nil {
		s.logger.Error("creating activity failed", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, activity.ActivityID)
}

// ────────────────────── GetByID ──────────────────────

func (s *activityService) GetByID(ctx context.Context, id string) (*dto.ActivityResponse, error) {
	activity, err := s.repo.Activity.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}

	count, err := s.repo.Selection.CountByActivity(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.toActivityResponse(activity, count), nil
}

// ────────────────────── List ──────────────────────

func (s *activityService) List(ctx context.Context) ([]dto.ActivityResponse, error) {
	activities, err := s.repo.Activity.List(ctx)
	if err != nil {
		s.logger.Error("listing activities failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ActivityResponse, 0, len(activities))
	for i := range activities {
		a := &activities[i]
		count, err := s.repo.Selection.CountByActivity(ctx, a.ActivityID)
		if err != nil {
			return nil, err
		}
		result = append(result, *s.toActivityResponse(a, count))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *activityService) Update(ctx context.Context, id string, req *dto.UpdateActivityRequest, callerID string) (*dto.ActivityResponse, error) {
	activity, err := s.repo.Activity.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}

	if err := s.checkRefs(ctx, req.SalleID, req.ActivityTypeID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		activity.Name = *req.Name
	}
	if req.Description != nil {
		activity.Description = *req.Description
	}
	if req.StartsAt != nil {
		activity.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		activity.EndsAt = *req.EndsAt
	}
	if req.Capacity != nil {
		activity.Capacity = *req.Capacity
	}
	if req.SalleID != nil {
		activity.SalleID = req.SalleID
	}
	if req.ActivityTypeID != nil {
		activity.ActivityTypeID = req.ActivityTypeID
	}
	if req.IsRequired != nil {
		activity.IsRequired = *req.IsRequired
	}
	if req.RequiredForRoles != nil {
		activity.RequiredForRoles = model.StringArray(req.RequiredForRoles)
	}
	if activity.EndsAt.Before(activity.StartsAt) || activity.EndsAt.Equal(activity.StartsAt) {
		return nil, ErrInvalidSchedule
	}
	activity.UpdatedBy = &callerID

	if err := s.repo.Activity.Update(ctx, activity); err != nil {
		s.logger.Error("updating activity failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// ────────────────────── Delete ──────────────────────

func (s *activityService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Activity.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrActivityNotFound
		}
		return err
	}

	count, err := s.repo.Selection.CountByActivity(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrActivityHasSelections
	}

	if err := s.repo.Activity.Delete(ctx, id); err != nil {
		s.logger.Error("deleting activity failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── helpers ──

func (s *activityService) checkRefs(ctx context.Context, salleID, activityTypeID *string) error {
	if salleID != nil {
		if _, err := s.repo.Salle.GetByID(ctx, *salleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSalleNotFound
			}
			return err
		}
	}
	if activityTypeID != nil {
		if _, err := s.repo.ActivityType.GetByID(ctx, *activityTypeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrActivityTypeNotFound
			}
			return err
		}
	}
	return nil
}

func (s *activityService) toActivityResponse(a *model.Activity, selectionCount int64) *dto.ActivityResponse {
	resp := &dto.ActivityResponse{
		ID:               a.ActivityID,
		Name:             a.Name,
		Description:      a.Description,
		StartsAt:         fmtTime(a.StartsAt),
		EndsAt:           fmtTime(a.EndsAt),
		Capacity:         a.Capacity,
		SalleID:          a.SalleID,
		ActivityTypeID:   a.ActivityTypeID,
		IsRequired:       a.IsRequired,
		RequiredForRoles: a.RequiredForRoles,
		SelectionCount:   selectionCount,
	}
	if a.Salle != nil {
		resp.SalleName = a.Salle.Name
	}
	if a.ActivityType != nil {
		resp.ActivityTypeName = a.ActivityType.Name
	}
	return resp
}
