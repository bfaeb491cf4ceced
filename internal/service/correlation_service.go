package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/amenibouabdallah/JOBS-sub001/internal/dto"
	"github.com/amenibouabdallah/JOBS-sub001/internal/model"
	"github.com/amenibouabdallah/JOBS-sub001/internal/repository"
)

// ── correlation module errors ──

var (
	ErrCorrelationNotFound = errors.New("correlation not found")
	ErrSelfCorrelation     = errors.New("an activity cannot be correlated with itself")
	ErrInvalidRule         = errors.New("rule must be REQUIRES or EXCLUDES")
)

// CorrelationService manages the REQUIRES/EXCLUDES rules between
// activities.
type CorrelationService interface {
	Add(ctx context.Context, req *dto.CreateCorrelationRequest, callerID string) (*dto.CorrelationResponse, error)
	Remove(ctx context.Context, correlationID string) error
	// ListAll returns every correlation with both activity records
	// attached for display.
	ListAll(ctx context.Context) ([]dto.CorrelationResponse, error)
	ListForActivity(ctx context.Context, activityID string) ([]dto.CorrelationResponse, error)
}

type correlationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCorrelationService creates a CorrelationService.
func NewCorrelationService(repo *repository.Repository, logger *zap.Logger) CorrelationService {
	return &correlationService{repo: repo, logger: logger}
}

// ────────────────────── Add ──────────────────────

func (s *correlationService) Add(ctx context.Context, req *dto.CreateCorrelationRequest, callerID string) (*dto.CorrelationResponse, error) {
	rule := strings.ToUpper(req.Rule)
	if rule != model.RuleRequires && rule != model.RuleExcludes {
		return nil, ErrInvalidRule
	}
	if req.SourceActivityID == req.TargetActivityID {
		return nil, ErrSelfCorrelation
	}

	source, err := s.repo.Activity.GetByID(ctx, req.SourceActivityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	target, err := s.repo.Activity.GetByID(ctx, req.TargetActivityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}

	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if role == "" {
		role = model.RoleAll
	}

	correlation := &model.ActivityCorrelation{
		SourceActivityID: source.ActivityID,
		TargetActivityID: target.ActivityID,
		Rule:             rule,
		Role:             role,
	}
	correlation.CreatedBy = &callerID
	correlation.UpdatedBy = &callerID

	if err := s.repo.Correlation.Create(ctx, correlation); err != nil {
		s.logger.Error("creating correlation failed",
			zap.String("source", req.SourceActivityID),
			zap.String("target", req.TargetActivityID),
			zap.Error(err),
		)
		return nil, err
	}

	return s.toCorrelationResponse(correlation, source, target), nil
}

// ────────────────────── Remove ──────────────────────

func (s *correlationService) Remove(ctx context.Context, correlationID string) error {
	if _, err := s.repo.Correlation.GetByID(ctx, correlationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCorrelationNotFound
		}
		return err
	}
	if err := s.repo.Correlation.Delete(ctx, correlationID); err != nil {
		s.logger.Error("deleting correlation failed", zap.String("id", correlationID), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── ListAll ──────────────────────

func (s *correlationService) ListAll(ctx context.Context) ([]dto.CorrelationResponse, error) {
	correlations, err := s.repo.Correlation.List(ctx)
	if err != nil {
		s.logger.Error("listing correlations failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.CorrelationResponse, 0, len(correlations))
	for i := range correlations {
		c := &correlations[i]
		result = append(result, *s.toCorrelationResponse(c, c.SourceActivity, c.TargetActivity))
	}
	return result, nil
}

// ────────────────────── ListForActivity ──────────────────────

func (s *correlationService) ListForActivity(ctx context.Context, activityID string) ([]dto.CorrelationResponse, error) {
	if _, err := s.repo.Activity.GetByID(ctx, activityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}

	correlations, err := s.repo.Correlation.ListForActivity(ctx, activityID)
	if err != nil {
		s.logger.Error("listing correlations failed", zap.String("activity_id", activityID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.CorrelationResponse, 0, len(correlations))
	for i := range correlations {
		c := &correlations[i]
		result = append(result, *s.toCorrelationResponse(c, c.SourceActivity, c.TargetActivity))
	}
	return result, nil
}

// ── helpers ──

func (s *correlationService) toCorrelationResponse(c *model.ActivityCorrelation, source, target *model.Activity) *dto.CorrelationResponse {
	resp := &dto.CorrelationResponse{
		ID:        c.CorrelationID,
		Rule:      c.Rule,
		Role:      c.Role,
		CreatedAt: fmtTime(c.CreatedAt),
	}
	if source != nil {
		resp.SourceActivity = &dto.ActivityRef{ID: source.ActivityID, Name: source.Name, StartsAt: fmtTime(source.StartsAt)}
	}
	if target != nil {
		resp.TargetActivity = &dto.ActivityRef{ID: target.ActivityID, Name: target.Name, StartsAt: fmtTime(target.StartsAt)}
	}
	return resp
}
