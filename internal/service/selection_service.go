package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/amenibouabdallah/JOBS-sub001/internal/dto"
	"github.com/amenibouabdallah/JOBS-sub001/internal/model"
	"github.com/amenibouabdallah/JOBS-sub001/internal/repository"
	apperrors "github.com/amenibouabdallah/JOBS-sub001/pkg/errors"
)

// ── selection module errors ──

var (
	ErrAlreadySelected      = errors.New("activity already selected")
	ErrActivityExcluded     = errors.New("activity excluded by an existing selection")
	ErrRequiredActivityFull = errors.New("required activity is at capacity")
)

// SelectionService evaluates eligibility rules and manages activity
// selections.
type SelectionService interface {
	// Select creates a selection after checking duplicates, capacity and
	// EXCLUDES correlations (both directions, role-scoped). The response
	// carries unmet REQUIRES targets as advisory only.
	Select(ctx context.Context, participantID, activityID, callerID string) (*dto.SelectActivityResponse, error)
	// Deselect removes a selection. Removing a selection that does not
	// exist is a no-op.
	Deselect(ctx context.Context, participantID, activityID string) error
	ListForParticipant(ctx context.Context, participantID string) ([]dto.SelectionResponse, error)
	// EnsureRequired creates the missing selections for every activity
	// mandatory for the participant's role. A mandatory activity at
	// capacity is a configuration error and aborts the sweep.
	EnsureRequired(ctx context.Context, participantID, callerID string) (*dto.EnsureRequiredResponse, error)
}

type selectionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSelectionService creates a SelectionService.
func NewSelectionService(repo *repository.Repository, logger *zap.Logger) SelectionService {
	return &selectionService{repo: repo, logger: logger}
}

// ────────────────────── Select ──────────────────────

func (s *selectionService) Select(ctx context.Context, participantID, activityID, callerID string) (*dto.SelectActivityResponse, error) {
	participant, err := s.repo.Participant.GetByID(ctx, participantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantNotFound
		}
		s.logger.Error("querying participant failed", zap.String("id", participantID), zap.Error(err))
		return nil, err
	}

	var resp dto.SelectActivityResponse
	err = s.repo.Tx.WithTx(ctx, func(txCtx context.Context) error {
		// the activity row lock serializes concurrent capacity checks
		activity, err := s.repo.Activity.GetByIDForUpdate(txCtx, activityID)
		if err != nil {
			return err
		}

		exists, err := s.repo.Selection.Exists(txCtx, participantID, activityID)
		if err != nil {
			return err
		}
		if exists {
			return ErrAlreadySelected
		}

		count, err := s.repo.Selection.CountByActivity(txCtx, activityID)
		if err != nil {
			return err
		}
		if activity.Capacity > 0 && count >= int64(activity.Capacity) {
			return apperrors.ErrActivityFull
		}

		selections, err := s.repo.Selection.ListByParticipant(txCtx, participantID)
		if err != nil {
			return err
		}
		selected := make(map[string]bool, len(selections))
		for i := range selections {
			selected[selections[i].ActivityID] = true
		}

		correlations, err := s.repo.Correlation.ListForActivity(txCtx, activityID)
		if err != nil {
			return err
		}

		// EXCLUDES applies in both directions when the role scope matches
		for i := range correlations {
			c := &correlations[i]
			if c.Rule != model.RuleExcludes || !c.AppliesTo(participant.Role) {
				continue
			}
			other := c.TargetActivityID
			if other == activityID {
				other = c.SourceActivityID
			}
			if selected[other] {
				return ErrActivityExcluded
			}
		}

		sel := &model.ActivitySelection{
			ParticipantID: participantID,
			ActivityID:    activityID,
		}
		sel.CreatedBy = &callerID
		sel.UpdatedBy = &callerID
		if err := s.repo.Selection.Create(txCtx, sel); err != nil {
			return err
		}

		resp.Selection = dto.SelectionResponse{
			ID:         sel.SelectionID,
			ActivityID: activityID,
			Activity:   &dto.ActivityRef{ID: activity.ActivityID, Name: activity.Name, StartsAt: fmtTime(activity.StartsAt)},
			CreatedAt:  fmtTime(sel.CreatedAt),
		}

		// advisory: REQUIRES targets of this activity not yet selected
		for i := range correlations {
			c := &correlations[i]
			if c.Rule != model.RuleRequires || c.SourceActivityID != activityID || !c.AppliesTo(participant.Role) {
				continue
			}
			if selected[c.TargetActivityID] {
				continue
			}
			target, err := s.repo.Activity.GetByID(txCtx, c.TargetActivityID)
			if err != nil {
				return err
			}
			resp.RequiredActivities = append(resp.RequiredActivities, dto.ActivityRef{
				ID:       target.ActivityID,
				Name:     target.Name,
				StartsAt: fmtTime(target.StartsAt),
			})
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		switch {
		case errors.Is(err, ErrAlreadySelected),
			errors.Is(err, ErrActivityExcluded),
			errors.Is(err, apperrors.ErrActivityFull):
			// business outcome, not a failure
		default:
			s.logger.Error("selecting activity failed",
				zap.String("participant_id", participantID),
				zap.String("activity_id", activityID),
				zap.Error(err),
			)
		}
		return nil, err
	}

	return &resp, nil
}

// ────────────────────── Deselect ──────────────────────

func (s *selectionService) Deselect(ctx context.Context, participantID, activityID string) error {
	if _, err := s.repo.Participant.GetByID(ctx, participantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrParticipantNotFound
		}
		return err
	}

	// deleting an absent selection is deliberately a no-op
	if _, err := s.repo.Selection.Delete(ctx, participantID, activityID); err != nil {
		s.logger.Error("deselecting activity failed",
			zap.String("participant_id", participantID),
			zap.String("activity_id", activityID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// ────────────────────── ListForParticipant ──────────────────────

func (s *selectionService) ListForParticipant(ctx context.Context, participantID string) ([]dto.SelectionResponse, error) {
	if _, err := s.repo.Participant.GetByID(ctx, participantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}

	selections, err := s.repo.Selection.ListByParticipant(ctx, participantID)
	if err != nil {
		s.logger.Error("listing selections failed", zap.String("participant_id", participantID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.SelectionResponse, 0, len(selections))
	for i := range selections {
		sel := &selections[i]
		resp := dto.SelectionResponse{
			ID:         sel.SelectionID,
			ActivityID: sel.ActivityID,
			CreatedAt:  fmtTime(sel.CreatedAt),
		}
		if sel.Activity != nil {
			resp.Activity = &dto.ActivityRef{
				ID:       sel.Activity.ActivityID,
				Name:     sel.Activity.Name,
				StartsAt: fmtTime(sel.Activity.StartsAt),
			}
		}
		result = append(result, resp)
	}
	return result, nil
}

// ────────────────────── EnsureRequired ──────────────────────

func (s *selectionService) EnsureRequired(ctx context.Context, participantID, callerID string) (*dto.EnsureRequiredResponse, error) {
	participant, err := s.repo.Participant.GetByID(ctx, participantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}

	required, err := s.repo.Activity.ListRequired(ctx)
	if err != nil {
		s.logger.Error("listing required activities failed", zap.Error(err))
		return nil, err
	}

	resp := &dto.EnsureRequiredResponse{Created: []dto.ActivityRef{}}
	for i := range required {
		a := &required[i]
		if !a.RequiredFor(participant.Role) {
			continue
		}

		err := s.repo.Tx.WithTx(ctx, func(txCtx context.Context) error {
			activity, err := s.repo.Activity.GetByIDForUpdate(txCtx, a.ActivityID)
			if err != nil {
				return err
			}

			exists, err := s.repo.Selection.Exists(txCtx, participantID, a.ActivityID)
			if err != nil {
				return err
			}
			if exists {
				return nil
			}

			count, err := s.repo.Selection.CountByActivity(txCtx, a.ActivityID)
			if err != nil {
				return err
			}
			if activity.Capacity > 0 && count >= int64(activity.Capacity) {
				// a mandatory activity nobody can join any more: surface it
				return fmt.Errorf("%w: %s", ErrRequiredActivityFull, activity.Name)
			}

			sel := &model.ActivitySelection{
				ParticipantID: participantID,
				ActivityID:    a.ActivityID,
			}
			sel.CreatedBy = &callerID
			sel.UpdatedBy = &callerID
			if err := s.repo.Selection.Create(txCtx, sel); err != nil {
				return err
			}

			resp.Created = append(resp.Created, dto.ActivityRef{
				ID:       a.ActivityID,
				Name:     a.Name,
				StartsAt: fmtTime(a.StartsAt),
			})
			return nil
		})
		if err != nil {
			if !errors.Is(err, ErrRequiredActivityFull) {
				s.logger.Error("ensuring required selection failed",
					zap.String("participant_id", participantID),
					zap.String("activity_id", a.ActivityID),
					zap.Error(err),
				)
			}
			return nil, err
		}
	}

	return resp, nil
}
