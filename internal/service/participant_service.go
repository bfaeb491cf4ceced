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

// ── participant module errors ──

var ErrParticipantNotFound = errors.New("participant not found")

// ParticipantService manages participant records and payment state.
type ParticipantService interface {
	Create(ctx context.Context, req *dto.CreateParticipantRequest, callerID string) (*dto.ParticipantResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ParticipantResponse, error)
	ListByJe(ctx context.Context, jeID string) ([]dto.ParticipantResponse, error)
	ListAll(ctx context.Context) ([]dto.ParticipantResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateParticipantRequest, callerID string) (*dto.ParticipantResponse, error)
	// UpdatePayment records a payment state change. Dropping back to
	// unpaid releases the participant's place.
	UpdatePayment(ctx context.Context, id string, req *dto.UpdatePaymentRequest, callerID string) (*dto.ParticipantResponse, error)
	Delete(ctx context.Context, id string) error
}

type participantService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewParticipantService creates a ParticipantService.
func NewParticipantService(repo *repository.Repository, logger *zap.Logger) ParticipantService {
	return &participantService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *participantService) Create(ctx context.Context, req *dto.CreateParticipantRequest, callerID string) (*dto.ParticipantResponse, error) {
	if _, err := s.repo.Je.GetByID(ctx, req.JeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJeNotFound
		}
		return nil, err
	}

	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if role == "" {
		role = "MEMBER"
	}

	participant := &model.Participant{
		JeID:          req.JeID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         strings.ToLower(req.Email),
		Role:          role,
		PaymentStatus: model.PaymentUnpaid,
	}
	participant.CreatedBy = &callerID
	participant.UpdatedBy = &callerID

	if err := s.repo.Participant.Create(ctx, participant); err != nil {
		s.logger.Error("creating participant failed", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, participant.ParticipantID)
}

// ────────────────────── GetByID ──────────────────────

func (s *participantService) GetByID(ctx context.Context, id string) (*dto.ParticipantResponse, error) {
	participant, err := s.repo.Participant.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}
	resp := toParticipantResponse(participant)
	return &resp, nil
}

// ────────────────────── ListByJe ──────────────────────

func (s *participantService) ListByJe(ctx context.Context, jeID string) ([]dto.ParticipantResponse, error) {
	if _, err := s.repo.Je.GetByID(ctx, jeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJeNotFound
		}
		return nil, err
	}

	participants, err := s.repo.Participant.ListByJe(ctx, jeID)
	if err != nil {
		s.logger.Error("listing participants failed", zap.String("je_id", jeID), zap.Error(err))
		return nil, err
	}
	return toParticipantResponses(participants), nil
}

// ────────────────────── ListAll ──────────────────────

func (s *participantService) ListAll(ctx context.Context) ([]dto.ParticipantResponse, error) {
	participants, err := s.repo.Participant.ListAll(ctx)
	if err != nil {
		s.logger.Error("listing participants failed", zap.Error(err))
		return nil, err
	}
	return toParticipantResponses(participants), nil
}

// ────────────────────── Update ──────────────────────

func (s *participantService) Update(ctx context.Context, id string, req *dto.UpdateParticipantRequest, callerID string) (*dto.ParticipantResponse, error) {
	participant, err := s.repo.Participant.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}

	if req.FirstName != nil {
		participant.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		participant.LastName = *req.LastName
	}
	if req.Email != nil {
		participant.Email = strings.ToLower(*req.Email)
	}
	if req.Role != nil {
		participant.Role = strings.ToUpper(strings.TrimSpace(*req.Role))
	}
	participant.UpdatedBy = &callerID

	if err := s.repo.Participant.Update(ctx, participant); err != nil {
		s.logger.Error("updating participant failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// ────────────────────── UpdatePayment ──────────────────────

func (s *participantService) UpdatePayment(ctx context.Context, id string, req *dto.UpdatePaymentRequest, callerID string) (*dto.ParticipantResponse, error) {
	participant, err := s.repo.Participant.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}

	participant.PaymentStatus = req.PaymentStatus
	// a place requires at least a partial payment to hold
	if req.PaymentStatus == model.PaymentUnpaid {
		participant.PlaceName = nil
	}
	participant.UpdatedBy = &callerID

	if err := s.repo.Participant.Update(ctx, participant); err != nil {
		s.logger.Error("updating payment failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// ────────────────────── Delete ──────────────────────

func (s *participantService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Participant.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrParticipantNotFound
		}
		return err
	}

	if err := s.repo.Participant.Delete(ctx, id); err != nil {
		s.logger.Error("deleting participant failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── helpers ──

func toParticipantResponse(p *model.Participant) dto.ParticipantResponse {
	resp := dto.ParticipantResponse{
		ID:            p.ParticipantID,
		JeID:          p.JeID,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Email:         p.Email,
		Role:          p.Role,
		PaymentStatus: p.PaymentStatus,
		PlaceName:     p.PlaceName,
		CreatedAt:     fmtTime(p.CreatedAt),
		UpdatedAt:     fmtTime(p.UpdatedAt),
	}
	if p.Je != nil {
		resp.JeName = p.Je.Name
	}
	return resp
}

func toParticipantResponses(participants []model.Participant) []dto.ParticipantResponse {
	result := make([]dto.ParticipantResponse, 0, len(participants))
	for i := range participants {
		result = append(result, toParticipantResponse(&participants[i]))
	}
	return result
}
