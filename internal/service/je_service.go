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

// ── JE module errors ──

var (
	ErrJeNotFound        = errors.New("JE not found")
	ErrJeNameExists      = errors.New("a JE with this name already exists")
	ErrJeHasParticipants = errors.New("JE still has registered participants")
)

// JeService manages Junior-Entreprise records.
type JeService interface {
	Create(ctx context.Context, req *dto.CreateJeRequest, callerID string) (*dto.JeResponse, error)
	GetByID(ctx context.Context, id string) (*dto.JeResponse, error)
	List(ctx context.Context) ([]dto.JeResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateJeRequest, callerID string) (*dto.JeResponse, error)
	// Delete refuses to remove a JE that still has participants; its
	// reserved zone, if any, is released.
	Delete(ctx context.Context, id string, callerID string) error
}

type jeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewJeService creates a JeService.
func NewJeService(repo *repository.Repository, logger *zap.Logger) JeService {
	return &jeService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *jeService) Create(ctx context.Context, req *dto.CreateJeRequest, callerID string) (*dto.JeResponse, error) {
	if _, err := s.repo.Je.GetByName(ctx, req.Name); err == nil {
		return nil, ErrJeNameExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	je := &model.Je{
		Name:         req.Name,
		Code:         req.Code,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	}
	je.CreatedBy = &callerID
	je.UpdatedBy = &callerID

	if err := s.repo.Je.Create(ctx, je); err != nil {
		s.logger.Error("creating JE failed", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}

	return s.toJeResponse(ctx, je)
}

// ────────────────────── GetByID ──────────────────────

func (s *jeService) GetByID(ctx context.Context, id string) (*dto.JeResponse, error) {
	je, err := s.repo.Je.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJeNotFound
		}
		return nil, err
	}
	return s.toJeResponse(ctx, je)
}

// ────────────────────── List ──────────────────────

func (s *jeService) List(ctx context.Context) ([]dto.JeResponse, error) {
	jes, err := s.repo.Je.List(ctx)
	if err != nil {
		s.logger.Error("listing JEs failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.JeResponse, 0, len(jes))
	for i := range jes {
		resp, err := s.toJeResponse(ctx, &jes[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *resp)
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *jeService) Update(ctx context.Context, id string, req *dto.UpdateJeRequest, callerID string) (*dto.JeResponse, error) {
	je, err := s.repo.Je.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJeNotFound
		}
		return nil, err
	}

	if req.Name != nil && *req.Name != je.Name {
		if _, err := s.repo.Je.GetByName(ctx, *req.Name); err == nil {
			return nil, ErrJeNameExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		je.Name = *req.Name
	}
	if req.Code != nil {
		je.Code = *req.Code
	}
	if req.ContactEmail != nil {
		je.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		je.ContactPhone = *req.ContactPhone
	}
	je.UpdatedBy = &callerID

	if err := s.repo.Je.Update(ctx, je); err != nil {
		s.logger.Error("updating JE failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toJeResponse(ctx, je)
}

// ────────────────────── Delete ──────────────────────

func (s *jeService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.repo.Je.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJeNotFound
		}
		return err
	}

	count, err := s.repo.Je.CountParticipants(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrJeHasParticipants
	}

	return s.repo.Tx.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Zone.ReleaseByJe(txCtx, id, callerID); err != nil {
			return err
		}
		if err := s.repo.Je.Delete(txCtx, id); err != nil {
			s.logger.Error("deleting JE failed", zap.String("id", id), zap.Error(err))
			return err
		}
		return nil
	})
}

// ── helpers ──

func (s *jeService) toJeResponse(ctx context.Context, je *model.Je) (*dto.JeResponse, error) {
	resp := &dto.JeResponse{
		ID:           je.JeID,
		Name:         je.Name,
		Code:         je.Code,
		ContactEmail: je.ContactEmail,
		ContactPhone: je.ContactPhone,
		CreatedAt:    fmtTime(je.CreatedAt),
		UpdatedAt:    fmtTime(je.UpdatedAt),
	}

	zone, err := s.repo.Zone.GetByJe(ctx, je.JeID)
	switch {
	case err == nil:
		resp.ReservedZone = &zone.Name
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no zone reserved yet
	default:
		return nil, err
	}

	count, err := s.repo.Je.CountParticipants(ctx, je.JeID)
	if err != nil {
		return nil, err
	}
	resp.ParticipantCount = count

	return resp, nil
}
