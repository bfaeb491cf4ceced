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

// ErrSalleNameExists rejects duplicate room names.
var ErrSalleNameExists = errors.New("a salle with this name already exists")

// SalleService manages the rooms hosting activities.
type SalleService interface {
	Create(ctx context.Context, req *dto.CreateSalleRequest, callerID string) (*dto.SalleResponse, error)
	GetByID(ctx context.Context, id string) (*dto.SalleResponse, error)
	List(ctx context.Context) ([]dto.SalleResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateSalleRequest, callerID string) (*dto.SalleResponse, error)
	Delete(ctx context.Context, id string) error
}

type salleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSalleService creates a SalleService.
func NewSalleService(repo *repository.Repository, logger *zap.Logger) SalleService {
	return &salleService{repo: repo, logger: logger}
}

func (s *salleService) Create(ctx context.Context, req *dto.CreateSalleRequest, callerID string) (*dto.SalleResponse, error) {
	if _, err := s.repo.Salle.GetByName(ctx, req.Name); err == nil {
		return nil, ErrSalleNameExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	salle := &model.Salle{
		Name:     req.Name,
		Capacity: req.Capacity,
		Floor:    req.Floor,
	}
	salle.CreatedBy = &callerID
	salle.UpdatedBy = &callerID

	if err := s.repo.Salle.Create(ctx, salle); err != nil {
		s.logger.Error("creating salle failed", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}
	return toSalleResponse(salle), nil
}

func (s *salleService) GetByID(ctx context.Context, id string) (*dto.SalleResponse, error) {
	salle, err := s.repo.Salle.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSalleNotFound
		}
		return nil, err
	}
	return toSalleResponse(salle), nil
}

func (s *salleService) List(ctx context.Context) ([]dto.SalleResponse, error) {
	salles, err := s.repo.Salle.List(ctx)
	if err != nil {
		s.logger.Error("listing salles failed", zap.Error(err))
		return nil, err
	}
	result := make([]dto.SalleResponse, 0, len(salles))
	for i := range salles {
		result = append(result, *toSalleResponse(&salles[i]))
	}
	return result, nil
}

func (s *salleService) Update(ctx context.Context, id string, req *dto.UpdateSalleRequest, callerID string) (*dto.SalleResponse, error) {
	salle, err := s.repo.Salle.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSalleNotFound
		}
		return nil, err
	}

	if req.Name != nil && *req.Name != salle.Name {
		if _, err := s.repo.Salle.GetByName(ctx, *req.Name); err == nil {
			return nil, ErrSalleNameExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		salle.Name = *req.Name
	}
	if req.Capacity != nil {
		salle.Capacity = *req.Capacity
	}
	if req.Floor != nil {
		salle.Floor = *req.Floor
	}
	salle.UpdatedBy = &callerID

	if err := s.repo.Salle.Update(ctx, salle); err != nil {
		s.logger.Error("updating salle failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toSalleResponse(salle), nil
}

func (s *salleService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Salle.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSalleNotFound
		}
		return err
	}
	if err := s.repo.Salle.Delete(ctx, id); err != nil {
		s.logger.Error("deleting salle failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func toSalleResponse(salle *model.Salle) *dto.SalleResponse {
	return &dto.SalleResponse{
		ID:        salle.SalleID,
		Name:      salle.Name,
		Capacity:  salle.Capacity,
		Floor:     salle.Floor,
		CreatedAt: fmtTime(salle.CreatedAt),
		UpdatedAt: fmtTime(salle.UpdatedAt),
	}
}
