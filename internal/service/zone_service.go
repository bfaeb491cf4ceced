package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/amenibouabdallah/JOBS-sub001/internal/dto"
	"github.com/amenibouabdallah/JOBS-sub001/internal/model"
	"github.com/amenibouabdallah/JOBS-sub001/internal/repository"
	apperrors "github.com/amenibouabdallah/JOBS-sub001/pkg/errors"
)

// ── zone module errors ──

var (
	ErrZoneNotFound     = errors.New("zone not found")
	ErrInvalidZoneCount = errors.New("zone count must be a positive multiple of the letter pair")
)

// zones are generated two per letter: A1/A2, B1/B2, ...
const zonePairUnit = 2

// ZoneService handles zone generation and the one-zone-per-JE reservation
// rules.
type ZoneService interface {
	// Generate bulk-creates count zones with sequential letter-pair names
	// (admin only). Numbering continues after the existing zones.
	Generate(ctx context.Context, req *dto.GenerateZonesRequest, callerID string) ([]dto.ZoneResponse, error)
	List(ctx context.Context) ([]dto.ZoneResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ZoneDetailResponse, error)
	// Reserve claims a zone for a JE. Reserving a second zone releases the
	// first; re-reserving the held zone is an idempotent no-op.
	Reserve(ctx context.Context, zoneID, jeID, callerID string) (*dto.ReserveZoneResponse, error)
	// AssignJe is the admin override: same exclusivity rules, any JE. An
	// empty jeID releases the zone.
	AssignJe(ctx context.Context, zoneID, jeID, callerID string) (*dto.ZoneResponse, error)
}

type zoneService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewZoneService creates a ZoneService.
func NewZoneService(repo *repository.Repository, logger *zap.Logger) ZoneService {
	return &zoneService{repo: repo, logger: logger}
}

// ────────────────────── Generate ──────────────────────

func (s *zoneService) Generate(ctx context.Context, req *dto.GenerateZonesRequest, callerID string) ([]dto.ZoneResponse, error) {
	if req.Count <= 0 || req.Count%zonePairUnit != 0 {
		return nil, ErrInvalidZoneCount
	}

	existing, err := s.repo.Zone.Count(ctx)
	if err != nil {
		s.logger.Error("counting zones failed", zap.Error(err))
		return nil, err
	}

	zones := make([]model.Zone, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		z := model.Zone{Name: zoneName(int(existing) + i)}
		z.CreatedBy = &callerID
		z.UpdatedBy = &callerID
		zones = append(zones, z)
	}

	if err := s.repo.Zone.CreateBatch(ctx, zones); err != nil {
		s.logger.Error("generating zones failed", zap.Int("count", req.Count), zap.Error(err))
		return nil, err
	}

	result := make([]dto.ZoneResponse, 0, len(zones))
	for i := range zones {
		result = append(result, toZoneResponse(&zones[i]))
	}
	return result, nil
}

// zoneName derives the display name for the i-th zone overall: two zones
// per letter, letters continuing AA, AB, ... after Z.
func zoneName(i int) string {
	letter := letterName(i / zonePairUnit)
	number := i%zonePairUnit + 1
	return letter + string(rune('0'+number))
}

func letterName(idx int) string {
	name := ""
	for {
		name = string(rune('A'+idx%26)) + name
		idx = idx/26 - 1
		if idx < 0 {
			return name
		}
	}
}

// ────────────────────── List / GetByID ──────────────────────

func (s *zoneService) List(ctx context.Context) ([]dto.ZoneResponse, error) {
	zones, err := s.repo.Zone.List(ctx)
	if err != nil {
		s.logger.Error("listing zones failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ZoneResponse, 0, len(zones))
	for i := range zones {
		result = append(result, toZoneResponse(&zones[i]))
	}
	return result, nil
}

func (s *zoneService) GetByID(ctx context.Context, id string) (*dto.ZoneDetailResponse, error) {
	zone, err := s.repo.Zone.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrZoneNotFound
		}
		s.logger.Error("querying zone failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	detail := &dto.ZoneDetailResponse{ZoneResponse: toZoneResponse(zone)}
	if zone.Je != nil {
		for i := range zone.Je.Participants {
			detail.Participants = append(detail.Participants, toParticipantResponse(&zone.Je.Participants[i]))
		}
	}
	return detail, nil
}

// ────────────────────── Reserve ──────────────────────

func (s *zoneService) Reserve(ctx context.Context, zoneID, jeID, callerID string) (*dto.ReserveZoneResponse, error) {
	if _, err := s.repo.Je.GetByID(ctx, jeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJeNotFound
		}
		return nil, err
	}

	var resp dto.ReserveZoneResponse
	err := s.repo.Tx.WithTx(ctx, func(txCtx context.Context) error {
		zone, err := s.repo.Zone.GetByIDForUpdate(txCtx, zoneID)
		if err != nil {
			return err
		}

		if zone.JeID != nil {
			if *zone.JeID == jeID {
				// already held by the caller: informational no-op
				resp.Zone = toZoneResponse(zone)
				resp.AlreadyOwned = true
				return nil
			}
			return apperrors.ErrZoneTaken
		}

		// one zone per JE: release the previous one in the same transaction
		prev, err := s.repo.Zone.GetByJe(txCtx, jeID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if prev != nil {
			if err := s.repo.Zone.UpdateOwner(txCtx, prev.ZoneID, nil, callerID); err != nil {
				return err
			}
			resp.ReleasedZone = &prev.Name
		}

		if err := s.repo.Zone.UpdateOwner(txCtx, zone.ZoneID, &jeID, callerID); err != nil {
			return err
		}
		zone.JeID = &jeID
		resp.Zone = toZoneResponse(zone)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrZoneNotFound
		}
		if !errors.Is(err, apperrors.ErrZoneTaken) {
			s.logger.Error("reserving zone failed",
				zap.String("zone_id", zoneID),
				zap.String("je_id", jeID),
				zap.Error(err),
			)
		}
		return nil, err
	}

	return &resp, nil
}

// ────────────────────── AssignJe ──────────────────────

func (s *zoneService) AssignJe(ctx context.Context, zoneID, jeID, callerID string) (*dto.ZoneResponse, error) {
	if jeID != "" {
		if _, err := s.repo.Je.GetByID(ctx, jeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrJeNotFound
			}
			return nil, err
		}
	}

	var resp dto.ZoneResponse
	err := s.repo.Tx.WithTx(ctx, func(txCtx context.Context) error {
		zone, err := s.repo.Zone.GetByIDForUpdate(txCtx, zoneID)
		if err != nil {
			return err
		}

		if jeID == "" {
			// release
			if zone.JeID != nil {
				if err := s.repo.Zone.UpdateOwner(txCtx, zone.ZoneID, nil, callerID); err != nil {
					return err
				}
				zone.JeID = nil
			}
			resp = toZoneResponse(zone)
			return nil
		}

		if zone.JeID != nil {
			if *zone.JeID == jeID {
				resp = toZoneResponse(zone)
				return nil
			}
			return apperrors.ErrZoneTaken
		}

		prev, err := s.repo.Zone.GetByJe(txCtx, jeID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if prev != nil {
			if err := s.repo.Zone.UpdateOwner(txCtx, prev.ZoneID, nil, callerID); err != nil {
				return err
			}
		}

		if err := s.repo.Zone.UpdateOwner(txCtx, zone.ZoneID, &jeID, callerID); err != nil {
			return err
		}
		zone.JeID = &jeID
		resp = toZoneResponse(zone)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrZoneNotFound
		}
		if !errors.Is(err, apperrors.ErrZoneTaken) {
			s.logger.Error("assigning zone failed",
				zap.String("zone_id", zoneID),
				zap.String("je_id", jeID),
				zap.Error(err),
			)
		}
		return nil, err
	}

	return &resp, nil
}

// ── helpers ──

func toZoneResponse(zone *model.Zone) dto.ZoneResponse {
	resp := dto.ZoneResponse{
		ID:        zone.ZoneID,
		Name:      zone.Name,
		JeID:      zone.JeID,
		CreatedAt: fmtTime(zone.CreatedAt),
		UpdatedAt: fmtTime(zone.UpdatedAt),
	}
	if zone.Je != nil {
		resp.JeName = zone.Je.Name
	}
	return resp
}
