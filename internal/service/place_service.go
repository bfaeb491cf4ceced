package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/amenibouabdallah/JOBS-sub001/internal/dto"
	"github.com/amenibouabdallah/JOBS-sub001/internal/repository"
	apperrors "github.com/amenibouabdallah/JOBS-sub001/pkg/errors"
)

// ── place module errors ──

var (
	ErrJeHasNoZone     = errors.New("the JE has not reserved a zone")
	ErrPaymentRequired = errors.New("participant has no payment recorded")
	ErrPlaceOutOfRange = errors.New("place number exceeds the paid participant count")
)

// PlaceService handles numbered place reservation inside a JE's zone.
// Places are not stored as rows: "{zone}_{n}" lives on the participant and
// occupancy is derived by scanning the JE's roster.
type PlaceService interface {
	// Reserve claims place n for a participant. Claiming a second place
	// releases the first (single place_name column: move semantics).
	Reserve(ctx context.Context, participantID string, placeNumber int, callerID string) (*dto.ParticipantResponse, error)
	// Stats aggregates the JE's zone name, the paid-participant bound and
	// the occupied place names, without holder identities.
	Stats(ctx context.Context, jeID string) (*dto.PlaceStatsResponse, error)
}

type placeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPlaceService creates a PlaceService.
func NewPlaceService(repo *repository.Repository, logger *zap.Logger) PlaceService {
	return &placeService{repo: repo, logger: logger}
}

// ────────────────────── Reserve ──────────────────────

func (s *placeService) Reserve(ctx context.Context, participantID string, placeNumber int, callerID string) (*dto.ParticipantResponse, error) {
	if placeNumber < 1 {
		return nil, ErrPlaceOutOfRange
	}

	participant, err := s.repo.Participant.GetByID(ctx, participantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantNotFound
		}
		s.logger.Error("querying participant failed", zap.String("id", participantID), zap.Error(err))
		return nil, err
	}

	zone, err := s.repo.Zone.GetByJe(ctx, participant.JeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJeHasNoZone
		}
		s.logger.Error("querying zone failed", zap.String("je_id", participant.JeID), zap.Error(err))
		return nil, err
	}

	if !participant.HasPaid() {
		return nil, ErrPaymentRequired
	}

	placeName := fmt.Sprintf("%s_%d", zone.Name, placeNumber)

	err = s.repo.Tx.WithTx(ctx, func(txCtx context.Context) error {
		// lock the roster; concurrent claims within the JE serialize here,
		// the partial unique index backstops the race
		roster, err := s.repo.Participant.ListByJeForUpdate(txCtx, participant.JeID)
		if err != nil {
			return err
		}

		paid := 0
		for i := range roster {
			if roster[i].HasPaid() {
				paid++
			}
		}
		if placeNumber > paid {
			return ErrPlaceOutOfRange
		}

		for i := range roster {
			other := &roster[i]
			if other.ParticipantID == participantID {
				continue
			}
			if other.PlaceName != nil && *other.PlaceName == placeName {
				return apperrors.ErrPlaceTaken
			}
		}

		return s.repo.Participant.UpdatePlace(txCtx, participantID, &placeName, callerID)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrPlaceTaken) && !errors.Is(err, ErrPlaceOutOfRange) {
			s.logger.Error("reserving place failed",
				zap.String("participant_id", participantID),
				zap.String("place", placeName),
				zap.Error(err),
			)
		}
		return nil, err
	}

	participant.PlaceName = &placeName
	resp := toParticipantResponse(participant)
	return &resp, nil
}

// ────────────────────── Stats ──────────────────────

func (s *placeService) Stats(ctx context.Context, jeID string) (*dto.PlaceStatsResponse, error) {
	if _, err := s.repo.Je.GetByID(ctx, jeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJeNotFound
		}
		return nil, err
	}

	resp := &dto.PlaceStatsResponse{ReservedPlaces: []string{}}

	zone, err := s.repo.Zone.GetByJe(ctx, jeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("querying zone failed", zap.String("je_id", jeID), zap.Error(err))
		return nil, err
	}
	if zone != nil {
		resp.HasZone = true
		resp.ZoneName = zone.Name
	}

	paid, err := s.repo.Participant.CountPaidByJe(ctx, jeID)
	if err != nil {
		s.logger.Error("counting paid participants failed", zap.String("je_id", jeID), zap.Error(err))
		return nil, err
	}
	resp.PaidCount = paid

	places, err := s.repo.Participant.ReservedPlacesByJe(ctx, jeID)
	if err != nil {
		s.logger.Error("listing reserved places failed", zap.String("je_id", jeID), zap.Error(err))
		return nil, err
	}
	if places != nil {
		resp.ReservedPlaces = places
	}

	return resp, nil
}
