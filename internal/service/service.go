package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/amenibouabdallah/JOBS-sub001/config"
	"github.com/amenibouabdallah/JOBS-sub001/internal/repository"
	"github.com/amenibouabdallah/JOBS-sub001/pkg/jwt"
	"github.com/amenibouabdallah/JOBS-sub001/pkg/redis"
)

// Service aggregates every business service.
type Service struct {
	Auth         AuthService
	Je           JeService
	Participant  ParticipantService
	Zone         ZoneService
	Place        PlaceService
	Activity     ActivityService
	ActivityType ActivityTypeService
	Correlation  CorrelationService
	Selection    SelectionService
	Salle        SalleService
	Job          JobService
	Export       ExportService
}

// NewService wires every service implementation.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:         NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Je:           NewJeService(repo, logger),
		Participant:  NewParticipantService(repo, logger),
		Zone:         NewZoneService(repo, logger),
		Place:        NewPlaceService(repo, logger),
		Activity:     NewActivityService(repo, logger),
		ActivityType: NewActivityTypeService(repo, logger),
		Correlation:  NewCorrelationService(repo, logger),
		Selection:    NewSelectionService(repo, logger),
		Salle:        NewSalleService(repo, logger),
		Job:          NewJobService(repo, logger),
		Export:       NewExportService(cfg, repo, logger),
	}
}

// fmtTime renders timestamps the way every response does.
func fmtTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
