package handler

import "github.com/amenibouabdallah/JOBS-sub001/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth        *AuthHandler
	Je          *JeHandler
	Participant *ParticipantHandler
	Zone        *ZoneHandler
	Activity    *ActivityHandler
	Selection   *SelectionHandler
	Salle       *SalleHandler
	Job         *JobHandler
	Export      *ExportHandler
}

// NewHandler creates the Handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth),
		Je:          NewJeHandler(svc.Je, svc.Place),
		Participant: NewParticipantHandler(svc.Participant, svc.Place),
		Zone:        NewZoneHandler(svc.Zone),
		Activity:    NewActivityHandler(svc.Activity, svc.ActivityType, svc.Correlation),
		Selection:   NewSelectionHandler(svc.Selection, svc.Participant),
		Salle:       NewSalleHandler(svc.Salle),
		Job:         NewJobHandler(svc.Job),
		Export:      NewExportHandler(svc.Export),
	}
}
