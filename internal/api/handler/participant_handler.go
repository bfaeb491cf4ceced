package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/amenibouabdallah/JOBS-sub001/internal/dto"
	"github.com/amenibouabdallah/JOBS-sub001/internal/model"
	"github.com/amenibouabdallah/JOBS-sub001/internal/service"
	apperrors "github.com/amenibouabdallah/JOBS-sub001/pkg/errors"
	"github.com/amenibouabdallah/JOBS-sub001/pkg/response"
)

// ParticipantHandler serves the participant endpoints, including place
// reservation.
type ParticipantHandler struct {
	participantSvc service.ParticipantService
	placeSvc       service.PlaceService
}

// NewParticipantHandler creates a ParticipantHandler.
func NewParticipantHandler(participantSvc service.ParticipantService, placeSvc service.PlaceService) *ParticipantHandler {
	return &ParticipantHandler{participantSvc: participantSvc, placeSvc: placeSvc}
}

// loadOwned fetches a participant and checks the caller may act for it.
// On failure the response has already been written.
func (h *ParticipantHandler) loadOwned(c *gin.Context, id string) (*dto.ParticipantResponse, bool) {
	participant, err := h.participantSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.NotFound(c, 14001, "participant not found")
			return nil, false
		}
		response.InternalError(c)
		return nil, false
	}
	if !mayActForParticipant(c, participant.ID, participant.JeID) {
		return nil, false
	}
	return participant, true
}

// Create registers a participant under a JE.
// POST /api/v1/participants
func (h *ParticipantHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}
	if !mayActForJe(c, req.JeID) {
		return
	}

	participant, err := h.participantSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		if errors.Is(err, service.ErrJeNotFound) {
			response.NotFound(c, 13001, "je not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, participant)
}

// GetByID returns one participant.
// GET /api/v1/participants/:id
func (h *ParticipantHandler) GetByID(c *gin.Context) {
	participant, ok := h.loadOwned(c, c.Param("id"))
	if !ok {
		return
	}
	response.OK(c, participant)
}

// List returns every participant, or a single JE's when je_id is given.
// GET /api/v1/participants?je_id=...
func (h *ParticipantHandler) List(c *gin.Context) {
	jeID := c.Query("je_id")
	if jeID != "" {
		if !mayActForJe(c, jeID) {
			return
		}
		participants, err := h.participantSvc.ListByJe(c.Request.Context(), jeID)
		if err != nil {
			response.InternalError(c)
			return
		}
		response.OK(c, participants)
		return
	}

	if role, ok := MustGetRole(c); !ok {
		return
	} else if role != model.RoleAdmin {
		response.Forbidden(c, 10003, "access denied")
		return
	}
	participants, err := h.participantSvc.ListAll(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, participants)
}

// Update edits a participant's identity fields.
// PUT /api/v1/participants/:id
func (h *ParticipantHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	participant, ok := h.loadOwned(c, c.Param("id"))
	if !ok {
		return
	}

	var req dto.UpdateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	updated, err := h.participantSvc.Update(c.Request.Context(), participant.ID, &req, userID)
	if err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.NotFound(c, 14001, "participant not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, updated)
}

// UpdatePayment records a payment state change. Admin only.
// PUT /api/v1/participants/:id/payment
func (h *ParticipantHandler) UpdatePayment(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	participant, err := h.participantSvc.UpdatePayment(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.NotFound(c, 14001, "participant not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, participant)
}

// Delete removes a participant. Admin only.
// DELETE /api/v1/participants/:id
func (h *ParticipantHandler) Delete(c *gin.Context) {
	if _, ok := MustGetUserID(c); !ok {
		return
	}

	if err := h.participantSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.NotFound(c, 14001, "participant not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// ReservePlace claims a numbered place in the participant's JE zone.
// POST /api/v1/participants/:id/place
func (h *ParticipantHandler) ReservePlace(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	participant, ok := h.loadOwned(c, c.Param("id"))
	if !ok {
		return
	}

	var req dto.ReservePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	updated, err := h.placeSvc.Reserve(c.Request.Context(), participant.ID, req.PlaceNumber, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrParticipantNotFound):
			response.NotFound(c, 14001, "participant not found")
		case errors.Is(err, service.ErrJeHasNoZone):
			response.Forbidden(c, 14002, "je has no reserved zone")
		case errors.Is(err, service.ErrPaymentRequired):
			response.Forbidden(c, 14003, "payment required before reserving a place")
		case errors.Is(err, service.ErrPlaceOutOfRange):
			response.BadRequest(c, 14004, "place number exceeds the paid participant count")
		case errors.Is(err, apperrors.ErrPlaceTaken):
			response.Conflict(c, 14005, "place already taken")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, updated)
}
