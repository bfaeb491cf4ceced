package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/amenibouabdallah/JOBS-sub001/internal/dto"
	"github.com/amenibouabdallah/JOBS-sub001/internal/service"
	apperrors "github.com/amenibouabdallah/JOBS-sub001/pkg/errors"
	"github.com/amenibouabdallah/JOBS-sub001/pkg/response"
)

// SelectionHandler serves the activity selection endpoints.
type SelectionHandler struct {
	selectionSvc   service.SelectionService
	participantSvc service.ParticipantService
}

// NewSelectionHandler creates a SelectionHandler.
func NewSelectionHandler(selectionSvc service.SelectionService, participantSvc service.ParticipantService) *SelectionHandler {
	return &SelectionHandler{selectionSvc: selectionSvc, participantSvc: participantSvc}
}

// checkOwner verifies the caller may act for the participant.
func (h *SelectionHandler) checkOwner(c *gin.Context, participantID string) bool {
	participant, err := h.participantSvc.GetByID(c.Request.Context(), participantID)
	if err != nil {
		if errors.Is(err, service.ErrParticipantNotFound) {
			response.NotFound(c, 14001, "participant not found")
			return false
		}
		response.InternalError(c)
		return false
	}
	return mayActForParticipant(c, participant.ID, participant.JeID)
}

// Select adds an activity to the participant's program.
// POST /api/v1/participants/:id/selections
func (h *SelectionHandler) Select(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	participantID := c.Param("id")
	if !h.checkOwner(c, participantID) {
		return
	}

	var req dto.SelectActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	result, err := h.selectionSvc.Select(c.Request.Context(), participantID, req.ActivityID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrActivityNotFound):
			response.NotFound(c, 15001, "activity not found")
		case errors.Is(err, service.ErrAlreadySelected):
			response.Conflict(c, 15002, "activity already selected")
		case errors.Is(err, service.ErrActivityExcluded):
			response.Conflict(c, 15003, "activity excluded by an existing selection")
		case errors.Is(err, apperrors.ErrActivityFull):
			response.Conflict(c, 15004, "activity is at capacity")
		default:
			response.InternalError(c)
		}
		return
	}
	response.Created(c, result)
}

// Deselect removes an activity from the participant's program.
// DELETE /api/v1/participants/:id/selections/:activityId
func (h *SelectionHandler) Deselect(c *gin.Context) {
	participantID := c.Param("id")
	if !h.checkOwner(c, participantID) {
		return
	}

	if err := h.selectionSvc.Deselect(c.Request.Context(), participantID, c.Param("activityId")); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// List returns the participant's selections.
// GET /api/v1/participants/:id/selections
func (h *SelectionHandler) List(c *gin.Context) {
	participantID := c.Param("id")
	if !h.checkOwner(c, participantID) {
		return
	}

	selections, err := h.selectionSvc.ListForParticipant(c.Request.Context(), participantID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, selections)
}

// EnsureRequired backfills the mandatory activities for the
// participant's role.
// POST /api/v1/participants/:id/selections/ensure-required
func (h *SelectionHandler) EnsureRequired(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	participantID := c.Param("id")
	if !h.checkOwner(c, participantID) {
		return
	}

	result, err := h.selectionSvc.EnsureRequired(c.Request.Context(), participantID, userID)
	if err != nil {
		if errors.Is(err, service.ErrRequiredActivityFull) {
			response.Conflict(c, 15005, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
