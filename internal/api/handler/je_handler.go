package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/amenibouabdallah/JOBS-sub001/internal/dto"
	"github.com/amenibouabdallah/JOBS-sub001/internal/service"
	"github.com/amenibouabdallah/JOBS-sub001/pkg/response"
)

// JeHandler serves the JE endpoints.
type JeHandler struct {
	jeSvc    service.JeService
	placeSvc service.PlaceService
}

// NewJeHandler creates a JeHandler.
func NewJeHandler(jeSvc service.JeService, placeSvc service.PlaceService) *JeHandler {
	return &JeHandler{jeSvc: jeSvc, placeSvc: placeSvc}
}

// Create registers a new JE. Admin only.
// POST /api/v1/jes
func (h *JeHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	je, err := h.jeSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		if errors.Is(err, service.ErrJeNameExists) {
			response.Conflict(c, 13002, "je name already registered")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, je)
}

// GetByID returns one JE with its reserved zone and participant count.
// GET /api/v1/jes/:id
func (h *JeHandler) GetByID(c *gin.Context) {
	je, err := h.jeSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrJeNotFound) {
			response.NotFound(c, 13001, "je not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, je)
}

// List returns all JEs.
// GET /api/v1/jes
func (h *JeHandler) List(c *gin.Context) {
	jes, err := h.jeSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, jes)
}

// Update edits a JE. A JE account may edit its own record.
// PUT /api/v1/jes/:id
func (h *JeHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	jeID := c.Param("id")
	if !mayActForJe(c, jeID) {
		return
	}

	var req dto.UpdateJeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	je, err := h.jeSvc.Update(c.Request.Context(), jeID, &req, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrJeNotFound):
			response.NotFound(c, 13001, "je not found")
		case errors.Is(err, service.ErrJeNameExists):
			response.Conflict(c, 13002, "je name already registered")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, je)
}

// Delete removes a JE. Admin only; refused while participants remain.
// DELETE /api/v1/jes/:id
func (h *JeHandler) Delete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.jeSvc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		switch {
		case errors.Is(err, service.ErrJeNotFound):
			response.NotFound(c, 13001, "je not found")
		case errors.Is(err, service.ErrJeHasParticipants):
			response.Conflict(c, 13003, "je still has participants")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}

// PlaceStats returns the JE's zone, paid count and occupied places.
// GET /api/v1/jes/:id/places
func (h *JeHandler) PlaceStats(c *gin.Context) {
	jeID := c.Param("id")
	if !mayActForJe(c, jeID) {
		return
	}

	stats, err := h.placeSvc.Stats(c.Request.Context(), jeID)
	if err != nil {
		if errors.Is(err, service.ErrJeNotFound) {
			response.NotFound(c, 13001, "je not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, stats)
}
