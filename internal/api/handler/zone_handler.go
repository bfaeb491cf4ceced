package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/amenibouabdallah/JOBS-sub001/internal/dto"
	"github.com/amenibouabdallah/JOBS-sub001/internal/service"
	apperrors "github.com/amenibouabdallah/JOBS-sub001/pkg/errors"
	"github.com/amenibouabdallah/JOBS-sub001/pkg/response"
)

// ZoneHandler serves the zone endpoints.
type ZoneHandler struct {
	zoneSvc service.ZoneService
}

// NewZoneHandler creates a ZoneHandler.
func NewZoneHandler(zoneSvc service.ZoneService) *ZoneHandler {
	return &ZoneHandler{zoneSvc: zoneSvc}
}

// Generate bulk-creates zones. Admin only.
// POST /api/v1/zones/generate
func (h *ZoneHandler) Generate(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.GenerateZonesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	zones, err := h.zoneSvc.Generate(c.Request.Context(), &req, userID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidZoneCount) {
			response.BadRequest(c, 12001, "zone count must be a positive even number")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, zones)
}

// List returns all zones with their owners.
// GET /api/v1/zones
func (h *ZoneHandler) List(c *gin.Context) {
	zones, err := h.zoneSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, zones)
}

// GetByID returns one zone with the owning JE's participants.
// GET /api/v1/zones/:id
func (h *ZoneHandler) GetByID(c *gin.Context) {
	zone, err := h.zoneSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrZoneNotFound) {
			response.NotFound(c, 12002, "zone not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, zone)
}

// Reserve claims a zone for a JE. A JE account may only reserve for
// its own JE; admins may reserve for any.
// POST /api/v1/zones/:id/reserve
func (h *ZoneHandler) Reserve(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req struct {
		JeID string `json:"je_id" binding:"required,uuid"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}
	if !mayActForJe(c, req.JeID) {
		return
	}

	result, err := h.zoneSvc.Reserve(c.Request.Context(), c.Param("id"), req.JeID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrZoneNotFound):
			response.NotFound(c, 12002, "zone not found")
		case errors.Is(err, service.ErrJeNotFound):
			response.NotFound(c, 13001, "je not found")
		case errors.Is(err, apperrors.ErrZoneTaken):
			response.Conflict(c, 12003, "zone already reserved by another je")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}

// AssignJe is the admin override: assign or release a zone directly.
// PUT /api/v1/zones/:id/assign
func (h *ZoneHandler) AssignJe(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.AssignJeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	zone, err := h.zoneSvc.AssignJe(c.Request.Context(), c.Param("id"), req.JeID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrZoneNotFound):
			response.NotFound(c, 12002, "zone not found")
		case errors.Is(err, service.ErrJeNotFound):
			response.NotFound(c, 13001, "je not found")
		case errors.Is(err, apperrors.ErrZoneTaken):
			response.Conflict(c, 12003, "zone already reserved by another je")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, zone)
}
