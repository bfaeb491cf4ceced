package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/amenibouabdallah/JOBS-sub001/internal/dto"
	"github.com/amenibouabdallah/JOBS-sub001/internal/service"
	"github.com/amenibouabdallah/JOBS-sub001/pkg/response"
)

// SalleHandler serves the salle endpoints.
type SalleHandler struct {
	salleSvc service.SalleService
}

// NewSalleHandler creates a SalleHandler.
func NewSalleHandler(salleSvc service.SalleService) *SalleHandler {
	return &SalleHandler{salleSvc: salleSvc}
}

// Create adds a salle. Admin only.
// POST /api/v1/salles
func (h *SalleHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSalleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	salle, err := h.salleSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		if errors.Is(err, service.ErrSalleNameExists) {
			response.Conflict(c, 15013, "salle name already registered")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, salle)
}

// GetByID returns one salle.
// GET /api/v1/salles/:id
func (h *SalleHandler) GetByID(c *gin.Context) {
	salle, err := h.salleSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSalleNotFound) {
			response.NotFound(c, 15006, "salle not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, salle)
}

// List returns all salles.
// GET /api/v1/salles
func (h *SalleHandler) List(c *gin.Context) {
	salles, err := h.salleSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, salles)
}

// Update edits a salle. Admin only.
// PUT /api/v1/salles/:id
func (h *SalleHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSalleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	salle, err := h.salleSvc.Update(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSalleNotFound):
			response.NotFound(c, 15006, "salle not found")
		case errors.Is(err, service.ErrSalleNameExists):
			response.Conflict(c, 15013, "salle name already registered")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, salle)
}

// Delete removes a salle. Admin only.
// DELETE /api/v1/salles/:id
func (h *SalleHandler) Delete(c *gin.Context) {
	if _, ok := MustGetUserID(c); !ok {
		return
	}

	if err := h.salleSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrSalleNotFound) {
			response.NotFound(c, 15006, "salle not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
