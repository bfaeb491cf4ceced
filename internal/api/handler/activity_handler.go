package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/amenibouabdallah/JOBS-sub001/internal/dto"
	"github.com/amenibouabdallah/JOBS-sub001/internal/service"
	"github.com/amenibouabdallah/JOBS-sub001/pkg/response"
)

// ActivityHandler serves the activity, activity type and correlation
// endpoints.
type ActivityHandler struct {
	activitySvc     service.ActivityService
	activityTypeSvc service.ActivityTypeService
	correlationSvc  service.CorrelationService
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(
	activitySvc service.ActivityService,
	activityTypeSvc service.ActivityTypeService,
	correlationSvc service.CorrelationService,
) *ActivityHandler {
	return &ActivityHandler{
		activitySvc:     activitySvc,
		activityTypeSvc: activityTypeSvc,
		correlationSvc:  correlationSvc,
	}
}

// ────────────────────── activities ──────────────────────

// Create adds an activity to the program. Admin only.
// POST /api/v1/activities
func (h *ActivityHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	activity, err := h.activitySvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSalleNotFound):
			response.NotFound(c, 15006, "salle not found")
		case errors.Is(err, service.ErrActivityTypeNotFound):
			response.NotFound(c, 15007, "activity type not found")
		default:
			response.InternalError(c)
		}
		return
	}
	response.Created(c, activity)
}

// GetByID returns one activity with its selection count.
// GET /api/v1/activities/:id
func (h *ActivityHandler) GetByID(c *gin.Context) {
	activity, err := h.activitySvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.NotFound(c, 15001, "activity not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, activity)
}

// List returns the full program ordered by start time.
// GET /api/v1/activities
func (h *ActivityHandler) List(c *gin.Context) {
	activities, err := h.activitySvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, activities)
}

// Update edits an activity. Admin only.
// PUT /api/v1/activities/:id
func (h *ActivityHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	activity, err := h.activitySvc.Update(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrActivityNotFound):
			response.NotFound(c, 15001, "activity not found")
		case errors.Is(err, service.ErrInvalidSchedule):
			response.BadRequest(c, 15008, "activity must end after it starts")
		case errors.Is(err, service.ErrSalleNotFound):
			response.NotFound(c, 15006, "salle not found")
		case errors.Is(err, service.ErrActivityTypeNotFound):
			response.NotFound(c, 15007, "activity type not found")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, activity)
}

// Delete removes an activity. Admin only; refused while selections
// remain.
// DELETE /api/v1/activities/:id
func (h *ActivityHandler) Delete(c *gin.Context) {
	if _, ok := MustGetUserID(c); !ok {
		return
	}

	if err := h.activitySvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, service.ErrActivityNotFound):
			response.NotFound(c, 15001, "activity not found")
		case errors.Is(err, service.ErrActivityHasSelections):
			response.Conflict(c, 15009, "activity still has selections")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, nil)
}

// ────────────────────── activity types ──────────────────────

// CreateType adds an activity type. Admin only.
// POST /api/v1/activity-types
func (h *ActivityHandler) CreateType(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateActivityTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	activityType, err := h.activityTypeSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, activityType)
}

// ListTypes returns all activity types.
// GET /api/v1/activity-types
func (h *ActivityHandler) ListTypes(c *gin.Context) {
	types, err := h.activityTypeSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, types)
}

// UpdateType edits an activity type. Admin only.
// PUT /api/v1/activity-types/:id
func (h *ActivityHandler) UpdateType(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateActivityTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	activityType, err := h.activityTypeSvc.Update(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		if errors.Is(err, service.ErrActivityTypeNotFound) {
			response.NotFound(c, 15007, "activity type not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, activityType)
}

// DeleteType removes an activity type. Admin only.
// DELETE /api/v1/activity-types/:id
func (h *ActivityHandler) DeleteType(c *gin.Context) {
	if _, ok := MustGetUserID(c); !ok {
		return
	}

	if err := h.activityTypeSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrActivityTypeNotFound) {
			response.NotFound(c, 15007, "activity type not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// ────────────────────── correlations ──────────────────────

// AddCorrelation links two activities with a REQUIRES or EXCLUDES rule.
// Admin only.
// POST /api/v1/correlations
func (h *ActivityHandler) AddCorrelation(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCorrelationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	correlation, err := h.correlationSvc.Add(c.Request.Context(), &req, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrActivityNotFound):
			response.NotFound(c, 15001, "activity not found")
		case errors.Is(err, service.ErrSelfCorrelation):
			response.BadRequest(c, 15010, "an activity cannot be correlated with itself")
		case errors.Is(err, service.ErrInvalidRule):
			response.BadRequest(c, 15011, "rule must be REQUIRES or EXCLUDES")
		default:
			response.InternalError(c)
		}
		return
	}
	response.Created(c, correlation)
}

// ListAllCorrelations returns every correlation with both activities
// attached.
// GET /api/v1/correlations
func (h *ActivityHandler) ListAllCorrelations(c *gin.Context) {
	correlations, err := h.correlationSvc.ListAll(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, correlations)
}

// RemoveCorrelation deletes a correlation. Admin only.
// DELETE /api/v1/correlations/:id
func (h *ActivityHandler) RemoveCorrelation(c *gin.Context) {
	if _, ok := MustGetUserID(c); !ok {
		return
	}

	if err := h.correlationSvc.Remove(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrCorrelationNotFound) {
			response.NotFound(c, 15012, "correlation not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// ListCorrelations returns the correlations touching one activity.
// GET /api/v1/activities/:id/correlations
func (h *ActivityHandler) ListCorrelations(c *gin.Context) {
	correlations, err := h.correlationSvc.ListForActivity(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.NotFound(c, 15001, "activity not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, correlations)
}
