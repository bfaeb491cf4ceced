package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/amenibouabdallah/JOBS-sub001/internal/dto"
	"github.com/amenibouabdallah/JOBS-sub001/internal/model"
	"github.com/amenibouabdallah/JOBS-sub001/internal/service"
	"github.com/amenibouabdallah/JOBS-sub001/pkg/response"
)

// JobHandler serves the job offer endpoints.
type JobHandler struct {
	jobSvc service.JobService
}

// NewJobHandler creates a JobHandler.
func NewJobHandler(jobSvc service.JobService) *JobHandler {
	return &JobHandler{jobSvc: jobSvc}
}

// Create publishes a job offer. Admin only.
// POST /api/v1/jobs
func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	job, err := h.jobSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, job)
}

// GetByID returns one job offer.
// GET /api/v1/jobs/:id
func (h *JobHandler) GetByID(c *gin.Context) {
	job, err := h.jobSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			response.NotFound(c, 16001, "job not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, job)
}

// List returns the published offers. With ?all=true an admin also sees
// the unpublished ones.
// GET /api/v1/jobs
func (h *JobHandler) List(c *gin.Context) {
	var req dto.JobListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	includeUnpublished := false
	if req.All {
		role, ok := MustGetRole(c)
		if !ok {
			return
		}
		if role != model.RoleAdmin {
			response.Forbidden(c, 10003, "access denied")
			return
		}
		includeUnpublished = true
	}

	jobs, err := h.jobSvc.List(c.Request.Context(), includeUnpublished)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, jobs)
}

// Update edits a job offer. Admin only.
// PUT /api/v1/jobs/:id
func (h *JobHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	job, err := h.jobSvc.Update(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			response.NotFound(c, 16001, "job not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, job)
}

// Delete removes a job offer. Admin only.
// DELETE /api/v1/jobs/:id
func (h *JobHandler) Delete(c *gin.Context) {
	if _, ok := MustGetUserID(c); !ok {
		return
	}

	if err := h.jobSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			response.NotFound(c, 16001, "job not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
