package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/amenibouabdallah/JOBS-sub001/internal/service"
	"github.com/amenibouabdallah/JOBS-sub001/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves the export endpoints. Admin only.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// PlacementsCSV downloads the seating list as CSV.
// GET /api/v1/export/placements.csv
func (h *ExportHandler) PlacementsCSV(c *gin.Context) {
	data, err := h.exportSvc.PlacementsCSV(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	setDownloadHeaders(c, "placements.csv")
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// PlacementsXLSX downloads the seating list as a styled workbook.
// GET /api/v1/export/placements.xlsx
func (h *ExportHandler) PlacementsXLSX(c *gin.Context) {
	data, err := h.exportSvc.PlacementsXLSX(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	setDownloadHeaders(c, "placements.xlsx")
	c.Data(http.StatusOK, xlsxContentType, data)
}

// ProgramICS downloads the activity schedule as an iCalendar feed.
// GET /api/v1/export/program.ics
func (h *ExportHandler) ProgramICS(c *gin.Context) {
	data, err := h.exportSvc.ProgramICS(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	setDownloadHeaders(c, "program.ics")
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", data)
}

func setDownloadHeaders(c *gin.Context, filename string) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
}
