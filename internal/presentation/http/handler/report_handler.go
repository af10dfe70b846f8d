package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/waheedcycles/cycleshop-api/internal/application/service"
	"github.com/waheedcycles/cycleshop-api/internal/presentation/http/dto/response"
	"github.com/waheedcycles/cycleshop-api/pkg/period"
)

// ReportHandler handles sales report export HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Export streams a sales report for a period.
// Query params: period, start_date, end_date, format=csv|xlsx (default csv).
func (h *ReportHandler) Export(c *gin.Context) {
	kind := period.ParseKind(c.DefaultQuery("period", "today"))
	start := c.Query("start_date")
	end := c.Query("end_date")

	var (
		file *service.ExportFile
		err  error
	)
	switch c.DefaultQuery("format", "csv") {
	case "csv":
		file, err = h.reportService.ExportCSV(c.Request.Context(), kind, start, end)
	case "xlsx":
		file, err = h.reportService.ExportXLSX(c.Request.Context(), kind, start, end)
	default:
		response.BadRequest(c, "Unsupported export format")
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
