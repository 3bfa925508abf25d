package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"designdesk/internal/csvexport"
	"designdesk/internal/service"
)

// ReportHandler handles report export endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// InvoiceRegister handles GET /api/v1/reports/invoice-register
// @Summary      Invoice register CSV
// @Description  Streams a CSV register of invoices in the date range for return preparation
// @Tags         reports
// @Produce      text/csv
// @Param        from query string true "Start date (YYYY-MM-DD)"
// @Param        to query string true "End date (YYYY-MM-DD)"
// @Success      200 {string} string "CSV file"
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /reports/invoice-register [get]
func (h *ReportHandler) InvoiceRegister(c *gin.Context) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid 'from' date: must be YYYY-MM-DD")
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid 'to' date: must be YYYY-MM-DD")
		return
	}
	if to.Before(from) {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "'to' date is before 'from' date")
		return
	}

	filename := csvexport.BuildFilename(from, to)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := h.reportService.WriteInvoiceRegister(c.Request.Context(), c.Writer, from, to); err != nil {
		// Headers are already written; the best we can do is log via HandleError
		// if nothing was streamed yet.
		if !c.Writer.Written() {
			HandleError(c, err)
		}
		return
	}
}
