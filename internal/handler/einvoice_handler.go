package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"designdesk/internal/einvoice"
	"designdesk/internal/middleware"
	"designdesk/internal/port"
)

// EInvoiceHandler handles IRN lifecycle endpoints.
type EInvoiceHandler struct {
	controller *einvoice.Controller
	audit      port.IRNAuditRepository
}

// NewEInvoiceHandler creates a new EInvoiceHandler.
func NewEInvoiceHandler(controller *einvoice.Controller, audit port.IRNAuditRepository) *EInvoiceHandler {
	return &EInvoiceHandler{controller: controller, audit: audit}
}

// CancelIRNInput is the request body for cancelling an IRN.
type CancelIRNInput struct {
	ReasonCode string `json:"reason_code" binding:"required"`
	Remark     string `json:"remark"`
}

// Generate handles POST /api/v1/invoices/:id/einvoice/generate
// @Summary      Generate IRN
// @Description  Builds the e-invoice payload, submits it to the authority, and records the IRN
// @Tags         einvoice
// @Produce      json
// @Param        id path string true "Invoice UUID"
// @Success      200 {object} APIResponse{data=einvoice.SubmitResult}
// @Failure      404 {object} APIResponse
// @Failure      409 {object} APIResponse
// @Failure      422 {object} APIResponse
// @Failure      502 {object} APIResponse
// @Security     BearerAuth
// @Router       /invoices/{id}/einvoice/generate [post]
func (h *EInvoiceHandler) Generate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid invoice id")
		return
	}

	userID, err := middleware.GetUserID(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	result, err := h.controller.GenerateIRN(c.Request.Context(), id, userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Cancel handles POST /api/v1/invoices/:id/einvoice/cancel
// @Summary      Cancel IRN
// @Description  Cancels a generated IRN within the 24-hour window using an authority reason code
// @Tags         einvoice
// @Accept       json
// @Produce      json
// @Param        id path string true "Invoice UUID"
// @Param        input body CancelIRNInput true "Cancellation reason"
// @Success      200 {object} APIResponse{data=einvoice.CancelResult}
// @Failure      404 {object} APIResponse
// @Failure      409 {object} APIResponse
// @Failure      502 {object} APIResponse
// @Security     BearerAuth
// @Router       /invoices/{id}/einvoice/cancel [post]
func (h *EInvoiceHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid invoice id")
		return
	}

	var input CancelIRNInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	userID, err := middleware.GetUserID(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	result, err := h.controller.CancelIRN(c.Request.Context(), id, input.ReasonCode, input.Remark, userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Audit handles GET /api/v1/invoices/:id/einvoice/audit
// @Summary      IRN audit trail
// @Description  Lists every generate and cancel attempt for the invoice, oldest first
// @Tags         einvoice
// @Produce      json
// @Param        id path string true "Invoice UUID"
// @Success      200 {object} APIResponse{data=[]domain.IRNAuditEntry}
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /invoices/{id}/einvoice/audit [get]
func (h *EInvoiceHandler) Audit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid invoice id")
		return
	}

	offset, limit := parsePagination(c)
	entries, total, err := h.audit.ListByInvoice(c.Request.Context(), id, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, entries, PagMeta{Total: total, Offset: offset, Limit: limit})
}
