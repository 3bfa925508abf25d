package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"designdesk/internal/middleware"
	"designdesk/internal/service"
)

// InvoiceHandler handles invoice management endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// UpdateItemsInput is the request body for replacing invoice line items.
type UpdateItemsInput struct {
	Items []service.LineItemInput `json:"items" binding:"required,min=1,dive"`
}

// Create handles POST /api/v1/invoices
// @Summary      Create invoice
// @Description  Creates a draft invoice; all tax figures are computed server-side
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        input body service.CreateInvoiceInput true "Invoice"
// @Success      201 {object} APIResponse{data=service.InvoiceWithItems}
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var input service.CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	userID, err := middleware.GetUserID(c)
	if err != nil {
		HandleError(c, err)
		return
	}
	input.CreatedBy = userID

	result, err := h.invoiceService.Create(c.Request.Context(), &input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, result)
}

// Get handles GET /api/v1/invoices/:id
// @Summary      Get invoice with line items
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Invoice UUID"
// @Success      200 {object} APIResponse{data=service.InvoiceWithItems}
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid invoice id")
		return
	}

	result, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// List handles GET /api/v1/invoices
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Param        project_id query string false "Filter by project UUID"
// @Param        offset query int false "Pagination offset" default(0)
// @Param        limit query int false "Pagination limit" default(20)
// @Success      200 {object} APIResponse{data=[]domain.Invoice,meta=PagMeta}
// @Security     BearerAuth
// @Router       /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	if pidStr := c.Query("project_id"); pidStr != "" {
		pid, err := uuid.Parse(pidStr)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid project_id")
			return
		}
		invoices, total, err := h.invoiceService.ListByProject(c.Request.Context(), pid, offset, limit)
		if err != nil {
			HandleError(c, err)
			return
		}
		RespondPaginated(c, invoices, PagMeta{Total: total, Offset: offset, Limit: limit})
		return
	}

	invoices, total, err := h.invoiceService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, invoices, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// UpdateItems handles PUT /api/v1/invoices/:id/items
// @Summary      Replace invoice line items
// @Description  Replaces all line items and recomputes totals; rejected once an IRN exists
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id path string true "Invoice UUID"
// @Param        input body UpdateItemsInput true "Line items"
// @Success      200 {object} APIResponse{data=service.InvoiceWithItems}
// @Failure      400 {object} APIResponse
// @Failure      409 {object} APIResponse
// @Security     BearerAuth
// @Router       /invoices/{id}/items [put]
func (h *InvoiceHandler) UpdateItems(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid invoice id")
		return
	}

	var input UpdateItemsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.invoiceService.UpdateItems(c.Request.Context(), id, input.Items)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Issue handles POST /api/v1/invoices/:id/issue
// @Summary      Issue invoice
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Invoice UUID"
// @Success      200 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /invoices/{id}/issue [post]
func (h *InvoiceHandler) Issue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid invoice id")
		return
	}

	if err := h.invoiceService.Issue(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "invoice issued"})
}

// MarkPaid handles POST /api/v1/invoices/:id/mark-paid
// @Summary      Mark invoice paid
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Invoice UUID"
// @Success      200 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /invoices/{id}/mark-paid [post]
func (h *InvoiceHandler) MarkPaid(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid invoice id")
		return
	}

	if err := h.invoiceService.MarkPaid(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "invoice marked paid"})
}

// Send handles POST /api/v1/invoices/:id/send
// @Summary      Email invoice to client
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Invoice UUID"
// @Success      200 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /invoices/{id}/send [post]
func (h *InvoiceHandler) Send(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid invoice id")
		return
	}

	if err := h.invoiceService.SendToClient(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "invoice sent"})
}
