package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"designdesk/internal/domain"
	"designdesk/internal/service"
)

// LeadHandler handles lead pipeline endpoints.
type LeadHandler struct {
	leadService service.LeadService
}

// NewLeadHandler creates a new LeadHandler.
func NewLeadHandler(leadService service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// LeadInput is the request body for capturing or updating a lead.
type LeadInput struct {
	Name       string     `json:"name" binding:"required"`
	Email      string     `json:"email" binding:"required,email"`
	Phone      string     `json:"phone"`
	City       string     `json:"city"`
	Source     string     `json:"source"`
	Budget     float64    `json:"budget" binding:"gte=0"`
	Notes      string     `json:"notes"`
	Status     string     `json:"status"`
	AssignedTo *uuid.UUID `json:"assigned_to"`
}

// Capture handles POST /api/v1/leads
// @Summary      Capture lead
// @Description  Records a new enquiry; status always starts at "new"
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        input body LeadInput true "Lead"
// @Success      201 {object} APIResponse{data=domain.Lead}
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /leads [post]
func (h *LeadHandler) Capture(c *gin.Context) {
	var input LeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	lead := domain.Lead{
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		City:       input.City,
		Source:     input.Source,
		Budget:     input.Budget,
		Notes:      input.Notes,
		AssignedTo: input.AssignedTo,
	}
	if err := h.leadService.Capture(c.Request.Context(), &lead); err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, lead)
}

// Get handles GET /api/v1/leads/:id
// @Summary      Get lead
// @Tags         leads
// @Produce      json
// @Param        id path string true "Lead UUID"
// @Success      200 {object} APIResponse{data=domain.Lead}
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /leads/{id} [get]
func (h *LeadHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid lead id")
		return
	}

	lead, err := h.leadService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, lead)
}

// List handles GET /api/v1/leads
// @Summary      List leads
// @Tags         leads
// @Produce      json
// @Param        status query string false "Filter by status" Enums(new, contacted, qualified, won, lost)
// @Param        offset query int false "Pagination offset" default(0)
// @Param        limit query int false "Pagination limit" default(20)
// @Success      200 {object} APIResponse{data=[]domain.Lead,meta=PagMeta}
// @Security     BearerAuth
// @Router       /leads [get]
func (h *LeadHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	var status *domain.LeadStatus
	if s := c.Query("status"); s != "" {
		ls := domain.LeadStatus(s)
		status = &ls
	}

	leads, total, err := h.leadService.List(c.Request.Context(), status, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, leads, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Update handles PUT /api/v1/leads/:id
// @Summary      Update lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        id path string true "Lead UUID"
// @Param        input body LeadInput true "Lead"
// @Success      200 {object} APIResponse{data=domain.Lead}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /leads/{id} [put]
func (h *LeadHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid lead id")
		return
	}

	var input LeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	lead, err := h.leadService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	lead.Name = input.Name
	lead.Email = input.Email
	lead.Phone = input.Phone
	lead.City = input.City
	lead.Source = input.Source
	lead.Budget = input.Budget
	lead.Notes = input.Notes
	lead.AssignedTo = input.AssignedTo
	if input.Status != "" {
		lead.Status = domain.LeadStatus(input.Status)
	}

	if err := h.leadService.Update(c.Request.Context(), lead); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, lead)
}

// Delete handles DELETE /api/v1/leads/:id
// @Summary      Delete lead
// @Tags         leads
// @Produce      json
// @Param        id path string true "Lead UUID"
// @Success      200 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /leads/{id} [delete]
func (h *LeadHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid lead id")
		return
	}

	if err := h.leadService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "lead deleted"})
}
