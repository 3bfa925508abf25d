package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"designdesk/internal/domain"
	"designdesk/internal/service"
)

// ClientHandler handles client management endpoints.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// ClientInput is the request body for creating or updating a client.
type ClientInput struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	GSTIN     string `json:"gstin"`
	Address1  string `json:"address1" binding:"required"`
	Address2  string `json:"address2"`
	City      string `json:"city" binding:"required"`
	StateCode string `json:"state_code" binding:"required"`
	PinCode   string `json:"pin_code" binding:"required"`
}

func (in *ClientInput) toDomain(client *domain.Client) {
	client.Name = in.Name
	client.Email = in.Email
	client.Phone = in.Phone
	client.GSTIN = in.GSTIN
	client.Address1 = in.Address1
	client.Address2 = in.Address2
	client.City = in.City
	client.StateCode = in.StateCode
	client.PinCode = in.PinCode
}

// Create handles POST /api/v1/clients
// @Summary      Create client
// @Description  Registers a new client; GSTIN is optional but validated when present
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        input body ClientInput true "Client"
// @Success      201 {object} APIResponse{data=domain.Client}
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var input ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	var client domain.Client
	input.toDomain(&client)
	if err := h.clientService.Create(c.Request.Context(), &client); err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, client)
}

// Get handles GET /api/v1/clients/:id
// @Summary      Get client
// @Tags         clients
// @Produce      json
// @Param        id path string true "Client UUID"
// @Success      200 {object} APIResponse{data=domain.Client}
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /clients/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid client id")
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, client)
}

// List handles GET /api/v1/clients
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Param        offset query int false "Pagination offset" default(0)
// @Param        limit query int false "Pagination limit" default(20)
// @Success      200 {object} APIResponse{data=[]domain.Client,meta=PagMeta}
// @Security     BearerAuth
// @Router       /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)
	clients, total, err := h.clientService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, clients, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Update handles PUT /api/v1/clients/:id
// @Summary      Update client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id path string true "Client UUID"
// @Param        input body ClientInput true "Client"
// @Success      200 {object} APIResponse{data=domain.Client}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid client id")
		return
	}

	var input ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	input.toDomain(client)
	if err := h.clientService.Update(c.Request.Context(), client); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, client)
}

// Delete handles DELETE /api/v1/clients/:id
// @Summary      Delete client
// @Tags         clients
// @Produce      json
// @Param        id path string true "Client UUID"
// @Success      200 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid client id")
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "client deleted"})
}
