package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"designdesk/internal/domain"
	"designdesk/internal/service"
)

// UserHandler handles user administration endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// SetActiveInput is the request body for activating or deactivating a user.
type SetActiveInput struct {
	Active *bool `json:"active" binding:"required"`
}

// SetRoleInput is the request body for changing a user's role.
type SetRoleInput struct {
	Role domain.UserRole `json:"role" binding:"required"`
}

// Create handles POST /api/v1/users
// @Summary      Create user
// @Description  Creates a user account; admin only
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        input body service.CreateUserInput true "User"
// @Success      201 {object} APIResponse{data=domain.User}
// @Failure      400 {object} APIResponse
// @Failure      409 {object} APIResponse
// @Security     BearerAuth
// @Router       /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var input service.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, user)
}

// Get handles GET /api/v1/users/:id
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Param        id path string true "User UUID"
// @Success      200 {object} APIResponse{data=domain.User}
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid user id")
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, user)
}

// List handles GET /api/v1/users
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        offset query int false "Pagination offset" default(0)
// @Param        limit query int false "Pagination limit" default(20)
// @Success      200 {object} APIResponse{data=[]domain.User,meta=PagMeta}
// @Security     BearerAuth
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)
	users, total, err := h.userService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, users, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// SetActive handles PATCH /api/v1/users/:id/active
// @Summary      Activate or deactivate user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path string true "User UUID"
// @Param        input body SetActiveInput true "Active flag"
// @Success      200 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /users/{id}/active [patch]
func (h *UserHandler) SetActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid user id")
		return
	}

	var input SetActiveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.userService.SetActive(c.Request.Context(), id, *input.Active); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "user updated"})
}

// SetRole handles PATCH /api/v1/users/:id/role
// @Summary      Change user role
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path string true "User UUID"
// @Param        input body SetRoleInput true "Role"
// @Success      200 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /users/{id}/role [patch]
func (h *UserHandler) SetRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid user id")
		return
	}

	var input SetRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.userService.SetRole(c.Request.Context(), id, input.Role); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "user updated"})
}
