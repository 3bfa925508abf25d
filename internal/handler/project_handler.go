package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"designdesk/internal/domain"
	"designdesk/internal/middleware"
	"designdesk/internal/service"
)

// ProjectHandler handles project management endpoints.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ProjectInput is the request body for creating or updating a project.
type ProjectInput struct {
	ClientID    uuid.UUID  `json:"client_id" binding:"required"`
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	SiteAddress string     `json:"site_address"`
	Budget      float64    `json:"budget" binding:"gte=0"`
	Status      string     `json:"status"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// Create handles POST /api/v1/projects
// @Summary      Create project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        input body ProjectInput true "Project"
// @Success      201 {object} APIResponse{data=domain.Project}
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var input ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	userID, err := middleware.GetUserID(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	project := domain.Project{
		ClientID:    input.ClientID,
		Name:        input.Name,
		Description: input.Description,
		SiteAddress: input.SiteAddress,
		Budget:      input.Budget,
		Status:      domain.ProjectStatus(input.Status),
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		CreatedBy:   userID,
	}
	if err := h.projectService.Create(c.Request.Context(), &project); err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, project)
}

// Get handles GET /api/v1/projects/:id
// @Summary      Get project
// @Tags         projects
// @Produce      json
// @Param        id path string true "Project UUID"
// @Success      200 {object} APIResponse{data=domain.Project}
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid project id")
		return
	}

	project, err := h.projectService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, project)
}

// List handles GET /api/v1/projects
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Param        client_id query string false "Filter by client UUID"
// @Param        offset query int false "Pagination offset" default(0)
// @Param        limit query int false "Pagination limit" default(20)
// @Success      200 {object} APIResponse{data=[]domain.Project,meta=PagMeta}
// @Security     BearerAuth
// @Router       /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	if cidStr := c.Query("client_id"); cidStr != "" {
		cid, err := uuid.Parse(cidStr)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid client_id")
			return
		}
		projects, total, err := h.projectService.ListByClient(c.Request.Context(), cid, offset, limit)
		if err != nil {
			HandleError(c, err)
			return
		}
		RespondPaginated(c, projects, PagMeta{Total: total, Offset: offset, Limit: limit})
		return
	}

	projects, total, err := h.projectService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, projects, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Update handles PUT /api/v1/projects/:id
// @Summary      Update project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id path string true "Project UUID"
// @Param        input body ProjectInput true "Project"
// @Success      200 {object} APIResponse{data=domain.Project}
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid project id")
		return
	}

	var input ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	project, err := h.projectService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	project.ClientID = input.ClientID
	project.Name = input.Name
	project.Description = input.Description
	project.SiteAddress = input.SiteAddress
	project.Budget = input.Budget
	if input.Status != "" {
		project.Status = domain.ProjectStatus(input.Status)
	}
	project.StartDate = input.StartDate
	project.EndDate = input.EndDate

	if err := h.projectService.Update(c.Request.Context(), project); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, project)
}

// Delete handles DELETE /api/v1/projects/:id
// @Summary      Delete project
// @Tags         projects
// @Produce      json
// @Param        id path string true "Project UUID"
// @Success      200 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid project id")
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "project deleted"})
}
