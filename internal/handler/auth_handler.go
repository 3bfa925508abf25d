package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"designdesk/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RefreshInput is the request body for token refresh.
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Login handles POST /api/v1/auth/login
// @Summary      Log in
// @Description  Exchanges email and password for an access/refresh token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body service.LoginInput true "Credentials"
// @Success      200 {object} APIResponse{data=service.TokenPair}
// @Failure      400 {object} APIResponse
// @Failure      401 {object} APIResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input service.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	tokenPair, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tokenPair)
}

// RefreshToken handles POST /api/v1/auth/refresh
// @Summary      Refresh tokens
// @Description  Exchanges a refresh token for a new token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RefreshInput true "Refresh token"
// @Success      200 {object} APIResponse{data=service.TokenPair}
// @Failure      400 {object} APIResponse
// @Failure      401 {object} APIResponse
// @Router       /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var input RefreshInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	tokenPair, err := h.authService.RefreshToken(c.Request.Context(), input.RefreshToken)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tokenPair)
}
