package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"designdesk/internal/domain"
	"designdesk/internal/einvoice"
	"designdesk/internal/gst"
	"designdesk/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain and e-invoice errors to HTTP status codes
// and error codes. Typed e-invoice errors carry their own detail so the
// message is passed through verbatim.
func MapDomainError(err error) (status int, code, msg string) {
	var verrs einvoice.ValidationErrors
	var precond *einvoice.PreconditionError
	var authority *einvoice.AuthorityError
	var rateErr *gst.RateError

	switch {
	case errors.As(err, &verrs):
		return http.StatusUnprocessableEntity, "EINVOICE_VALIDATION_FAILED", verrs.Error()
	case errors.As(err, &precond):
		return http.StatusConflict, "EINVOICE_PRECONDITION_FAILED", precond.Error()
	case errors.As(err, &authority):
		return http.StatusBadGateway, "EINVOICE_AUTHORITY_REJECTED", authority.Error()
	case errors.As(err, &rateErr):
		return http.StatusBadRequest, "INVALID_TAX_RATE", rateErr.Error()
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "forbidden"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials"
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusForbidden, "USER_INACTIVE", "user is inactive"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "DUPLICATE_EMAIL", "email already exists"
	case errors.Is(err, domain.ErrInvoiceFrozen):
		return http.StatusConflict, "INVOICE_FROZEN", "invoice has an IRN and can no longer be edited"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// parsePagination extracts offset/limit query parameters with defaults.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset = 0
	limit = 20
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v >= 0 {
		offset = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	return offset, limit
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		log.Printf("http: [%s] internal error: %v", c.GetString(middleware.RequestIDKey), err)
	}
	RespondError(c, status, code, msg)
}
