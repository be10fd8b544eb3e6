package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/asylbekulybeibit/sauda-pro-backend/internal/pkg/apperrors"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// ConflictResponse sends a 409 Conflict response
func ConflictResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Conflict"
	}
	return ErrorResponseHandler(c, http.StatusConflict, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// DomainErrorResponse maps a domain error to its client-error status.
// Internal details never reach the client; only the taxonomy message does.
func DomainErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return UnauthorizedResponse(c, "Invalid credentials")
	case errors.Is(err, apperrors.ErrInvalidToken):
		return UnauthorizedResponse(c, "Invalid token")
	case errors.Is(err, apperrors.ErrForbidden):
		return ForbiddenResponse(c, "Insufficient permissions")
	case errors.Is(err, apperrors.ErrConflict):
		return ConflictResponse(c, "Resource already exists")
	case errors.Is(err, apperrors.ErrNotFound):
		return NotFoundResponse(c, "Resource not found")
	case errors.Is(err, apperrors.ErrInvalidState):
		return ErrorResponseHandler(c, http.StatusUnprocessableEntity, "Invalid state for this operation")
	case errors.Is(err, apperrors.ErrValidation):
		return BadRequestResponse(c, "Invalid request payload")
	default:
		return InternalServerErrorResponse(c, "")
	}
}
