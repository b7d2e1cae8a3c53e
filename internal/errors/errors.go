package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ValidationError is the body of every 422 response: a summary message
// plus per-field violation messages.
type ValidationError struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// APIError is the body of 401/403/400/500 responses.
type APIError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ValidationFailed sends a 422 response carrying per-field messages.
func ValidationFailed(c *gin.Context, errs map[string][]string) {
	c.JSON(http.StatusUnprocessableEntity, ValidationError{
		Message: "Validation error",
		Errors:  errs,
	})
}

// DomainFailure sends a 422 response for a business-rule violation,
// keyed under the generic "general" field.
func DomainFailure(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, ValidationError{
		Message: message,
		Errors:  map[string][]string{"general": {message}},
	})
}

// Unauthorized sends a 401 response.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	c.JSON(http.StatusUnauthorized, APIError{Error: "Unauthorized", Message: message})
}

// Forbidden sends a 403 response.
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Access denied"
	}
	c.JSON(http.StatusForbidden, APIError{Error: "Forbidden", Message: message})
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	c.JSON(http.StatusBadRequest, APIError{Error: "Bad Request", Message: message})
}

// InternalError sends a 500 response.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	c.JSON(http.StatusInternalServerError, APIError{Error: "Internal Server Error", Message: message})
}
