package utils

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"catering_backend/internal/datastore"

	"github.com/gin-gonic/gin"
)

// Standardized APIError response
type APIError struct {
	StatusCode int    `json:"-"`              // HTTP status code, not included in JSON response body for error itself
	Code       string `json:"code,omitempty"` // Application-specific error code
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	Store      string `json:"store,omitempty"` // which backing store failed, when known
}

// NewAPIError creates a new APIError instance
func NewAPIError(statusCode int, code string, message string, details string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
		Details:    details,
	}
}

// RespondWithError sends a standardized JSON error response
func RespondWithError(c *gin.Context, err *APIError) {
	c.JSON(err.StatusCode, gin.H{"error": err})
	c.Abort()
}

// Common Error Constants
const (
	ErrCodeBadRequest          = "BAD_REQUEST"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeConflict            = "CONFLICT"
	ErrCodeInternalServerError = "INTERNAL_SERVER_ERROR"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
	ErrCodeNotImplemented      = "NOT_IMPLEMENTED"
	ErrCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
)

// StoreErrorToAPIError classifies a data-layer error by kind.
func StoreErrorToAPIError(err error, what string) *APIError {
	var apiErr *APIError
	switch {
	case errors.Is(err, datastore.ErrNotFound):
		apiErr = NewAPIError(http.StatusNotFound, ErrCodeNotFound, what+" not found.", err.Error())
	case errors.Is(err, datastore.ErrDuplicateKey):
		apiErr = NewAPIError(http.StatusConflict, ErrCodeConflict, what+" already exists.", err.Error())
	case errors.Is(err, datastore.ErrReferenced):
		apiErr = NewAPIError(http.StatusConflict, ErrCodeConflict, what+" is referenced by, or references, a missing record.", err.Error())
	case errors.Is(err, datastore.ErrInvalidID),
		errors.Is(err, datastore.ErrCrossStoreReference),
		errors.Is(err, datastore.ErrValidation):
		apiErr = NewAPIError(http.StatusBadRequest, ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error())
	case errors.Is(err, datastore.ErrUnsupportedOperation):
		apiErr = NewAPIError(http.StatusNotImplemented, ErrCodeNotImplemented, "Operation not supported by this data store.", err.Error())
	case errors.Is(err, datastore.ErrRemoteUnavailable):
		apiErr = NewAPIError(http.StatusBadGateway, ErrCodeUpstreamUnavailable, "Remote record service unavailable.", err.Error())
	default:
		apiErr = NewAPIError(http.StatusInternalServerError, ErrCodeInternalServerError, "Failed to process "+strings.ToLower(what)+".", "Internal error")
	}
	apiErr.Store = string(datastore.StoreOf(err))
	return apiErr
}

// RespondWithStoreError logs err and sends the classified error response.
func RespondWithStoreError(c *gin.Context, err error, what string) {
	LogError(err, what+": data store error")
	RespondWithError(c, StoreErrorToAPIError(err, what))
}

// Validation functions

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidEmail checks if a string is a valid email format.
var emailRegex = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(strings.ToLower(email))
}

// Helper to return a standard validation error
func RespondValidationFailed(c *gin.Context, details string) {
	RespondWithError(c, NewAPIError(http.StatusBadRequest, ErrCodeValidationFailed, "Input validation failed", details))
}
