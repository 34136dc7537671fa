package errors

import (
	"net/http"
	"strings"

	"github.com/lib/pq"
)

// APIError represents a structured error for API responses.
// Includes a code, message, and HTTP status for consistent error handling.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

// Error implements the error interface for APIError.
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError with the given code, message, and status.
func NewAPIError(code, message string, status int) *APIError {
	return &APIError{Code: code, Message: message, Status: status}
}

// Predefined API errors for common scenarios.
var (
	ErrInvalidBody       = NewAPIError("invalid_body_format", "unable to parse the request body", http.StatusUnprocessableEntity)
	ErrUnauthorized      = NewAPIError("unauthorized", "Unauthorized", http.StatusUnauthorized)
	ErrForbidden         = NewAPIError("forbidden", "you do not have access to this resource", http.StatusForbidden)
	ErrInvalidToken      = NewAPIError("invalid_token", "Invalid token", http.StatusUnauthorized)
	ErrExpiredToken      = NewAPIError("expired_token", "Expired token", http.StatusUnauthorized)
	ErrUserNotFound      = NewAPIError("user_not_exist", "user not found or created", http.StatusBadRequest)
	ErrPlatformNotFound  = NewAPIError("platform_not_exist", "the platform you are trying to operate on does not exist", http.StatusBadRequest)
	ErrAccountNotFound   = NewAPIError("social_account_not_exist", "the social account you are trying to operate on does not exist", http.StatusBadRequest)
	ErrPostNotFound      = NewAPIError("post_not_exist", "the post you are trying to operate on does not exist", http.StatusBadRequest)
	ErrScheduleNotFound  = NewAPIError("scheduled_post_not_exist", "the scheduled post you are trying to operate on does not exist", http.StatusBadRequest)
	ErrDuplicatePlatform = NewAPIError("duplicate_platform", "Platform already exists", http.StatusConflict)
	ErrNotFound          = NewAPIError("not_found", "Resource not found", http.StatusNotFound)
	ErrInternalServer    = NewAPIError("internal_error", "Internal server error", http.StatusInternalServerError)
)

// Account linking errors. The callback handler collapses these to the coarse
// redirect reason codes; the detailed variants exist for server-side logging
// and for callers that need to tell the steps apart.
var (
	ErrProviderDenied      = NewAPIError("provider_denied", "the provider denied the authorization request", http.StatusBadRequest)
	ErrTokenExchangeFailed = NewAPIError("token_exchange_failed", "failed to exchange authorization code for an access token", http.StatusBadGateway)
	ErrTokenUpgradeFailed  = NewAPIError("token_upgrade_failed", "failed to upgrade to a long-lived access token", http.StatusBadGateway)
	ErrProfileFetchFailed  = NewAPIError("profile_fetch_failed", "failed to fetch the linked account profile", http.StatusBadGateway)
	ErrTokenRefreshFailed  = NewAPIError("token_refresh_failed", "failed to refresh the long-lived access token", http.StatusBadGateway)
	ErrPersistenceFailed   = NewAPIError("persistence_failed", "failed to save the linked account", http.StatusInternalServerError)
)

// Redirect reason codes surfaced to the browser via the settings page query string.
const (
	RedirectErrAuthFailed       = "auth_failed"
	RedirectErrConnectionFailed = "connection_failed"
)

// IsUniqueViolation checks for unique constraint violation (Postgres).
// Used to detect duplicate resource errors from the database.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	// Try to cast to pq.Error and check the code
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505" // unique_violation
	}

	// Fallback to message-based detection (optional)
	return strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "unique constraint")
}

// IsForeignKeyViolation checks for foreign key violation (Postgres).
// Used to detect references to rows that no longer exist.
func IsForeignKeyViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	if !ok {
		return false
	}
	return pqErr.Code == "23503" // foreign_key_violation
}
