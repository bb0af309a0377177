// Package errors provides the application error type shared by services and handlers.
// Handlers translate an AppError into its status code and a JSON body; the
// Internal error is only ever logged.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"error"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is matches any AppError carrying the same code, so wrapped copies of a
// sentinel still satisfy errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Access token required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrInvalidToken       = &AppError{Code: "INVALID_TOKEN", Message: "Invalid or expired token", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrConflict       = &AppError{Code: "CONFLICT", Message: "The resource was modified by another request, please retry", StatusCode: http.StatusConflict}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
	ErrIntegration    = &AppError{Code: "INTEGRATION_ERROR", Message: "An upstream service request failed", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound         = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail       = &AppError{Code: "DUPLICATE_EMAIL", Message: "User already exists", StatusCode: http.StatusConflict}
	ErrDuplicateUsername    = &AppError{Code: "DUPLICATE_USERNAME", Message: "Username already taken", StatusCode: http.StatusConflict}
	ErrOnboardingIncomplete = &AppError{Code: "ONBOARDING_INCOMPLETE", Message: "Please complete all onboarding steps", StatusCode: http.StatusBadRequest}
)

// Goal errors.
var (
	ErrGoalNotFound  = &AppError{Code: "GOAL_NOT_FOUND", Message: "Goal not found", StatusCode: http.StatusNotFound}
	ErrInvalidAmount = &AppError{Code: "INVALID_AMOUNT", Message: "Amount must be a positive integer", StatusCode: http.StatusBadRequest}
)

// Settings errors.
var (
	ErrSettingsNotFound    = &AppError{Code: "SETTINGS_NOT_FOUND", Message: "Settings not found", StatusCode: http.StatusNotFound}
	ErrLimitOrderViolation = &AppError{Code: "LIMIT_ORDER_VIOLATION", Message: "Transaction limits are inconsistent", StatusCode: http.StatusBadRequest}
)

// Strava errors.
var (
	ErrStravaNotConnected  = &AppError{Code: "STRAVA_NOT_CONNECTED", Message: "Strava not connected", StatusCode: http.StatusNotFound}
	ErrStravaNotConfigured = &AppError{Code: "STRAVA_NOT_CONFIGURED", Message: "Strava integration is not configured", StatusCode: http.StatusServiceUnavailable}
)
