// Package errors defines the application error taxonomy shared between the
// use cases and the HTTP delivery layer.
package errors

import (
	"net/http"

	"stationhub/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Session/authorization errors
	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Sign in to access this page",
		"",
	)

	ErrInsufficientRole = NewBaseError(
		http.StatusForbidden,
		"INSUFFICIENT_ROLE",
		"Your account does not have permission to view this page",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrAccountBanned = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_BANNED",
		"This account has been suspended",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired session",
		"",
	)

	// User management errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Account not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrSelfTargetingForbidden = NewBaseError(
		http.StatusBadRequest,
		"SELF_TARGETING_FORBIDDEN",
		"You cannot delete or suspend your own account",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password does not meet the minimum requirements",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Submitted data failed validation",
		"",
	)

	// Record errors
	ErrStationNotFound = NewBaseError(
		http.StatusNotFound,
		"STATION_NOT_FOUND",
		"Station not found",
		"",
	)

	ErrRegionNotFound = NewBaseError(
		http.StatusNotFound,
		"REGION_NOT_FOUND",
		"Region not found",
		"",
	)

	ErrRegionSlugTaken = NewBaseError(
		http.StatusConflict,
		"REGION_SLUG_TAKEN",
		"A region with this slug already exists",
		"",
	)

	ErrPartnerNotFound = NewBaseError(
		http.StatusNotFound,
		"PARTNER_NOT_FOUND",
		"Partner not found",
		"",
	)

	ErrContentNotFound = NewBaseError(
		http.StatusNotFound,
		"CONTENT_NOT_FOUND",
		"Content section not found",
		"",
	)

	ErrMessageNotFound = NewBaseError(
		http.StatusNotFound,
		"MESSAGE_NOT_FOUND",
		"Contact message not found",
		"",
	)

	ErrStationNoMapLink = NewBaseError(
		http.StatusNotFound,
		"STATION_NO_MAP_LINK",
		"Station has no map position to encode",
		"",
	)

	// Upload errors
	ErrUploadTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"UPLOAD_TOO_LARGE",
		"Uploaded file exceeds the size limit",
		"",
	)

	ErrUploadTypeNotAllowed = NewBaseError(
		http.StatusUnsupportedMediaType,
		"UPLOAD_TYPE_NOT_ALLOWED",
		"This file type is not accepted",
		"",
	)

	ErrUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPLOAD_FAILED",
		"Failed to store the uploaded file",
		"",
	)
)

// NewDatabaseExecuteError wraps an unexpected database failure as a generic
// internal error, keeping the original error as details.
func NewDatabaseExecuteError(err error, message string) AppError {
	details := ""
	if err != nil {
		details = err.Error()
	}

	return NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		details,
	)
}

// Response is the unified error envelope written by the HTTP error handler.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`

	// RedirectTo echoes the originally requested path on 401 responses so
	// the client can return there after a successful sign-in.
	RedirectTo string `json:"redirect_to,omitempty"`
}

// ErrorInfo carries machine-readable error details in the envelope.
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}
