package errors

import (
	"net/http"

	"campustrace/internal/errors"
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
	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"profile not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"this email is already registered",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"failed to create user",
		"",
	)

	ErrProfileUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROFILE_UPDATE_FAILED",
		"failed to update profile",
		"",
	)

	ErrUserBanned = NewBaseError(
		http.StatusForbidden,
		"USER_BANNED",
		"this account has been suspended",
		"",
	)

	// Authentication-related errors
	ErrAuthNotFound = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_NOT_FOUND",
		"no credentials found for this account",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"incorrect email or password",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"invalid or expired refresh token",
		"",
	)

	ErrRefreshTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_EXPIRED",
		"refresh token has expired",
		"",
	)

	ErrSessionLimitExceeded = NewBaseError(
		http.StatusTooManyRequests,
		"SESSION_LIMIT_EXCEEDED",
		"maximum number of concurrent sessions reached",
		"",
	)

	ErrMagicLinkInvalid = NewBaseError(
		http.StatusUnauthorized,
		"MAGIC_LINK_INVALID",
		"invalid or expired sign-in link",
		"",
	)

	ErrMagicLinkConsumed = NewBaseError(
		http.StatusUnauthorized,
		"MAGIC_LINK_CONSUMED",
		"this sign-in link has already been used",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"failed to process password",
		"",
	)

	ErrCaptchaFailed = NewBaseError(
		http.StatusBadRequest,
		"CAPTCHA_FAILED",
		"captcha verification failed",
		"",
	)

	// Tenant-related errors
	ErrUniversityNotFound = NewBaseError(
		http.StatusNotFound,
		"UNIVERSITY_NOT_FOUND",
		"university not found",
		"",
	)

	ErrUniversityNotResolved = NewBaseError(
		http.StatusUnprocessableEntity,
		"UNIVERSITY_NOT_RESOLVED",
		"could not determine the university for this request",
		"",
	)

	ErrEmailDomainNotAllowed = NewBaseError(
		http.StatusForbidden,
		"EMAIL_DOMAIN_NOT_ALLOWED",
		"this email domain is not associated with any university",
		"",
	)

	// Item-related errors
	ErrItemNotFound = NewBaseError(
		http.StatusNotFound,
		"ITEM_NOT_FOUND",
		"item not found",
		"",
	)

	ErrItemNotClaimable = NewBaseError(
		http.StatusConflict,
		"ITEM_NOT_CLAIMABLE",
		"this item cannot be claimed in its current state",
		"",
	)

	ErrItemOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"ITEM_OWNERSHIP_VIOLATION",
		"you do not have permission to modify this item",
		"",
	)

	ErrItemLocationMissing = NewBaseError(
		http.StatusBadRequest,
		"ITEM_LOCATION_MISSING",
		"this item has no pinned location",
		"",
	)

	ErrImageTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"IMAGE_TOO_LARGE",
		"uploaded image exceeds the size limit",
		"",
	)

	// Claim-related errors
	ErrClaimNotFound = NewBaseError(
		http.StatusNotFound,
		"CLAIM_NOT_FOUND",
		"claim not found",
		"",
	)

	ErrClaimAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CLAIM_ALREADY_EXISTS",
		"you have already filed a claim for this item",
		"",
	)

	ErrClaimAlreadyDecided = NewBaseError(
		http.StatusConflict,
		"CLAIM_ALREADY_DECIDED",
		"this claim has already been decided",
		"",
	)

	ErrClaimOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"CLAIM_OWNERSHIP_VIOLATION",
		"you do not have permission to decide this claim",
		"",
	)

	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"notification not found",
		"",
	)

	ErrNotificationOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"NOTIFICATION_OWNERSHIP_VIOLATION",
		"you do not have permission to access this notification",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
