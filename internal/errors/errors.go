// Package errors provides custom error types for the Spendwise API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import (
	"fmt"
	"net/http"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

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

// Authentication & session errors.
var (
	ErrUnauthorized             = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials       = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid username or password", StatusCode: http.StatusUnauthorized}
	ErrAccountLocked            = &AppError{Code: "ACCOUNT_LOCKED", Message: "Account is temporarily locked", StatusCode: http.StatusLocked}
	ErrSessionExpired           = &AppError{Code: "SESSION_EXPIRED", Message: "Session expired, please log in again", StatusCode: http.StatusUnauthorized}
	ErrIncorrectCurrentPassword = &AppError{Code: "INCORRECT_CURRENT_PASSWORD", Message: "Current password is incorrect", StatusCode: http.StatusUnauthorized}
)

// User errors.
var (
	ErrUserNotFound      = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateUsername = &AppError{Code: "DUPLICATE_USERNAME", Message: "A user with this username already exists", StatusCode: http.StatusConflict}
	ErrWeakPassword      = &AppError{Code: "WEAK_PASSWORD", Message: "Password does not meet the strength policy", StatusCode: http.StatusBadRequest}
)

// Payment account errors.
var (
	ErrAccountNotFound      = &AppError{Code: "ACCOUNT_NOT_FOUND", Message: "Account not found", StatusCode: http.StatusNotFound}
	ErrDuplicateAccountName = &AppError{Code: "DUPLICATE_ACCOUNT_NAME", Message: "An account with this name already exists", StatusCode: http.StatusConflict}
	ErrAccountInUse         = &AppError{Code: "ACCOUNT_IN_USE", Message: "Account is referenced by existing expenses", StatusCode: http.StatusConflict}
)

// Expense errors.
var (
	ErrExpenseNotFound = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
)

// Backup errors.
var (
	ErrMalformedBackup = &AppError{Code: "MALFORMED_BACKUP", Message: "Backup file is not a valid Spendwise export", StatusCode: http.StatusBadRequest}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// AccountInUse builds the rejection for deleting an account that is still
// referenced, with exact reference counts so the caller can see why.
func AccountInUse(name string, dailyCount, recurringCount int64) *AppError {
	return WithMessage(ErrAccountInUse,
		fmt.Sprintf("Cannot delete account %q: it is used by %d daily and %d recurring expenses", name, dailyCount, recurringCount))
}

// AccountLockedFor builds the lockout rejection with the remaining wait time in minutes.
func AccountLockedFor(remainingMinutes int) *AppError {
	return WithMessage(ErrAccountLocked,
		fmt.Sprintf("Account is temporarily locked. Try again in %d minutes", remainingMinutes))
}
