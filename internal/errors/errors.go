package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Err     error // underlying error for wrapping
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is and errors.As
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error with domain error context
func WrapError(domainErr *DomainError, err error) *DomainError {
	return &DomainError{
		Code:    domainErr.Code,
		Message: domainErr.Message,
		Err:     err,
	}
}

// Predefined domain errors. Messages are part of the wire contract and are
// surfaced verbatim to clients.
var (
	// Auth errors
	ErrUserExists        = NewDomainError("USER_EXISTS", "User already exists")
	ErrUserNotFound      = NewDomainError("USER_NOT_FOUND", "User with the email does not exists")
	ErrPasswordIncorrect = NewDomainError("PASSWORD_INCORRECT", "Password not correct")
	ErrNotAuthenticated  = NewDomainError("NOT_AUTHENTICATED", "User is not authenticated")
	ErrUserNotLoggedIn   = NewDomainError("USER_NOT_LOGGED_IN", "User is not logged in")
	ErrNoActiveSession   = NewDomainError("NO_ACTIVE_SESSION", "No login session available")

	// Guard errors
	ErrTokenExpired = NewDomainError("TOKEN_EXPIRED", "Token has expired")
	ErrTokenInvalid = NewDomainError("TOKEN_INVALID", "invalid or malformed token")

	// Contact errors
	ErrContactExists   = NewDomainError("CONTACT_EXISTS", "The contact already exists")
	ErrContactNotFound = NewDomainError("CONTACT_NOT_FOUND", "The contact does not exists")

	// System errors
	ErrInternal = NewDomainError("INTERNAL_ERROR", "internal server error")
)

// IsDomainError checks if an error is a domain error
func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

// GetDomainError extracts the domain error from an error
func GetDomainError(err error) *DomainError {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// IsInternal reports whether the error collapses to the generic transient
// outcome instead of a domain failure.
func IsInternal(err error) bool {
	domainErr := GetDomainError(err)
	return domainErr == nil || domainErr.Code == ErrInternal.Code
}

// ToHTTPStatus maps domain errors to HTTP status codes.
// This should only be used in the handler/presentation layer.
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErrorToHTTPStatus(domainErr)
	}

	return http.StatusInternalServerError
}

func domainErrorToHTTPStatus(err *DomainError) int {
	switch err.Code {
	// 400 Bad Request — domain failures keep the original wire behavior
	case "USER_EXISTS", "USER_NOT_FOUND", "PASSWORD_INCORRECT",
		"NOT_AUTHENTICATED", "USER_NOT_LOGGED_IN", "NO_ACTIVE_SESSION",
		"CONTACT_EXISTS", "CONTACT_NOT_FOUND":
		return http.StatusBadRequest

	// 401 Unauthorized
	case "TOKEN_EXPIRED":
		return http.StatusUnauthorized

	// 403 Forbidden
	case "TOKEN_INVALID":
		return http.StatusForbidden

	// 500 Internal Server Error (default)
	default:
		return http.StatusInternalServerError
	}
}

// GetErrorMessage safely extracts error message
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	return err.Error()
}
