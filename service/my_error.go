package service

import (
	"errors"
	"fmt"

	"mycoordinator/domain"
)

const (
	// ErrInternalServerError means that an internal server error has occurred.
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound means that an instance or service is unknown to the registry.
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter means that provided parameter does not match declared.
	ErrBadParameter = "bad_parameter"
	// ErrValidationFailure means that startup clearance was refused because dependencies are not satisfied.
	ErrValidationFailure = "validation_failure"
	// ErrCycleDetected means that the dependency graph contains a cycle over blocking edges.
	ErrCycleDetected = "cycle_detected"
	// ErrTimeout means that a service did not become ready in time.
	ErrTimeout = "timeout"
	// ErrPersistenceFailure means that the storage backend failed.
	ErrPersistenceFailure = "persistence_failure"
	// ErrConflict means that the requested transition or operation conflicts with current state.
	ErrConflict = "conflict"
)

// MyError represents an error within the context of mycoordinator services.
type MyError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Inner is a wrapped error that is never shown to API consumers.
	Inner error `json:"-"`
}

// NewMyError creates a new MyError.
func NewMyError(code string, message string, inner error) *MyError {
	return &MyError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

func newOrKeep(code, message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(code, message, inner)
}

func NewInternalServerError(message string, inner error) *MyError {
	return newOrKeep(ErrInternalServerError, message, inner)
}

func NewEntityNotFoundError(message string, inner error) *MyError {
	return newOrKeep(ErrEntityNotFound, message, inner)
}

func NewBadParameterError(message string, inner error) *MyError {
	return newOrKeep(ErrBadParameter, message, inner)
}

func NewValidationFailureError(message string, inner error) *MyError {
	return newOrKeep(ErrValidationFailure, message, inner)
}

func NewCycleDetectedError(message string, inner error) *MyError {
	return newOrKeep(ErrCycleDetected, message, inner)
}

func NewTimeoutError(message string, inner error) *MyError {
	return newOrKeep(ErrTimeout, message, inner)
}

func NewConflictError(message string, inner error) *MyError {
	return newOrKeep(ErrConflict, message, inner)
}

// NewPersistenceError classifies a repository error: a missing row becomes entity_not_found,
// anything else persistence_failure.
func NewPersistenceError(message string, inner error) *MyError {
	if errors.Is(inner, domain.ErrInstanceNotFound) {
		return NewMyError(ErrEntityNotFound, message, inner)
	}
	return newOrKeep(ErrPersistenceFailure, message, inner)
}

func (e MyError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}

	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap the error returning the error's reason.
func (e MyError) Unwrap() error {
	return e.Inner
}

// ToMyError returns a pointer to a mycoordinator error, or nil if it is not a mycoordinator error.
func ToMyError(err error) *MyError {
	var e *MyError
	if errors.As(err, &e) {
		return e
	}

	return nil
}

// ToMyErrorCode returns the code of the error, if available.
func ToMyErrorCode(err error) string {
	myerror := ToMyError(err)
	if myerror != nil {
		return myerror.Code
	}
	return ""
}

func IsMyError(err error, code string) bool {
	myerror := ToMyError(err)
	if myerror != nil {
		return myerror.Code == code
	}
	return false
}

func IsInternalServerError(err error) bool {
	return IsMyError(err, ErrInternalServerError)
}

func IsEntityNotFoundError(err error) bool {
	return IsMyError(err, ErrEntityNotFound)
}

func IsBadParameterError(err error) bool {
	return IsMyError(err, ErrBadParameter)
}

func IsConflictError(err error) bool {
	return IsMyError(err, ErrConflict)
}

func IsPersistenceError(err error) bool {
	return IsMyError(err, ErrPersistenceFailure)
}
