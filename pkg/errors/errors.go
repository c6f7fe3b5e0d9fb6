package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// InvalidTransition is a local precondition failure: the requested status
// change is not legal from the entity's current status. It never reaches
// the network.
func InvalidTransition(kind, from, to string) *AppError {
	return &AppError{
		Code:    "INVALID_TRANSITION",
		Message: fmt.Sprintf("%s cannot move from %s to %s", kind, from, to),
		Status:  http.StatusConflict,
	}
}

// Remote wraps a network or upstream failure during a transition. The
// optimistic local state is retained by the caller.
func Remote(message string, err error) *AppError {
	return &AppError{
		Code:    "REMOTE_ERROR",
		Message: message,
		Status:  http.StatusBadGateway,
		Err:     err,
	}
}

// FetchFailure marks a failed full load or refresh; the snapshot store
// keeps serving its last known good collection.
func FetchFailure(resource string, err error) *AppError {
	return &AppError{
		Code:    "FETCH_FAILURE",
		Message: fmt.Sprintf("failed to load %s from upstream", resource),
		Status:  http.StatusBadGateway,
		Err:     err,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
