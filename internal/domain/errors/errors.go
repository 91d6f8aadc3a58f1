package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrBadRequest    = errors.New("bad request")
	ErrCoachNotReady = errors.New("coach not ready to receive payments")
	ErrGateway       = errors.New("payment gateway error")
	ErrSignature     = errors.New("webhook signature verification failed")
)

// AppError represents application error with HTTP status
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, "ERR_NOT_FOUND", message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, "ERR_INVALID_INPUT", message, ErrInvalidInput)
}

func CoachNotReady(message string) *AppError {
	return NewAppError(http.StatusBadRequest, "ERR_COACH_NOT_READY", message, ErrCoachNotReady)
}

// Gateway wraps an upstream payment-processor failure. The cause is kept for
// server-side logging; the message returned to callers stays generic.
func Gateway(err error) *AppError {
	return NewAppError(http.StatusBadGateway, "ERR_GATEWAY", "payment provider error", errors.Join(ErrGateway, err))
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "ERR_INTERNAL", "internal server error", err)
}
