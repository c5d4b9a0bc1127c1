package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeNotFound     = "NOT_FOUND"
	CodeValidation   = "VALIDATION_ERROR"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL_ERROR"
	CodeBadRequest   = "BAD_REQUEST"
	CodeUnavailable  = "SERVICE_UNAVAILABLE"
	CodeInvalidInput = "INVALID_INPUT"

	// Engine-side kinds. They never travel over HTTP from the API, so their
	// status is what a client-facing proxy would answer with.
	CodeValidationRejected = "VALIDATION_REJECTED"
	CodeBookingIncomplete  = "BOOKING_INCOMPLETE"
	CodeTransportFailure   = "TRANSPORT_FAILURE"
	CodeMalformedResponse  = "MALFORMED_RESPONSE"
	CodeEmptyCart          = "EMPTY_CART"
	CodeSubmitInProgress   = "SUBMIT_IN_PROGRESS"
)

type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) StatusCode() int {
	return e.HTTPStatus
}

func (e *AppError) ToJSON() []byte {
	response := ErrorResponse{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	}
	data, _ := json.Marshal(response)
	return data
}

type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

func Wrap(err error, code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

func (e *AppError) WithDetails(details map[string]any) *AppError {
	e.Details = details
	return e
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

func Validation(message string, details map[string]any) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    details,
	}
}

func InvalidInput(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func Conflict(message string) *AppError {
	return &AppError{
		Code:       CodeConflict,
		Message:    message,
		HTTPStatus: http.StatusConflict,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func Unavailable(service string) *AppError {
	return &AppError{
		Code:       CodeUnavailable,
		Message:    fmt.Sprintf("%s is temporarily unavailable", service),
		HTTPStatus: http.StatusServiceUnavailable,
	}
}

// BookingIncomplete reports a reservation submitted without a chosen table.
func BookingIncomplete(message string) *AppError {
	return &AppError{
		Code:       CodeBookingIncomplete,
		Message:    message,
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

// TransportFailure reports a request that failed on the wire or came back
// with a non-success status. status is 0 when no response was received.
func TransportFailure(operation string, status int, err error) *AppError {
	appErr := &AppError{
		Code:       CodeTransportFailure,
		Message:    fmt.Sprintf("%s failed", operation),
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
	if status != 0 {
		appErr.Details = map[string]any{"status": status}
	}
	return appErr
}

func MalformedResponse(operation string, err error) *AppError {
	return &AppError{
		Code:       CodeMalformedResponse,
		Message:    fmt.Sprintf("%s returned an unexpected body", operation),
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

func EmptyCart() *AppError {
	return &AppError{
		Code:       CodeEmptyCart,
		Message:    "cart has no products",
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

func SubmitInProgress(what string) *AppError {
	return &AppError{
		Code:       CodeSubmitInProgress,
		Message:    fmt.Sprintf("%s submission already in progress", what),
		HTTPStatus: http.StatusConflict,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("An unexpected error occurred", err)
}

// HasCode reports whether err is, or wraps, an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code == code
}
