// Package errors provides the application error taxonomy.
package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode identifies a class of failure.
type ErrorCode string

const (
	CodeSuccess       ErrorCode = "0"
	CodeUnknown       ErrorCode = "1000"
	CodeInvalidParam  ErrorCode = "1001"
	CodeForbidden     ErrorCode = "1003"
	CodeNotFound      ErrorCode = "1004"
	CodeConflict      ErrorCode = "1005"
	CodeInternalError ErrorCode = "1007"

	// Resource errors (3xxx)
	CodeBookNotFound    ErrorCode = "3001"
	CodeChapterNotFound ErrorCode = "3002"
	CodeContentNotFound ErrorCode = "3003"
	CodeStyleNotFound   ErrorCode = "3004"

	// Business errors (4xxx)
	CodeValidationError    ErrorCode = "4001"
	CodeInvalidReference   ErrorCode = "4002"
	CodeStylePredefined    ErrorCode = "4003"
	CodeGenerationInFlight ErrorCode = "4004"
	CodeInvalidTransition  ErrorCode = "4005"

	// External service errors (5xxx)
	CodeGenerationUnavailable ErrorCode = "5001"
	CodeDatabaseError         ErrorCode = "5002"
)

// AppError is the error type crossing layer boundaries. Store and service
// errors propagate unmodified; the HTTP layer maps codes to statuses.
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Err        error     `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail returns a copy carrying extra detail. Predefined errors are
// shared values, so they are never mutated in place.
func (e *AppError) WithDetail(detail string) *AppError {
	clone := *e
	clone.Detail = detail
	return &clone
}

// WithError returns a copy wrapping an underlying error.
func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

// New creates an application error.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

// Wrap wraps an underlying error with a code and message.
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Err:        err,
	}
}

func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case CodeSuccess:
		return http.StatusOK
	case CodeInvalidParam, CodeValidationError:
		return http.StatusBadRequest
	case CodeForbidden, CodeStylePredefined:
		return http.StatusForbidden
	case CodeNotFound, CodeBookNotFound, CodeChapterNotFound, CodeContentNotFound, CodeStyleNotFound:
		return http.StatusNotFound
	case CodeConflict, CodeGenerationInFlight, CodeInvalidTransition:
		return http.StatusConflict
	case CodeInvalidReference:
		return http.StatusUnprocessableEntity
	case CodeGenerationUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Predefined errors.
var (
	ErrInvalidParam  = New(CodeInvalidParam, "invalid parameter")
	ErrForbidden     = New(CodeForbidden, "forbidden")
	ErrNotFound      = New(CodeNotFound, "resource not found")
	ErrConflict      = New(CodeConflict, "resource conflict")
	ErrInternalError = New(CodeInternalError, "internal server error")

	ErrBookNotFound    = New(CodeBookNotFound, "book not found")
	ErrChapterNotFound = New(CodeChapterNotFound, "chapter not found")
	ErrContentNotFound = New(CodeContentNotFound, "content not found")
	ErrStyleNotFound   = New(CodeStyleNotFound, "style not found")

	ErrValidation            = New(CodeValidationError, "validation failed")
	ErrInvalidReference      = New(CodeInvalidReference, "referenced entity does not exist")
	ErrStylePredefined       = New(CodeStylePredefined, "predefined styles cannot be deleted")
	ErrGenerationInFlight    = New(CodeGenerationInFlight, "a generation is already running for this chapter")
	ErrInvalidTransition     = New(CodeInvalidTransition, "event not allowed in current navigation state")
	ErrGenerationUnavailable = New(CodeGenerationUnavailable, "story generation service unavailable")
)

// IsAppError reports whether err is an AppError.
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// AsAppError converts err to an AppError, wrapping unknown errors.
func AsAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return Wrap(err, CodeUnknown, "unknown error")
}

// IsCode reports whether err is an AppError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == code
}
