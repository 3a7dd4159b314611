package errors

import "fmt"

// APIError is the single error type crossing usecase boundaries. Code selects
// the HTTP status in HandleError; Err keeps the cause for logs only.
type APIError struct {
	Code    string
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

const (
	CodeValidation   = "validation_error"
	CodeUnauthorized = "unauthorized"
	CodeForbidden    = "forbidden"
	CodeNotFound     = "not_found"
	CodeConflict     = "conflict"
	CodeUpstream     = "upstream_error"
	CodeInternal     = "internal_error"
)

func Validation(msg string) *APIError {
	return &APIError{Code: CodeValidation, Message: msg}
}

func Unauthorized(msg string) *APIError {
	return &APIError{Code: CodeUnauthorized, Message: msg}
}

func Forbidden(msg string) *APIError {
	return &APIError{Code: CodeForbidden, Message: msg}
}

func NotFound(msg string) *APIError {
	return &APIError{Code: CodeNotFound, Message: msg}
}

func Conflict(msg string) *APIError {
	return &APIError{Code: CodeConflict, Message: msg}
}

// Upstream wraps a media-host or other external collaborator failure.
func Upstream(msg string, err error) *APIError {
	return &APIError{Code: CodeUpstream, Message: msg, Err: err}
}

func Internal(err error) *APIError {
	return &APIError{Code: CodeInternal, Message: "something went wrong", Err: err}
}
