package api

import (
	"fmt"
	"net/http"

	"golang.org/x/xerrors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type (
	// ErrorKind classifies the failures surfaced to the caller.
	ErrorKind int

	ServerError struct {
		kind       ErrorKind
		statusCode int
		message    string
		cause      error
	}

	grpcError interface {
		GRPCStatus() *status.Status
	}
)

const (
	InternalError ErrorKind = iota
	ValidationError
)

const (
	// StatusCanceled is returned when a client cancels the request while it is being processed.
	// Ref: https://www.webfx.com/web-development/glossary/http-status-codes/what-is-a-499-status-code/
	StatusCanceled = 499
)

var (
	ErrTransactionHashRequired = xerrors.New("Transaction hash is required")

	_ grpcError     = (*ServerError)(nil)
	_ fmt.Formatter = (*ServerError)(nil)
)

func (k ErrorKind) String() string {
	switch k {
	case ValidationError:
		return "ValidationError"
	default:
		return "InternalError"
	}
}

// HTTPStatus is the status code a kind maps to at the HTTP boundary.
func (k ErrorKind) HTTPStatus() int {
	if k == ValidationError {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// NewValidationError reports a request the caller has to fix. The cause message is returned as is.
func NewValidationError(cause error) *ServerError {
	return &ServerError{
		kind:       ValidationError,
		statusCode: ValidationError.HTTPStatus(),
		message:    cause.Error(),
		cause:      cause,
	}
}

// NewInternalError reports an unexpected failure. The cause message is returned as is.
func NewInternalError(cause error) *ServerError {
	return &ServerError{
		kind:       InternalError,
		statusCode: InternalError.HTTPStatus(),
		message:    cause.Error(),
		cause:      cause,
	}
}

// NewServerError reports a failure with an explicit status code, e.g. 404 or 413 raised by the router.
func NewServerError(statusCode int, cause error) *ServerError {
	kind := InternalError
	if statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError {
		kind = ValidationError
	}

	message := http.StatusText(statusCode)
	if cause != nil {
		message = cause.Error()
	}

	return &ServerError{
		kind:       kind,
		statusCode: statusCode,
		message:    message,
		cause:      cause,
	}
}

// AsServerError returns the ServerError in the chain of err, or wraps err as an internal error.
func AsServerError(err error) *ServerError {
	var serverErr *ServerError
	if xerrors.As(err, &serverErr) {
		return serverErr
	}

	return NewInternalError(err)
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%v %v: %v", e.statusCode, http.StatusText(e.statusCode), e.message)
}

func (e *ServerError) Unwrap() error {
	return e.cause
}

func (e *ServerError) Kind() ErrorKind {
	return e.kind
}

// Message is the text returned in the "error" field of the response body.
func (e *ServerError) Message() string {
	return e.message
}

// HTTPStatus is used as the status code of the HTTP response.
func (e *ServerError) HTTPStatus() int {
	return e.statusCode
}

func (e *ServerError) GRPCStatus() *status.Status {
	var code codes.Code
	switch e.statusCode {
	case http.StatusNotFound:
		code = codes.NotFound
	case http.StatusUnauthorized:
		code = codes.Unauthenticated
	case StatusCanceled:
		code = codes.Canceled
	default:
		if e.statusCode >= http.StatusBadRequest && e.statusCode < http.StatusInternalServerError {
			code = codes.InvalidArgument
		} else {
			code = codes.Internal
		}
	}
	return status.New(code, e.message)
}

// Format provides the "errorVerbose" field in Datadog.
func (e *ServerError) Format(state fmt.State, verb rune) {
	if verb == 'v' && state.Flag('+') {
		_, _ = fmt.Fprintf(state, "%v\n", e.Error())
		if e.cause != nil {
			_, _ = fmt.Fprintf(state, "%+v\n", e.cause)
		}
		return
	}

	_, _ = fmt.Fprint(state, e.Error())
}
