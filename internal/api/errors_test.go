package api

import (
	"fmt"
	"net/http"
	"testing"

	"golang.org/x/xerrors"
	"google.golang.org/grpc/codes"

	"github.com/SCR01/chaintrace/internal/utils/testutil"
)

func TestValidationError(t *testing.T) {
	require := testutil.Require(t)

	err := NewValidationError(ErrTransactionHashRequired)
	require.Equal(ValidationError, err.Kind())
	require.Equal(http.StatusBadRequest, err.HTTPStatus())
	require.Equal("Transaction hash is required", err.Message())
	require.Equal(codes.InvalidArgument, err.GRPCStatus().Code())
	require.True(xerrors.Is(err, ErrTransactionHashRequired))
}

func TestInternalError(t *testing.T) {
	require := testutil.Require(t)

	cause := xerrors.New("agent failed")
	err := NewInternalError(cause)
	require.Equal(InternalError, err.Kind())
	require.Equal(http.StatusInternalServerError, err.HTTPStatus())
	require.Equal("agent failed", err.Message())
	require.Equal(codes.Internal, err.GRPCStatus().Code())
	require.Contains(err.Error(), "500 Internal Server Error")
}

func TestNewServerError(t *testing.T) {
	tests := []struct {
		statusCode int
		cause      error
		kind       ErrorKind
		message    string
		code       codes.Code
	}{
		{http.StatusNotFound, nil, ValidationError, "Not Found", codes.NotFound},
		{http.StatusMethodNotAllowed, nil, ValidationError, "Method Not Allowed", codes.InvalidArgument},
		{http.StatusRequestEntityTooLarge, xerrors.New("too large"), ValidationError, "too large", codes.InvalidArgument},
		{StatusCanceled, xerrors.New("canceled"), ValidationError, "canceled", codes.Canceled},
		{http.StatusServiceUnavailable, nil, InternalError, "Service Unavailable", codes.Internal},
	}
	for _, test := range tests {
		t.Run(fmt.Sprint(test.statusCode), func(t *testing.T) {
			require := testutil.Require(t)

			err := NewServerError(test.statusCode, test.cause)
			require.Equal(test.kind, err.Kind())
			require.Equal(test.statusCode, err.HTTPStatus())
			require.Equal(test.message, err.Message())
			require.Equal(test.code, err.GRPCStatus().Code())
		})
	}
}

func TestAsServerError(t *testing.T) {
	require := testutil.Require(t)

	validation := NewValidationError(ErrTransactionHashRequired)
	wrapped := xerrors.Errorf("failed to handle request: %w", validation)
	require.Same(validation, AsServerError(wrapped))

	internal := AsServerError(xerrors.New("unexpected"))
	require.Equal(InternalError, internal.Kind())
	require.Equal("unexpected", internal.Message())
}

func TestErrorKind(t *testing.T) {
	require := testutil.Require(t)

	require.Equal("ValidationError", ValidationError.String())
	require.Equal("InternalError", InternalError.String())
	require.Equal(http.StatusBadRequest, ValidationError.HTTPStatus())
	require.Equal(http.StatusInternalServerError, InternalError.HTTPStatus())
}
