package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/SCR01/chaintrace/internal/api"
	"github.com/SCR01/chaintrace/internal/utils/constants"
)

type (
	RequestInterceptor struct {
		request *http.Request
		body    []byte
		err     error
	}

	readCloser struct {
		reader io.Reader
		closer io.Closer
	}

	requestIDKey struct{}
)

// NewRequestInterceptor reads the request body, up to maxRequestSize bytes when positive.
func NewRequestInterceptor(writer http.ResponseWriter, request *http.Request, maxRequestSize int64) *RequestInterceptor {
	reader := request.Body
	if maxRequestSize > 0 {
		reader = http.MaxBytesReader(writer, request.Body, maxRequestSize)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		statusCode := http.StatusBadRequest
		var maxBytesErr *http.MaxBytesError
		if xerrors.As(err, &maxBytesErr) {
			statusCode = http.StatusRequestEntityTooLarge
		}

		interceptorErr := api.NewServerError(
			statusCode,
			xerrors.Errorf("failed to read request: %w", err),
		)
		return &RequestInterceptor{
			request: request,
			err:     interceptorErr,
		}
	}

	// Replace body so that it can be read again.
	request.Body = readCloser{
		reader: bytes.NewBuffer(body),
		closer: request.Body,
	}

	return &RequestInterceptor{
		request: request,
		body:    body,
	}
}

func (i *RequestInterceptor) Body() json.RawMessage {
	// Cast to json.RawMessage so that the body can be logged as a JSON
	// instead of string (i.e. no extraneous quote escaping).
	return i.body
}

// Err returns the error encountered while reading the body.
func (i *RequestInterceptor) Err() error {
	return i.err
}

func (c readCloser) Read(p []byte) (int, error) {
	return c.reader.Read(p)
}

func (c readCloser) Close() error {
	return c.closer.Close()
}

// WithRequestID tags the request and the response with a request id.
// A valid UUID sent by the client is reused; otherwise a new one is generated.
func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requestID := request.Header.Get(constants.RequestIDHeaderName)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		writer.Header().Set(constants.RequestIDHeaderName, requestID)
		ctx := context.WithValue(request.Context(), requestIDKey{}, requestID)
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return requestID
	}

	return ""
}
