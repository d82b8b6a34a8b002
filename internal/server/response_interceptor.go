package server

import (
	"net/http"
)

type (
	ResponseInterceptor struct {
		http.ResponseWriter

		statusCode   int
		bytesWritten int
	}
)

func NewResponseInterceptor(writer http.ResponseWriter) *ResponseInterceptor {
	return &ResponseInterceptor{
		ResponseWriter: writer,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader intercepts the response status code.
func (i *ResponseInterceptor) WriteHeader(statusCode int) {
	i.statusCode = statusCode
	i.ResponseWriter.WriteHeader(statusCode)
}

func (i *ResponseInterceptor) Write(p []byte) (int, error) {
	n, err := i.ResponseWriter.Write(p)
	i.bytesWritten += n
	return n, err
}

func (i *ResponseInterceptor) StatusCode() int {
	return i.statusCode
}

func (i *ResponseInterceptor) BytesWritten() int {
	return i.bytesWritten
}
