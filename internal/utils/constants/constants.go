package constants

const (
	ServiceName     = "chaintrace"
	FullServiceName = "chaintrace.TraceAgent"

	RequestIDHeaderName = "X-Request-Id"
	ContentTypeJSON     = "application/json"
)
