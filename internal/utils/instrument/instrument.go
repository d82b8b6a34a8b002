package instrument

import (
	"context"
	"time"

	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	"github.com/SCR01/chaintrace/internal/utils/log"
)

type (
	// Call emits a counter tagged by result type, a latency timer and an optional log line for each operation.
	Call interface {
		Instrument(ctx context.Context, operation OperationFn, opts ...InstrumentOption) error
	}

	OperationFn func(ctx context.Context) error

	// FilterFn returns true if the error is caused by the client and should not count as a failure.
	FilterFn func(err error) bool

	Option func(c *call)

	InstrumentOption func(opts *instrumentOptions)

	call struct {
		name      string
		logger    *zap.Logger
		loggerMsg string
		filter    FilterFn
		spanName  string
		spanTags  map[string]string
		success   tally.Counter
		failure   tally.Counter
		filtered  tally.Counter
		latency   tally.Timer
	}

	instrumentOptions struct {
		loggerFields []zap.Field
	}
)

const (
	resultTypeTag      = "result_type"
	ResultTypeSuccess  = "success"
	ResultTypeError    = "error"
	ResultTypeFiltered = "client_error"

	latencySuffix = ".latency"
)

func NewCall(scope tally.Scope, name string, opts ...Option) Call {
	c := &call{
		name:     name,
		success:  scope.Tagged(map[string]string{resultTypeTag: ResultTypeSuccess}).Counter(name),
		failure:  scope.Tagged(map[string]string{resultTypeTag: ResultTypeError}).Counter(name),
		filtered: scope.Tagged(map[string]string{resultTypeTag: ResultTypeFiltered}).Counter(name),
		latency:  scope.Timer(name + latencySuffix),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithLogger logs every call with msg; failures are logged at warn level.
func WithLogger(logger *zap.Logger, msg string) Option {
	return func(c *call) {
		c.logger = logger
		c.loggerMsg = msg
	}
}

// WithTracer wraps every call in a datadog span.
func WithTracer(spanName string, tags map[string]string) Option {
	return func(c *call) {
		c.spanName = spanName
		c.spanTags = tags
	}
}

func WithFilter(filter FilterFn) Option {
	return func(c *call) {
		c.filter = filter
	}
}

func WithLoggerFields(fields ...zap.Field) InstrumentOption {
	return func(opts *instrumentOptions) {
		opts.loggerFields = append(opts.loggerFields, fields...)
	}
}

func (c *call) Instrument(ctx context.Context, operation OperationFn, opts ...InstrumentOption) error {
	options := new(instrumentOptions)
	for _, opt := range opts {
		opt(options)
	}

	var span tracer.Span
	if c.spanName != "" {
		spanOpts := []tracer.StartSpanOption{tracer.ResourceName(c.name)}
		for k, v := range c.spanTags {
			spanOpts = append(spanOpts, tracer.Tag(k, v))
		}
		span, ctx = tracer.StartSpanFromContext(ctx, c.spanName, spanOpts...)
	}

	start := time.Now()
	err := operation(ctx)
	elapsed := time.Since(start)
	c.latency.Record(elapsed)

	resultType := ResultTypeSuccess
	if err != nil {
		resultType = ResultTypeError
		if c.filter != nil && c.filter(err) {
			resultType = ResultTypeFiltered
		}
	}

	if span != nil {
		span.SetTag(resultTypeTag, resultType)
		if resultType == ResultTypeError {
			span.Finish(tracer.WithError(err))
		} else {
			span.Finish()
		}
	}

	switch resultType {
	case ResultTypeSuccess:
		c.success.Inc(1)
	case ResultTypeFiltered:
		c.filtered.Inc(1)
	default:
		c.failure.Inc(1)
	}

	if c.logger != nil {
		fields := append(
			[]zap.Field{
				zap.String("name", c.name),
				zap.String(resultTypeTag, resultType),
				zap.Duration("latency", elapsed),
			},
			options.loggerFields...,
		)

		logger := log.WithSpan(ctx, c.logger)
		if resultType == ResultTypeError {
			logger.Warn(c.loggerMsg, append(fields, zap.Error(err))...)
		} else if err != nil {
			logger.Info(c.loggerMsg, append(fields, zap.Error(err))...)
		} else {
			logger.Debug(c.loggerMsg, fields...)
		}
	}

	return err
}
