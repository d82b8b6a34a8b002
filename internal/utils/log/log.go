package log

import (
	"context"
	"log"
	"path/filepath"
	"runtime"
	"strconv"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/xerrors"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
	zapadapter "logur.dev/adapter/zap"
	"logur.dev/logur"

	"github.com/SCR01/chaintrace/internal/config"
)

var Module = fx.Options(
	fx.Provide(New),
	fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: logger.Named("fx")}
	}),
)

// New creates a colored development logger for the local environment and a JSON logger otherwise.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env() == config.EnvLocal {
		return NewDevelopment()
	}

	return NewProduction()
}

func NewDevelopment() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	logger, err := cfg.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		return nil, xerrors.Errorf("failed to create logger: %w", err)
	}

	return logger, nil
}

func NewProduction() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, xerrors.Errorf("failed to create logger: %w", err)
	}

	return logger, nil
}

func NewStandard(logger *zap.Logger) *log.Logger {
	return logur.NewStandardLogger(zapadapter.New(logger), logur.Info, "", 0)
}

// WithPackage adds a package tag to the logger, using the package name of the caller.
func WithPackage(logger *zap.Logger) *zap.Logger {
	const skipOffset = 1 // skip WithPackage

	_, file, _, ok := runtime.Caller(skipOffset)
	if !ok {
		return logger
	}

	packageName := filepath.Base(filepath.Dir(file))
	return logger.With(zap.String("package", packageName))
}

// WithSpan adds datadog span trace id for datadog https://docs.datadoghq.com/tracing/connect_logs_and_traces/go/
func WithSpan(ctx context.Context, logger *zap.Logger) *zap.Logger {
	if span, ok := tracer.SpanFromContext(ctx); ok {
		spanContext := span.Context()
		return logger.With(
			zap.String("dd.trace_id", strconv.FormatUint(spanContext.TraceID(), 10)),
			zap.String("dd.span_id", strconv.FormatUint(spanContext.SpanID(), 10)),
		)
	}

	return logger
}
