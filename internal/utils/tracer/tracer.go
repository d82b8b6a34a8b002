package tracer

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	"github.com/SCR01/chaintrace/internal/config"
	"github.com/SCR01/chaintrace/internal/utils/constants"
	"github.com/SCR01/chaintrace/internal/utils/log"
)

type (
	TracerParams struct {
		fx.In
		Lifecycle fx.Lifecycle
		Config    *config.Config
		Logger    *zap.Logger
	}

	// Tracer reports whether spans are shipped to a datadog agent.
	Tracer interface {
		Enabled() bool
	}

	datadogTracer struct {
		enabled bool
	}
)

var Module = fx.Options(
	fx.Provide(New),
	// Nothing else depends on Tracer; force its construction so the lifecycle hooks are registered.
	fx.Invoke(func(Tracer) {}),
)

// New starts the global datadog tracer when enabled. When disabled, the global tracer stays a no-op
// and spans created by the http middleware are discarded.
func New(params TracerParams) Tracer {
	cfg := params.Config.Tracer
	t := &datadogTracer{enabled: cfg.Enabled}
	if !cfg.Enabled {
		return t
	}

	logger := log.WithPackage(params.Logger)
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("starting tracer", zap.String("agent_address", cfg.AgentAddress))
			tracer.Start(
				tracer.WithService(constants.ServiceName),
				tracer.WithEnv(string(params.Config.Env())),
				tracer.WithAgentAddr(cfg.AgentAddress),
			)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping tracer")
			tracer.Stop()
			return nil
		},
	})

	return t
}

func (t *datadogTracer) Enabled() bool {
	return t.enabled
}
