package testapp

import (
	"testing"

	"github.com/uber-go/tally/v4"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"golang.org/x/xerrors"

	"github.com/SCR01/chaintrace/internal/config"
	"github.com/SCR01/chaintrace/internal/utils/constants"
	"github.com/SCR01/chaintrace/internal/utils/randutil"
	"github.com/SCR01/chaintrace/internal/utils/testutil"
	"github.com/SCR01/chaintrace/internal/utils/timeutil"
	"github.com/SCR01/chaintrace/internal/utils/tracer"
)

type (
	TestApp interface {
		Close()
		Logger() *zap.Logger
		Config() *config.Config
		Metrics() tally.TestScope
	}

	TestFn func(t *testing.T, cfg *config.Config)

	testAppImpl struct {
		app     *fxtest.App
		logger  *zap.Logger
		config  *config.Config
		metrics tally.TestScope
	}

	customConfig struct {
		config *config.Config
	}

	customClock struct {
		clock timeutil.Clock
	}

	overrideParams struct {
		fx.In
		CustomConfig *customConfig `optional:"true"`
		CustomClock  *customClock  `optional:"true"`
	}
)

const (
	// TestSeed makes the agents' random output reproducible across runs.
	TestSeed = 1
)

var EnvsToTest = []config.Env{
	config.EnvLocal,
	config.EnvDevelopment,
	config.EnvProduction,
}

func New(t testing.TB, opts ...fx.Option) TestApp {
	logger := zaptest.NewLogger(t)
	metrics := tally.NewTestScope(constants.ServiceName, nil)

	var cfg *config.Config
	opts = append(
		opts,
		randutil.Module,
		tracer.Module,
		fx.NopLogger,
		fx.Provide(newConfig),
		fx.Provide(newClock),
		fx.Provide(func() testing.TB { return t }),
		fx.Provide(func() *zap.Logger { return logger }),
		fx.Provide(func() tally.Scope { return metrics }),
		fx.Populate(&cfg),
	)

	app := fxtest.New(t, opts...)
	app.RequireStart()
	return &testAppImpl{
		app:     app,
		logger:  logger,
		config:  cfg,
		metrics: metrics,
	}
}

// NewConfig returns the local config with the agent delays removed and a fixed seed.
func NewConfig() (*config.Config, error) {
	cfg, err := config.New(config.WithEnvironment(config.EnvLocal))
	if err != nil {
		return nil, xerrors.Errorf("failed to create config: %w", err)
	}

	cfg.Agent.Delays = config.DelayConfig{}
	cfg.Agent.Seed = TestSeed
	cfg.Server.BindAddress = "127.0.0.1:0"
	cfg.Tracer.Enabled = false
	return cfg, nil
}

// WithConfig overrides the default test config.
func WithConfig(cfg *config.Config) fx.Option {
	return fx.Provide(func() *customConfig {
		return &customConfig{config: cfg}
	})
}

// WithClock overrides the wall clock.
func WithClock(clock timeutil.Clock) fx.Option {
	return fx.Provide(func() *customClock {
		return &customClock{clock: clock}
	})
}

func newConfig(params overrideParams) (*config.Config, error) {
	if params.CustomConfig != nil {
		return params.CustomConfig.config, nil
	}

	return NewConfig()
}

func newClock(params overrideParams) timeutil.Clock {
	if params.CustomClock != nil {
		return params.CustomClock.clock
	}

	return timeutil.NewClock()
}

func (a *testAppImpl) Close() {
	a.app.RequireStop()
}

func (a *testAppImpl) Logger() *zap.Logger {
	return a.logger
}

func (a *testAppImpl) Config() *config.Config {
	return a.config
}

func (a *testAppImpl) Metrics() tally.TestScope {
	return a.metrics
}

// TestAllConfigs runs fn against the config of every environment.
func TestAllConfigs(t *testing.T, fn TestFn) {
	for _, env := range EnvsToTest {
		t.Run(string(env), func(t *testing.T) {
			require := testutil.Require(t)

			cfg, err := config.New(config.WithEnvironment(env))
			require.NoError(err)
			require.Equal(env, cfg.Env())

			fn(t, cfg)
		})
	}
}
