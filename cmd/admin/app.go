package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/uber-go/tally/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/SCR01/chaintrace/internal/agent"
	"github.com/SCR01/chaintrace/internal/api"
	"github.com/SCR01/chaintrace/internal/compliance"
	"github.com/SCR01/chaintrace/internal/config"
	"github.com/SCR01/chaintrace/internal/trace"
	"github.com/SCR01/chaintrace/internal/utils/jsonutil"
	"github.com/SCR01/chaintrace/internal/utils/log"
	"github.com/SCR01/chaintrace/internal/utils/randutil"
	"github.com/SCR01/chaintrace/internal/utils/timeutil"
	"github.com/SCR01/chaintrace/internal/utils/tracer"
)

type (
	App struct {
		Config *config.Config
		Logger *zap.Logger

		app    *fx.App
		ctx    context.Context
		cancel context.CancelFunc
	}
)

func NewApp(opts ...fx.Option) (*App, error) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	logger, err := log.NewDevelopment()
	if err != nil {
		cancel()
		return nil, xerrors.Errorf("failed to create logger: %w", err)
	}

	env := config.Env(rootFlags.env)
	cfg, err := config.New(config.WithEnvironment(env))
	if err != nil {
		cancel()
		return nil, xerrors.Errorf("failed to create config: %w", err)
	}

	if rootFlags.seed != 0 {
		cfg.Agent.Seed = rootFlags.seed
	}

	logger.Info(
		"starting app",
		zap.String("env", string(env)),
		zap.Int64("seed", cfg.Agent.Seed),
	)

	opts = append(opts,
		agent.Module,
		compliance.Module,
		config.Module,
		config.WithCustomConfig(cfg),
		randutil.Module,
		timeutil.Module,
		trace.Module,
		tracer.Module,
		fx.NopLogger,
		fx.Provide(func() *zap.Logger { return logger }),
		fx.Provide(func() tally.Scope { return tally.NoopScope }),
	)
	app := fx.New(opts...)
	if err := app.Start(ctx); err != nil {
		cancel()
		return nil, xerrors.Errorf("failed to start app: %w", err)
	}

	return &App{
		Config: cfg,
		Logger: logger,
		app:    app,
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// Context is canceled on SIGINT or SIGTERM.
func (a *App) Context() context.Context {
	return a.ctx
}

func (a *App) Close() {
	if a == nil {
		return
	}

	if err := a.app.Stop(context.Background()); err != nil {
		a.Logger.Error("failed to stop app", zap.Error(err))
	}

	a.cancel()
}

func (a *App) PrintJSON(title string, v interface{}) error {
	output, err := jsonutil.FormatJSON(v)
	if err != nil {
		return xerrors.Errorf("failed to format %v: %w", title, err)
	}

	fmt.Println(color.MagentaString("[%v] ", a.Config.Env()) + color.CyanString(title))
	fmt.Println(output)
	return nil
}

func (a *App) PrintStatus(report *api.ComplianceReport) {
	var paint func(format string, a ...interface{}) string
	switch report.StatusColor {
	case api.StatusColorRed:
		paint = color.RedString
	case api.StatusColorYellow:
		paint = color.YellowString
	default:
		paint = color.GreenString
	}

	generatedAt := timeutil.TimeToISO8601(time.Unix(report.GeneratedAt, 0))
	fmt.Printf("%v %v (risk score %v)\n", color.CyanString("compliance status:"), paint(string(report.ComplianceStatus)), report.RiskScore)
	fmt.Printf("%v %v\n", color.CyanString("generated at:"), generatedAt)
	for _, recommendation := range report.Recommendations {
		fmt.Printf("  - %v\n", recommendation)
	}
}
