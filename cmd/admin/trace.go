package main

import (
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/SCR01/chaintrace/internal/api"
	"github.com/SCR01/chaintrace/internal/compliance"
	"github.com/SCR01/chaintrace/internal/trace"
	"github.com/SCR01/chaintrace/internal/utils/randutil"
)

var (
	traceFlags struct {
		hash   string
		random bool
	}

	traceCommand = NewCommand("trace", func() error {
		var deps struct {
			fx.In
			Pipeline trace.Pipeline
			Source   randutil.Source
		}

		app, err := NewApp(fx.Populate(&deps))
		if err != nil {
			return xerrors.Errorf("failed to create command: %w", err)
		}
		defer app.Close()

		result, err := runTrace(app, deps.Pipeline, deps.Source)
		if err != nil {
			return err
		}

		return app.PrintJSON("trace result", result)
	})

	reportCommand = NewCommand("report", func() error {
		var deps struct {
			fx.In
			Pipeline  trace.Pipeline
			Generator compliance.Generator
			Source    randutil.Source
		}

		app, err := NewApp(fx.Populate(&deps))
		if err != nil {
			return xerrors.Errorf("failed to create command: %w", err)
		}
		defer app.Close()

		result, err := runTrace(app, deps.Pipeline, deps.Source)
		if err != nil {
			return err
		}

		report := deps.Generator.Generate(app.Context(), result)
		if err := app.PrintJSON("compliance report", report); err != nil {
			return err
		}

		app.PrintStatus(report)
		return nil
	})
)

func init() {
	for _, command := range []*Command{traceCommand, reportCommand} {
		command.StringVar(&traceFlags.hash, "hash", "", false)
		command.BoolVar(&traceFlags.random, "random", false, false)
		rootCommand.AddCommand(command)
	}
}

func runTrace(app *App, pipeline trace.Pipeline, source randutil.Source) (*api.TraceResult, error) {
	hash := traceFlags.hash
	if traceFlags.random {
		hash = randomTransactionHash(source)
	}
	if hash == "" {
		return nil, xerrors.New("either --hash or --random is required")
	}

	app.Logger.Info("tracing transaction", zap.String("transaction_hash", hash))
	result, err := pipeline.Trace(app.Context(), hash)
	if err != nil {
		return nil, xerrors.Errorf("failed to trace transaction %v: %w", hash, err)
	}

	return result, nil
}

// randomTransactionHash draws from the agents' source so that --seed reproduces the hash too.
func randomTransactionHash(source randutil.Source) string {
	var hash common.Hash
	for i := range hash {
		hash[i] = byte(source.IntRange(0, 255))
	}
	return hash.Hex()
}
