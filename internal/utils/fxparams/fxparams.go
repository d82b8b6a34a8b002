package fxparams

import (
	"github.com/uber-go/tally/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/SCR01/chaintrace/internal/config"
)

type (
	// Params bundles the dependencies shared by every component.
	Params struct {
		fx.In
		Config  *config.Config
		Logger  *zap.Logger
		Metrics tally.Scope
	}
)
