package main

import (
	"go.uber.org/fx"

	"github.com/SCR01/chaintrace/internal/agent"
	"github.com/SCR01/chaintrace/internal/compliance"
	"github.com/SCR01/chaintrace/internal/config"
	"github.com/SCR01/chaintrace/internal/controller"
	"github.com/SCR01/chaintrace/internal/server"
	"github.com/SCR01/chaintrace/internal/trace"
	"github.com/SCR01/chaintrace/internal/utils"
)

func main() {
	app := newApp()

	// Run blocks until SIGINT or SIGTERM and then stops the app gracefully.
	app.Run()
}

func newApp(opts ...fx.Option) *fx.App {
	opts = append(
		opts,
		agent.Module,
		compliance.Module,
		config.Module,
		controller.Module,
		server.Module,
		trace.Module,
		utils.Module,
		fx.Invoke(func(*server.Server) {}),
	)

	return fx.New(opts...)
}
