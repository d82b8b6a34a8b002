package agent

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/SCR01/chaintrace/internal/api"
	"github.com/SCR01/chaintrace/internal/config"
	"github.com/SCR01/chaintrace/internal/utils/fxparams"
	"github.com/SCR01/chaintrace/internal/utils/log"
	"github.com/SCR01/chaintrace/internal/utils/randutil"
	"github.com/SCR01/chaintrace/internal/utils/timeutil"
)

//go:generate mockgen -destination=mocks/mocks.go -package=agentmocks github.com/SCR01/chaintrace/internal/agent Agent

type (
	// Agent simulates the analysis stages of a transaction trace.
	// Every stage waits for its configured delay and returns random data.
	Agent interface {
		CollectBlockchainData(ctx context.Context, transactionHash string, chain string) (*api.BlockchainData, error)
		ReconstructPath(ctx context.Context, transactionHash string) ([]*api.PathStep, error)
		DetectObfuscation(ctx context.Context, path []*api.PathStep) ([]string, error)
		AssessRisk(ctx context.Context, path []*api.PathStep, activities []string) (int, error)
	}

	AgentParams struct {
		fx.In
		fxparams.Params
		Source randutil.Source
		Clock  timeutil.Clock
	}

	mockAgent struct {
		logger *zap.Logger
		source randutil.Source
		clock  timeutil.Clock
		delays config.DelayConfig
	}
)

var _ Agent = (*mockAgent)(nil)

func New(params AgentParams) Agent {
	return &mockAgent{
		logger: log.WithPackage(params.Logger),
		source: params.Source,
		clock:  params.Clock,
		delays: params.Config.Agent.Delays,
	}
}
