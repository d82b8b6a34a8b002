package trace

import (
	"context"

	"github.com/uber-go/tally/v4"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/SCR01/chaintrace/internal/agent"
	"github.com/SCR01/chaintrace/internal/api"
	"github.com/SCR01/chaintrace/internal/utils/fxparams"
	"github.com/SCR01/chaintrace/internal/utils/instrument"
	"github.com/SCR01/chaintrace/internal/utils/log"
	"github.com/SCR01/chaintrace/internal/utils/timeutil"
)

type (
	// Pipeline runs the agents in order and assembles their output into a TraceResult.
	Pipeline interface {
		Trace(ctx context.Context, transactionHash string) (*api.TraceResult, error)
	}

	PipelineParams struct {
		fx.In
		fxparams.Params
		Agent agent.Agent
		Clock timeutil.Clock
	}

	pipeline struct {
		logger  *zap.Logger
		agent   agent.Agent
		clock   timeutil.Clock
		chain   string
		metrics *metrics
	}

	metrics struct {
		instrumentBlockchainData       instrument.Call
		instrumentPathReconstruction   instrument.Call
		instrumentObfuscationDetection instrument.Call
		instrumentRiskAssessment       instrument.Call
	}
)

const (
	scopeName  = "trace"
	loggerMsg  = "trace.stage"
	spanName   = "trace.stage"
	stageField = "stage"

	StageBlockchainData       = "blockchain_data"
	StagePathReconstruction   = "path_reconstruction"
	StageObfuscationDetection = "obfuscation_detection"
	StageRiskAssessment       = "risk_assessment"
)

func NewPipeline(params PipelineParams) Pipeline {
	logger := log.WithPackage(params.Logger)
	return &pipeline{
		logger:  logger,
		agent:   params.Agent,
		clock:   params.Clock,
		chain:   params.Config.Agent.Chain,
		metrics: newMetrics(params.Metrics, logger),
	}
}

func (p *pipeline) Trace(ctx context.Context, transactionHash string) (*api.TraceResult, error) {
	fields := instrument.WithLoggerFields(zap.String("transaction_hash", transactionHash))

	var data *api.BlockchainData
	if err := p.metrics.instrumentBlockchainData.Instrument(ctx, func(ctx context.Context) error {
		var err error
		data, err = p.agent.CollectBlockchainData(ctx, transactionHash, p.chain)
		return err
	}, fields); err != nil {
		return nil, xerrors.Errorf("failed to collect blockchain data: %w", err)
	}

	var path []*api.PathStep
	if err := p.metrics.instrumentPathReconstruction.Instrument(ctx, func(ctx context.Context) error {
		var err error
		path, err = p.agent.ReconstructPath(ctx, transactionHash)
		return err
	}, fields); err != nil {
		return nil, xerrors.Errorf("failed to reconstruct path: %w", err)
	}

	var activities []string
	if err := p.metrics.instrumentObfuscationDetection.Instrument(ctx, func(ctx context.Context) error {
		var err error
		activities, err = p.agent.DetectObfuscation(ctx, path)
		return err
	}, fields); err != nil {
		return nil, xerrors.Errorf("failed to detect obfuscation: %w", err)
	}

	var riskScore int
	if err := p.metrics.instrumentRiskAssessment.Instrument(ctx, func(ctx context.Context) error {
		var err error
		riskScore, err = p.agent.AssessRisk(ctx, path, activities)
		return err
	}, fields); err != nil {
		return nil, xerrors.Errorf("failed to assess risk: %w", err)
	}

	if path == nil {
		path = []*api.PathStep{}
	}
	if activities == nil {
		activities = []string{}
	}

	result := &api.TraceResult{
		TransactionHash:      transactionHash,
		RiskScore:            riskScore,
		TotalHops:            len(path),
		Chains:               api.DistinctChains(path),
		SuspiciousActivities: activities,
		Path:                 path,
		BlockchainData:       data,
		AnalysisTimestamp:    p.clock.Now().Unix(),
	}

	p.logger.Info(
		"trace completed",
		zap.String("transaction_hash", transactionHash),
		zap.Int("risk_score", result.RiskScore),
		zap.Int("total_hops", result.TotalHops),
		zap.Strings("chains", result.Chains),
	)
	return result, nil
}

func newMetrics(scope tally.Scope, logger *zap.Logger) *metrics {
	scope = scope.SubScope(scopeName)
	return &metrics{
		instrumentBlockchainData:       newInstrument(StageBlockchainData, scope, logger),
		instrumentPathReconstruction:   newInstrument(StagePathReconstruction, scope, logger),
		instrumentObfuscationDetection: newInstrument(StageObfuscationDetection, scope, logger),
		instrumentRiskAssessment:       newInstrument(StageRiskAssessment, scope, logger),
	}
}

func newInstrument(stage string, scope tally.Scope, logger *zap.Logger) instrument.Call {
	return instrument.NewCall(
		scope.Tagged(map[string]string{stageField: stage}),
		"stage",
		instrument.WithLogger(logger.With(zap.String(stageField, stage)), loggerMsg),
		instrument.WithTracer(spanName, map[string]string{stageField: stage}),
		instrument.WithFilter(isCanceled),
	)
}

// isCanceled treats a client disconnect as a client error rather than a stage failure.
func isCanceled(err error) bool {
	return xerrors.Is(err, context.Canceled)
}
