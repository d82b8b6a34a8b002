package agent

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/SCR01/chaintrace/internal/api"
	"github.com/SCR01/chaintrace/internal/utils/timeutil"
)

const (
	ActivityMixerUsage          = "Mixer Usage"
	ActivityHighFrequency       = "High-Frequency Transfers"
	ActivityCrossChainBridge    = "Cross-Chain Bridge"
	ActivityPrivacyCoinExchange = "Privacy Coin Exchange"
	ActivityTumblerService      = "Tumbler Service"
	ActivityLayer2Obfuscation   = "Layer 2 Obfuscation"

	MinActivities = 1
	MaxActivities = 3
)

var (
	Activities = []string{
		ActivityMixerUsage,
		ActivityHighFrequency,
		ActivityCrossChainBridge,
		ActivityPrivacyCoinExchange,
		ActivityTumblerService,
		ActivityLayer2Obfuscation,
	}
)

func (a *mockAgent) DetectObfuscation(ctx context.Context, path []*api.PathStep) ([]string, error) {
	if err := timeutil.Sleep(ctx, a.delays.ObfuscationDetection); err != nil {
		return nil, xerrors.Errorf("obfuscation detection interrupted: %w", err)
	}

	detected := a.source.Sample(Activities, a.source.IntRange(MinActivities, MaxActivities))

	a.logger.Debug(
		"detected obfuscation",
		zap.Int("hops", len(path)),
		zap.Strings("activities", detected),
	)
	return detected, nil
}
