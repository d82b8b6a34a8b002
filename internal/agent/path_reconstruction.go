package agent

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/SCR01/chaintrace/internal/api"
	"github.com/SCR01/chaintrace/internal/utils/timeutil"
)

const (
	MinHops = 3
	MaxHops = 8

	minAddressPart = 1_000
	maxAddressPart = 9_999

	MinAmount    = 50
	MaxAmount    = 150
	amountSymbol = "ETH"

	addressFormat = "0x%04x...%04x"
)

var (
	Chains = []string{
		"Ethereum",
		"Binance Smart Chain",
		"Polygon",
		"Arbitrum",
	}

	riskLevels = []string{
		string(api.RiskLow),
		string(api.RiskMedium),
		string(api.RiskHigh),
	}
)

func (a *mockAgent) ReconstructPath(ctx context.Context, transactionHash string) ([]*api.PathStep, error) {
	if err := timeutil.Sleep(ctx, a.delays.PathReconstruction); err != nil {
		return nil, xerrors.Errorf("path reconstruction interrupted: %w", err)
	}

	now := a.clock.Now().Unix()
	hops := a.source.IntRange(MinHops, MaxHops)
	path := make([]*api.PathStep, hops)
	for i := 0; i < hops; i++ {
		path[i] = &api.PathStep{
			Address: fmt.Sprintf(
				addressFormat,
				a.source.IntRange(minAddressPart, maxAddressPart),
				a.source.IntRange(minAddressPart, maxAddressPart),
			),
			Amount:    fmt.Sprintf("%d %v", a.source.IntRange(MinAmount, MaxAmount), amountSymbol),
			Chain:     a.source.Choice(Chains),
			Risk:      api.RiskLevel(a.source.Choice(riskLevels)),
			Timestamp: now - int64(a.source.IntRange(MinAgeSeconds, MaxAgeSeconds)*i),
		}
	}

	a.logger.Debug(
		"reconstructed path",
		zap.String("transaction_hash", transactionHash),
		zap.Int("hops", hops),
	)
	return path, nil
}
