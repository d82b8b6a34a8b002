package agent

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/SCR01/chaintrace/internal/api"
	"github.com/SCR01/chaintrace/internal/utils/timeutil"
)

const (
	MinBlockNumber = 15_000_000
	MaxBlockNumber = 16_000_000

	MinGasUsed = 21_000
	MaxGasUsed = 500_000

	// Timestamps are sampled within the last day, at least an hour ago.
	MinAgeSeconds = 3_600
	MaxAgeSeconds = 86_400
)

func (a *mockAgent) CollectBlockchainData(ctx context.Context, transactionHash string, chain string) (*api.BlockchainData, error) {
	if err := timeutil.Sleep(ctx, a.delays.BlockchainData); err != nil {
		return nil, xerrors.Errorf("blockchain data collection interrupted: %w", err)
	}

	data := &api.BlockchainData{
		TransactionHash: transactionHash,
		Chain:           chain,
		BlockNumber:     int64(a.source.IntRange(MinBlockNumber, MaxBlockNumber)),
		Timestamp:       a.clock.Now().Unix() - int64(a.source.IntRange(MinAgeSeconds, MaxAgeSeconds)),
		GasUsed:         int64(a.source.IntRange(MinGasUsed, MaxGasUsed)),
		Status:          api.StatusSuccess,
	}

	a.logger.Debug(
		"collected blockchain data",
		zap.String("transaction_hash", transactionHash),
		zap.Int64("block_number", data.BlockNumber),
	)
	return data, nil
}
