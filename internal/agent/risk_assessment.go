package agent

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/SCR01/chaintrace/internal/api"
	"github.com/SCR01/chaintrace/internal/utils/timeutil"
)

const (
	BaseRiskScore = 30

	mixerKeyword         = "Mixer"
	highFrequencyKeyword = "High-Frequency"

	mixerWeight         = 25
	highFrequencyWeight = 15
	defaultWeight       = 10

	// Each hop of the path adds to the score.
	hopWeight = 2
)

func (a *mockAgent) AssessRisk(ctx context.Context, path []*api.PathStep, activities []string) (int, error) {
	if err := timeutil.Sleep(ctx, a.delays.RiskAssessment); err != nil {
		return 0, xerrors.Errorf("risk assessment interrupted: %w", err)
	}

	score := ScoreRisk(len(path), activities)
	a.logger.Debug("assessed risk", zap.Int("risk_score", score))
	return score, nil
}

// ScoreRisk is the base score plus the weight of every activity plus a weight per hop, clamped to [0, 100].
func ScoreRisk(hops int, activities []string) int {
	score := BaseRiskScore
	for _, activity := range activities {
		score += ActivityWeight(activity)
	}
	score += hops * hopWeight

	if score > api.MaxRiskScore {
		return api.MaxRiskScore
	}
	if score < api.MinRiskScore {
		return api.MinRiskScore
	}
	return score
}

func ActivityWeight(activity string) int {
	switch {
	case strings.Contains(activity, mixerKeyword):
		return mixerWeight
	case strings.Contains(activity, highFrequencyKeyword):
		return highFrequencyWeight
	default:
		return defaultWeight
	}
}
