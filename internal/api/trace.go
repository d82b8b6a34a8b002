package api

type (
	RiskLevel string

	TraceRequest struct {
		TransactionHash string `json:"transaction_hash" validate:"required"`
	}

	BlockchainData struct {
		TransactionHash string `json:"transaction_hash"`
		Chain           string `json:"chain"`
		BlockNumber     int64  `json:"block_number"`
		Timestamp       int64  `json:"timestamp"`
		GasUsed         int64  `json:"gas_used"`
		Status          string `json:"status"`
	}

	// PathStep is one hop of a reconstructed transaction path.
	PathStep struct {
		Address   string    `json:"address"`
		Amount    string    `json:"amount"`
		Chain     string    `json:"chain"`
		Risk      RiskLevel `json:"risk"`
		Timestamp int64     `json:"timestamp"`
	}

	TraceResult struct {
		TransactionHash      string          `json:"transaction_hash"`
		RiskScore            int             `json:"risk_score"`
		TotalHops            int             `json:"total_hops"`
		Chains               []string        `json:"chains"`
		SuspiciousActivities []string        `json:"suspicious_activities"`
		Path                 []*PathStep     `json:"path"`
		BlockchainData       *BlockchainData `json:"blockchain_data"`
		AnalysisTimestamp    int64           `json:"analysis_timestamp"`
	}
)

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"

	StatusSuccess = "success"

	MinRiskScore = 0
	MaxRiskScore = 100
)

var (
	RiskLevels = []RiskLevel{RiskLow, RiskMedium, RiskHigh}
)

// DistinctChains returns the chains of the path without duplicates, in first-seen order.
func DistinctChains(path []*PathStep) []string {
	seen := make(map[string]struct{}, len(path))
	chains := make([]string, 0, len(path))
	for _, step := range path {
		if step == nil {
			continue
		}
		if _, ok := seen[step.Chain]; ok {
			continue
		}
		seen[step.Chain] = struct{}{}
		chains = append(chains, step.Chain)
	}
	return chains
}
