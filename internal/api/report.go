package api

type (
	ComplianceStatus string

	StatusColor string

	ComplianceReportRequest struct {
		TraceResults *TraceResult `json:"trace_results"`
	}

	ComplianceReport struct {
		ComplianceStatus ComplianceStatus `json:"compliance_status"`
		StatusColor      StatusColor      `json:"status_color"`
		RiskScore        int              `json:"risk_score"`
		Recommendations  []string         `json:"recommendations"`
		RegulatoryFlags  []string         `json:"regulatory_flags"`
		GeneratedAt      int64            `json:"generated_at"`
	}
)

const (
	ComplianceStatusLowRisk               ComplianceStatus = "LOW RISK"
	ComplianceStatusMonitor               ComplianceStatus = "MONITOR"
	ComplianceStatusRequiresInvestigation ComplianceStatus = "REQUIRES INVESTIGATION"

	StatusColorGreen  StatusColor = "green"
	StatusColorYellow StatusColor = "yellow"
	StatusColorRed    StatusColor = "red"
)
