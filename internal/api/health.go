package api

type (
	HealthStatus struct {
		Status    string `json:"status"`
		Service   string `json:"service"`
		Timestamp int64  `json:"timestamp"`
	}

	ErrorResponse struct {
		Error string `json:"error"`
	}
)

const (
	StatusHealthy = "healthy"
)
