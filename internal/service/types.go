package service

// Health status values reported by the health endpoint.
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusDegraded  = "degraded"
	HealthStatusUnhealthy = "unhealthy"
)

const (
	DependencyStatusConnected    = "connected"
	DependencyStatusDisconnected = "disconnected"
)

type HealthStatus struct {
	Status               string `json:"status"`
	DatabaseStatus       string `json:"database_status"`
	RedisStatus          string `json:"redis_status"`
	CircuitBreakerStatus string `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  string `json:"circuit_breaker_state,omitempty"`
}
