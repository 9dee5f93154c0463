package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncCommandReceived(command string)
	IncUpstreamRequest(provider string)
	IncUpstreamFailure(provider string)
	IncCacheHit(kind string)
	IncCacheMiss(kind string)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
