package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		CommandsReceived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "courtside_commands_received_total",
			Help: "The total number of bot commands received, by command.",
		}, []string{"command"}),
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "courtside_upstream_requests_total",
			Help: "The total number of requests issued to upstream providers.",
		}, []string{"provider"}),
		UpstreamFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "courtside_upstream_failures_total",
			Help: "The total number of upstream requests that failed.",
		}, []string{"provider"}),
		CacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "courtside_cache_hits_total",
			Help: "The total number of fresh cache hits, by query kind.",
		}, []string{"kind"}),
		CacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "courtside_cache_misses_total",
			Help: "The total number of cache misses or stale entries, by query kind.",
		}, []string{"kind"}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_slack_notifications_sent_total",
			Help: "The total number of Slack messages successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_slack_notifications_failed_total",
			Help: "The total number of Slack messages that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "courtside_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.CommandsReceived,
		s.UpstreamRequests,
		s.UpstreamFailures,
		s.CacheHits,
		s.CacheMisses,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncCommandReceived(command string) {
	s.CommandsReceived.WithLabelValues(command).Inc()
}

func (s *Service) IncUpstreamRequest(provider string) {
	s.UpstreamRequests.WithLabelValues(provider).Inc()
}

func (s *Service) IncUpstreamFailure(provider string) {
	s.UpstreamFailures.WithLabelValues(provider).Inc()
}

func (s *Service) IncCacheHit(kind string) {
	s.CacheHits.WithLabelValues(kind).Inc()
}

func (s *Service) IncCacheMiss(kind string) {
	s.CacheMisses.WithLabelValues(kind).Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
