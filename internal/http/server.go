package http

import (
	"net/http"

	"github.com/veskov/courtside/internal/config"
	"github.com/veskov/courtside/internal/metrics"
	"github.com/veskov/courtside/internal/notifier"
	"github.com/veskov/courtside/internal/team"
)

func NewServer(teamSvc team.TeamService, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier) *Server {
	server := &Server{
		Team:           teamSvc,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/digest", Chain(s.DailyDigestHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/start", Chain(s.StartCommandHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/upcoming", Chain(s.UpcomingCommandHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/results", Chain(s.ResultsCommandHandler(), paramsMiddleware))
	s.Router.Handle("/slack/command/roster", Chain(s.RosterCommandHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
