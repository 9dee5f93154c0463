package http

import (
	"net/http"

	"github.com/veskov/courtside/internal/config"
	"github.com/veskov/courtside/internal/metrics"
	"github.com/veskov/courtside/internal/notifier"
	"github.com/veskov/courtside/internal/team"
)

type Server struct {
	Team           team.TeamService
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *http.ServeMux
}
