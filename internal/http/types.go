package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tienvillalobos/maxxavelada-backend/internal/config"
	"github.com/tienvillalobos/maxxavelada-backend/internal/match"
	"github.com/tienvillalobos/maxxavelada-backend/internal/metrics"
	"github.com/tienvillalobos/maxxavelada-backend/internal/notifier"
	"github.com/tienvillalobos/maxxavelada-backend/internal/stats"
	"github.com/unrolled/render"
)

type Server struct {
	Store          match.MatchStore
	Stats          *stats.Engine
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *chi.Mux
	render         *render.Render
}
