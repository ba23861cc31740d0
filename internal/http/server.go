package http

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/tienvillalobos/maxxavelada-backend/internal/config"
	"github.com/tienvillalobos/maxxavelada-backend/internal/match"
	"github.com/tienvillalobos/maxxavelada-backend/internal/metrics"
	"github.com/tienvillalobos/maxxavelada-backend/internal/notifier"
	"github.com/tienvillalobos/maxxavelada-backend/internal/stats"
	"github.com/unrolled/render"
)

//go:embed templates
var templates embed.FS

func NewServer(store match.MatchStore, statsEngine *stats.Engine, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier) *Server {
	server := &Server{
		Store:          store,
		Stats:          statsEngine,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         chi.NewRouter(),
		render:         newRender(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	s.Router.Use(requestID)
	s.Router.Use(middleware.RealIP)
	s.Router.Use(requestLogger)
	s.Router.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	s.Router.Use(middleware.Timeout(10 * time.Second))

	// The JSON API is consumed from browsers on other origins.
	s.Router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Get("/health", s.HealthCheckHandler())

	s.Router.Route("/api", func(r chi.Router) {
		r.Post("/matches", s.CreateMatchHandler())
		r.Get("/matches", s.ListMatchesHandler())
		r.Get("/leaderboard", s.LeaderboardHandler())
		r.Get("/players/{name}/stats", s.PlayerStatsHandler())
		r.Get("/stats/summary", s.SummaryHandler())
	})

	s.Router.Get("/", s.HomePageHandler())
	s.Router.Get("/matches", s.MatchesPageHandler())
	s.Router.Get("/leaderboard", s.LeaderboardPageHandler())
	s.Router.Get("/matches/new", s.NewMatchPageHandler())
	s.Router.Post("/matches/new", s.CreateMatchFormHandler())
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func newRender() *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"datetime": datetimeFormatter,
				"pct":      pctFormatter,
			},
		},
	})
}

func datetimeFormatter(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

func pctFormatter(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "%"
}
