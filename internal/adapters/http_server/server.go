package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"largebnb_seeder/internal/adapters/observability"
)

// Server is the ops surface a seeding run exposes while it works: a health
// probe and the Prometheus scrape endpoint. It carries no domain routes.
type Server struct {
	mux *chi.Mux
	srv *http.Server
	log zerolog.Logger
}

func New(addr string, reg *prometheus.Registry, log zerolog.Logger) *Server {
	m := chi.NewRouter()
	m.Use(chimw.RealIP)
	m.Use(chimw.RequestID)
	m.Use(chimw.Recoverer)
	m.Use(Logger(log))

	m.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	m.Handle("/metrics", observability.MetricsHandler(reg))

	return &Server{
		mux: m,
		srv: &http.Server{Addr: addr, Handler: m, ReadHeaderTimeout: 5 * time.Second},
		log: log,
	}
}

func (s *Server) Mux() http.Handler { return s.mux }

// Start serves in the background; the caller owns the returned error only
// through Shutdown. A closed listener is a normal exit, not a failure.
func (s *Server) Start() {
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error().Err(err).Msg("ops server stopped")
		}
	}()
	s.log.Info().Str("addr", s.srv.Addr).Msg("ops server listening")
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
