// Package dashboard serves the status/statistics views and the JSON API
// used by the host UI collaborator.
package dashboard

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/afferafatima/Firewall-Simulator/internal/audit"
	"github.com/afferafatima/Firewall-Simulator/internal/blocklist"
	"github.com/afferafatima/Firewall-Simulator/internal/guard"
)

// Server is the web dashboard HTTP server.
type Server struct {
	mux       *http.ServeMux
	logger    *slog.Logger
	log       audit.Log
	blocklist *blocklist.Store
	guard     *guard.Guard
	topSites  int
	interval  time.Duration
	addr      string
}

// Options configures a dashboard server.
type Options struct {
	Addr     string
	TopSites int
	Interval time.Duration
}

// NewServer creates a new dashboard server.
func NewServer(opts Options, log audit.Log, store *blocklist.Store, g *guard.Guard, logger *slog.Logger) *Server {
	s := &Server{
		mux:       http.NewServeMux(),
		logger:    logger,
		log:       log,
		blocklist: store,
		guard:     g,
		topSites:  opts.TopSites,
		interval:  opts.Interval,
		addr:      opts.Addr,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /", s.handleOverview)
	s.mux.HandleFunc("GET /attempts", s.handleAttempts)
	s.mux.HandleFunc("GET /attempts/stream", s.handleAttemptStream)
	s.mux.HandleFunc("GET /blocklist", s.handleBlocklistPage)
	s.mux.HandleFunc("POST /blocklist", s.handleBlocklistAddForm)
	s.mux.HandleFunc("POST /blocklist/remove", s.handleBlocklistRemoveForm)
	s.mux.HandleFunc("GET /api/v1/stats", s.handleAPIStats)
	s.mux.HandleFunc("GET /api/v1/top", s.handleAPITop)
	s.mux.HandleFunc("GET /api/v1/histogram", s.handleAPIHistogram)
	s.mux.HandleFunc("GET /api/v1/blocklist", s.handleAPIBlocklist)
	s.mux.HandleFunc("POST /api/v1/blocklist", s.handleAPIBlocklistAdd)
	s.mux.HandleFunc("DELETE /api/v1/blocklist/{pattern}", s.handleAPIBlocklistRemove)
	s.mux.HandleFunc("POST /api/v1/check", s.handleAPICheck)
}

// ListenAndServe starts the dashboard HTTP server.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.mux,
	}

	go func() {
		<-ctx.Done()
		srv.Close()
	}()

	s.logger.Info("starting dashboard", "addr", s.addr)
	return srv.ListenAndServe()
}

// Handler returns the HTTP handler for embedding in other servers.
func (s *Server) Handler() http.Handler {
	return s.mux
}
