// Package httpserver exposes the interval store over HTTP+JSON.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/akyairhashvil/lighttrack/internal/config"
	"github.com/akyairhashvil/lighttrack/internal/database"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// Server holds the gin engine and its dependencies.
type Server struct {
	gin          *gin.Engine
	repo         database.Repository
	l            *zap.Logger
	addr         string
	recentWindow int
	now          func() time.Time
}

// Config is the dependency bag passed to New.
type Config struct {
	Addr             string
	Mode             string
	RecentWindowDays int
	Logger           *zap.Logger
	// Now resolves "today" for requests without an explicit date.
	Now func() time.Time
}

// New builds a server with every route registered.
func New(repo database.Repository, cfg Config) (*Server, error) {
	if repo == nil {
		return nil, errors.New("repository is required")
	}
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	srv := &Server{
		gin:          gin.New(),
		repo:         repo,
		l:            cfg.Logger,
		addr:         cfg.Addr,
		recentWindow: cfg.RecentWindowDays,
		now:          cfg.Now,
	}
	if srv.l == nil {
		srv.l = zap.NewNop()
	}
	if srv.addr == "" {
		srv.addr = config.DefaultHTTPAddr
	}
	if srv.recentWindow <= 0 {
		srv.recentWindow = config.DefaultRecentWindow
	}
	if srv.now == nil {
		srv.now = time.Now
	}
	srv.mapHandlers()
	return srv, nil
}

// Handler returns the routed engine.
func (srv *Server) Handler() http.Handler {
	return srv.gin
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (srv *Server) Run(ctx context.Context) error {
	hs := &http.Server{
		Addr:              srv.addr,
		Handler:           srv.gin,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		srv.l.Info("http server listening", zap.String("addr", srv.addr))
		errCh <- hs.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	srv.l.Info("http server shutting down")
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
