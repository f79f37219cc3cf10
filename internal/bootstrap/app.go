package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/yucatanweather/app/internal/infra/config"
)

// In-flight /api/predict calls get this long to finish after a signal.
const drainTimeout = 10 * time.Second

// App serves the weather API until its context ends.
type App struct {
	server       *http.Server
	placesSource string
	logger       *slog.Logger
}

// NewApp is the Wire provider for the runnable API.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server) *App {
	return &App{
		server:       server,
		placesSource: cfg.Places.Source,
		logger:       logger.With("component", "bootstrap"),
	}
}

// Run blocks until ctx is cancelled, then drains open requests. A listener
// that fails to start is reported immediately.
func (a *App) Run(ctx context.Context) error {
	served := make(chan error, 1)
	go func() { served <- a.serve() }()

	select {
	case err := <-served:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("draining weather api", "timeout", drainTimeout)
	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), drainTimeout)
	defer cancel()
	if err := a.server.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("drain weather api: %w", err)
	}
	return <-served
}

func (a *App) serve() error {
	a.logger.Info("weather api listening", "address", a.server.Addr, "places_source", a.placesSource)
	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("listen on %s: %w", a.server.Addr, err)
}
