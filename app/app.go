package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/chartsmith-labs/chartsmith/app/imageserver"
	"github.com/chartsmith-labs/chartsmith/app/mcp"
	"github.com/chartsmith-labs/chartsmith/app/metrics"
	chartservice "github.com/chartsmith-labs/chartsmith/app/modules/chart/application"
	chartstorage "github.com/chartsmith-labs/chartsmith/app/modules/chart/infrastructure/storage"
	"github.com/chartsmith-labs/chartsmith/config"
)

// App wires the chart service, the MCP endpoint, the image file server
// and the optional metrics endpoint together.
type App struct {
	Cfg      *config.Config
	logger   *slog.Logger
	recorder *metrics.Recorder
	servers  []*http.Server
}

// NewApp initializes the application with the necessary services and configuration.
func NewApp(ctx context.Context, logger *slog.Logger, cfg *config.Config) (*App, error) {
	store, err := chartstorage.New(cfg.Images.Dir, cfg.Images.BaseURL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize image store: %w", err)
	}

	recorder := metrics.NewRecorder()
	charts := chartservice.NewService(logger, store, recorder)
	mcpServer := mcp.NewServer(logger, charts)

	a := &App{Cfg: cfg, logger: logger, recorder: recorder}

	a.servers = append(a.servers, &http.Server{
		Addr:    cfg.MCP.Address,
		Handler: a.mcpRouter(mcpServer),
	})

	images := imageserver.New(store.Dir(), logger)
	a.servers = append(a.servers, &http.Server{
		Addr:    cfg.Images.Address,
		Handler: images.Router(),
	})

	if cfg.Observability.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", recorder.Handler())
		a.servers = append(a.servers, &http.Server{
			Addr:    cfg.Observability.MetricsAddress,
			Handler: mux,
		})
	}

	return a, nil
}

func (a *App) mcpRouter(server *mcp.Server) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Mcp-Session-Id"},
		ExposedHeaders: []string{"Mcp-Session-Id"},
	}))
	r.Handle(a.Cfg.MCP.Path, server)
	return r
}

// Run starts all servers and blocks until the context is cancelled or a
// server fails. On cancellation the servers get a bounded graceful
// shutdown.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, len(a.servers))
	for _, srv := range a.servers {
		srv := srv
		a.logger.Info("server listening", "addr", srv.Addr)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("server %s: %w", srv.Addr, err)
			}
		}()
	}

	select {
	case <-ctx.Done():
	case err := <-errCh:
		a.shutdown()
		return err
	}

	a.logger.Info("shutting down")
	return a.shutdown()
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var firstErr error
	for _, srv := range a.servers {
		if err := srv.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
