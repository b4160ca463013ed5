// Package gateway initializes and runs the HTTP gateway: it connects to the
// authentication service and serves the public routes until shutdown.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/authgate/internal/gateway/client"
	"github.com/dmitrijs2005/authgate/internal/gateway/config"
	"github.com/dmitrijs2005/authgate/internal/gateway/httpapi"
	"github.com/dmitrijs2005/authgate/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	client *client.GRPCClient
	server *http.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.New(os.Stdout, c.LogFormat, c.LogLevel).With("service", "gateway")

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	ac, err := client.NewGRPCClient(c.AuthServiceAddr(), c.RPCTimeout, client.NewMetrics(reg))
	if err != nil {
		return nil, fmt.Errorf("auth client init error: %w", err)
	}

	handler := httpapi.NewRouter(httpapi.RouterConfig{
		Client:     ac,
		Logger:     logger,
		Metrics:    httpapi.NewMetrics(reg),
		Gatherer:   reg,
		RateLimit:  c.RateLimit,
		RateWindow: c.RateWindow,
	})

	srv := &http.Server{
		Addr:              c.ListenAddr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &App{config: c, logger: logger, client: ac, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.server.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "error during shutdown", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", app.server.Addr,
		"auth_service", app.config.AuthServiceAddr())

	if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is canceled or a termination signal is received.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.client.Close(); err != nil {
		app.logger.Error(ctx, "error closing auth client", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
}
