// Package server wires the customer REST API: storage backend, tracing,
// HTTP transport and graceful shutdown.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/clientdesk/internal/logging"
	"github.com/dmitrijs2005/clientdesk/internal/server/config"
	"github.com/dmitrijs2005/clientdesk/internal/server/customers"
	"github.com/dmitrijs2005/clientdesk/internal/server/httpapi"
	"github.com/dmitrijs2005/clientdesk/internal/server/shared/db"
	"github.com/dmitrijs2005/clientdesk/internal/server/telemetry"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	traceOut io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	logger, err := logging.New(os.Stdout, c.LogLevel, "json")
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}
	return &App{config: c, logger: logger, traceOut: os.Stderr}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves the API until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	tp, shutdownTracing, err := telemetry.Setup(app.config.TraceEnabled, app.traceOut)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			app.logger.Error(ctx, "tracer shutdown failed", "error", err)
		}
	}()

	rm, err := db.New(ctx, app.config.DatabaseDSN, tp)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer func() {
		if err := rm.Close(); err != nil {
			app.logger.Error(ctx, "db close failed", "error", err)
		}
	}()

	if rm.Conn() == nil {
		app.logger.Warn(ctx, "DATABASE_DSN not set, using in-memory storage")
	}

	svc := customers.NewService(rm.Customers())
	handler := httpapi.Chain(
		httpapi.NewHandler(svc, app.logger).Routes(),
		httpapi.WithRequestLog(app.logger),
		httpapi.WithCORS(app.config.AllowedOrigins),
		httpapi.WithTimeout(app.config.RequestTimeout),
	)

	s := httpapi.NewServer(app.config.EndpointAddrHTTP, handler, app.logger, app.config.ShutdownTimeout)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "http server failed", "error", err)
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}
