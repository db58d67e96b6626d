// Package main is the entry point for the goal tracker API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pkordes/goal-tracker/internal/bootstrap"
	"github.com/pkordes/goal-tracker/internal/config"
	"github.com/pkordes/goal-tracker/internal/handler"
	"github.com/pkordes/goal-tracker/internal/metrics"
	"github.com/pkordes/goal-tracker/internal/repo"
	"github.com/pkordes/goal-tracker/internal/service"
)

func main() {
	// --- Config -----------------------------------------------------------
	// A .env file is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		log.Fatalf("configuration error: %v", err)
	}

	// --- Logger -----------------------------------------------------------
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := &app{
		cfg: cfg,
		log: logger,
		dial: func(ctx context.Context) (repo.Conn, error) {
			return repo.Connect(ctx, cfg.StoreURI)
		},
		listen: func(addr string) (net.Listener, error) {
			return net.Listen("tcp", addr)
		},
	}
	if err := a.run(ctx); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

// app holds what run needs. dial and listen are fields so tests can
// substitute a fake store and an ephemeral port.
type app struct {
	cfg    config.Config
	log    *zap.Logger
	dial   bootstrap.DialFunc
	listen func(addr string) (net.Listener, error)
}

// run connects to the store, serves until ctx is cancelled, then drains.
func (a *app) run(ctx context.Context) error {
	cfg, logger := a.cfg, a.log

	// --- Store ------------------------------------------------------------
	// The listener is not opened until the store answers. Cancelling ctx
	// while still connecting aborts startup without ever listening.
	seq := bootstrap.New(bootstrap.Policy{
		Interval:       cfg.RetryInterval,
		MaxAttempts:    cfg.RetryMaxAttempts,
		AttemptTimeout: cfg.ConnectTimeout,
	}, a.dial, logger.Named("bootstrap"))

	conn, err := seq.Connect(ctx)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := conn.Close(closeCtx); err != nil {
			logger.Warn("closing store", zap.Error(err))
		}
	}()

	// --- Router -----------------------------------------------------------
	goals := service.NewGoalService(conn.Goals())
	srv := handler.NewServer(goals, conn, logger.Named("handler"))
	router := handler.NewRouter(srv, handler.RouterOptions{
		Logger:       logger.Named("http"),
		CORSOrigins:  cfg.CORSOrigins,
		MaxBodyBytes: cfg.MaxBodyBytes,
		Metrics:      metrics.New(),
	})

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ln, err := a.listen(httpSrv.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.Stringer("addr", ln.Addr()), zap.Stringer("state", seq.State()))
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	// Graceful shutdown: give in-flight requests up to 15 seconds to complete
	// before forcefully closing.
	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// newLogger builds a JSON production logger at the given level.
// An unparseable level falls back to info.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stdout"}
	return zcfg.Build()
}
