package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/fairway/internal/adapters/http/api"
	"github.com/okian/fairway/internal/adapters/http/site"
	"github.com/okian/fairway/internal/adapters/http/swagger"
	app "github.com/okian/fairway/internal/app"
	"github.com/okian/fairway/pkg/logger"
	"github.com/okian/fairway/pkg/metrics"
)

// HTTP server timeout constants. Standings requests make two sequential
// upstream calls, so writes get more room than reads.
const (
	readTimeout               = 10 * time.Second
	writeTimeout              = 30 * time.Second
	idleTimeout               = 60 * time.Second
	readHeaderTimeout         = 5 * time.Second
	shutdownTimeout           = 30 * time.Second
	systemMetricsInterval     = 10 * time.Second
	nanosecondsPerMillisecond = 1e6
)

func newServeCommand(env *runtimeEnv) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the standings web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				env.cfg.Addr = addr
			}
			return serve(cmd.Context(), env)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides GOLF_ADDR)")
	return cmd
}

// newHandler builds the full route table.
func newHandler(ctx context.Context, svc *app.Service, log logger.Logger) http.Handler {
	mux := http.NewServeMux()
	swagger.Register(ctx, mux)
	api.NewServer(svc, svc, log.Named("api")).Register(ctx, mux)
	site.Register(ctx, mux, svc)
	return api.RequestIDMiddleware(mux)
}

func serve(ctx context.Context, env *runtimeEnv) error {
	log := env.log
	if env.cfg.SheetID == "" {
		log.Warn(ctx, "GOLF_SHEET_ID not set; /api/standings will return errors")
	}

	svc := env.newService()

	go startSystemMetricsUpdater(ctx)

	srv := &http.Server{
		Addr:              env.cfg.Addr,
		Handler:           newHandler(ctx, svc, log),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	ln, err := net.Listen("tcp", env.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", env.cfg.Addr, err)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
		return err
	}

	log.Info(ctx, "server stopped")
	return nil
}

// startSystemMetricsUpdater refreshes process gauges until ctx is done.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	updateSystemMetrics()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())

	if m.NumGC > 0 {
		avgPauseMs := float64(m.PauseTotalNs) / float64(m.NumGC) / nanosecondsPerMillisecond
		metrics.RecordSystemGCPauseTime(avgPauseMs)
	}
}
