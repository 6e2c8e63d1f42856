// Package server assembles the flavor shop HTTP handler and runs it.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/Vamsi7889/Ice-cream/internal/config"
	"github.com/Vamsi7889/Ice-cream/internal/events"
	"github.com/Vamsi7889/Ice-cream/internal/httpapi"
	"github.com/Vamsi7889/Ice-cream/internal/middleware"
	"github.com/Vamsi7889/Ice-cream/internal/rpc"
	"github.com/Vamsi7889/Ice-cream/internal/service"
	"github.com/Vamsi7889/Ice-cream/internal/storage"
	"github.com/Vamsi7889/Ice-cream/internal/storage/sqlite"
	"github.com/Vamsi7889/Ice-cream/internal/telemetry"
)

// ServiceName identifies the server in traces.
const ServiceName = "flavorshop"

// Options tunes NewHandler.
type Options struct {
	// CORSOrigin is the allowed origin; empty means "*".
	CORSOrigin string
	// Registry receives the HTTP metrics and backs /metrics. A fresh
	// registry is created when nil.
	Registry *prometheus.Registry
	// StaticDir, when set, is served for every path no API route matches.
	StaticDir string
}

// NewHandler wires services, the REST and Connect surfaces, health and
// metrics endpoints, and the middleware stack.
func NewHandler(store storage.Store, publisher events.Publisher, opts Options) http.Handler {
	flavors := service.NewFlavorService(store, publisher)
	cart := service.NewCartService(store, publisher)

	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	mux := http.NewServeMux()

	// REST routes
	httpapi.NewHandler(flavors, cart).RegisterRoutes(mux)

	// Connect services
	rpc.NewServer(flavors, cart).RegisterHandlers(mux,
		connect.WithInterceptors(middleware.LoggingInterceptor()),
	)

	mux.HandleFunc("GET /healthz", healthHandler(store))
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	if opts.StaticDir != "" {
		slog.Info("Serving static files", "path", opts.StaticDir)
		mux.Handle("/", staticHandler(opts.StaticDir))
	}

	metrics := middleware.NewMetrics(reg)
	handler := middleware.Chain(metrics.Middleware(mux),
		middleware.RequestID,
		middleware.Logging,
		middleware.Recover,
		middleware.CORS(opts.CORSOrigin),
	)

	// h2c serves HTTP/2 without TLS for Connect clients
	return h2c.NewHandler(handler, &http2.Server{})
}

// healthHandler reports whether the store is reachable.
func healthHandler(store storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status, code := "ok", http.StatusOK
		if err := store.Ping(ctx); err != nil {
			slog.Error("Health check failed", "error", err)
			status, code = "unavailable", http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": status})
	}
}

// staticHandler serves files from dir, falling back to index.html for
// unknown paths.
func staticHandler(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.Clean("/"+r.URL.Path))
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}
		files.ServeHTTP(w, r)
	})
}

// Run opens the store and optional integrations, then serves until ctx is done.
func Run(ctx context.Context, cfg config.Server) error {
	shutdownTracing, err := telemetry.Setup(ctx, ServiceName, cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			slog.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	var publisher events.Publisher = events.Nop{}
	if cfg.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPQueue)
		if err != nil {
			return fmt.Errorf("failed to initialize event publisher: %w", err)
		}
		defer closeQuietly("event publisher", amqpPublisher)
		publisher = amqpPublisher
		slog.Info("Event publishing enabled", "queue", cfg.AMQPQueue)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           NewHandler(store, publisher, Options{CORSOrigin: cfg.CORSOrigin, StaticDir: cfg.StaticDir}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func closeQuietly(name string, c io.Closer) {
	if err := c.Close(); err != nil {
		slog.Warn("Close failed", "resource", name, "error", err)
	}
}
