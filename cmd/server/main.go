package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/kirat/internal/auth"
	"github.com/mmynk/kirat/internal/config"
	"github.com/mmynk/kirat/internal/metrics"
	"github.com/mmynk/kirat/internal/middleware"
	"github.com/mmynk/kirat/internal/service"
	"github.com/mmynk/kirat/internal/storage/sqlite"
	"github.com/mmynk/kirat/pkg/api/apiconnect"
	"github.com/mmynk/kirat/pkg/logging"
)

func main() {
	cfg := config.Load()
	logging.SetupWithLevel(cfg.SlogLevel())

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.UsesDefaultSecret() {
		slog.Warn("JWT_SECRET not set, using development secret")
	}

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	var m *metrics.Metrics
	var outer []connect.Interceptor
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.NewMetrics(reg)
		outer = append(outer, middleware.MetricsInterceptor(m))
	}

	// Metrics wrap auth so rejected calls are counted; logging runs inside
	// auth so it sees the caller.
	protected := connect.WithInterceptors(append(slices.Clip(outer),
		middleware.RequireAuth(jwtManager), middleware.LoggingInterceptor())...)
	public := connect.WithInterceptors(append(slices.Clip(outer),
		middleware.OptionalAuth(jwtManager), middleware.LoggingInterceptor())...)

	mux := http.NewServeMux()

	// Register Connect services
	mux.Handle(apiconnect.NewReportServiceHandler(service.NewReportService(store, m), protected))
	mux.Handle(apiconnect.NewLedgerServiceHandler(service.NewLedgerService(store), protected))
	mux.Handle(apiconnect.NewAuthServiceHandler(
		service.NewAuthService(auth.NewPasswordAuthenticator(store), jwtManager, store, slog.Default()),
		public,
	))

	if m != nil {
		mux.Handle("/metrics", m.Handler())
	}
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	handler := h2c.NewHandler(loggingMiddleware(corsMiddleware(mux)), &http2.Server{})

	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Connect server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
