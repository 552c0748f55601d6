package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/kirat/internal/auth"
	"github.com/mmynk/kirat/internal/metrics"
	"github.com/mmynk/kirat/internal/middleware"
	"github.com/mmynk/kirat/internal/storage/sqlite"
	"github.com/mmynk/kirat/pkg/api"
	"github.com/mmynk/kirat/pkg/api/apiconnect"
)

// testServer bundles the clients of a running test server.
type testServer struct {
	url     string
	auth    apiconnect.AuthServiceClient
	metrics *metrics.Metrics
}

// setupTestServer starts all services on a temp SQLite database, wired the
// same way as the real server.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "kirat-service-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m := metrics.NewMetrics(prometheus.NewRegistry())
	jwtManager := auth.NewJWTManager("test-secret-key-for-service-tests", time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	protected := connect.WithInterceptors(
		middleware.MetricsInterceptor(m),
		middleware.RequireAuth(jwtManager),
		middleware.LoggingInterceptor(),
	)
	public := connect.WithInterceptors(
		middleware.MetricsInterceptor(m),
		middleware.OptionalAuth(jwtManager),
	)

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewReportServiceHandler(NewReportService(store, m), protected))
	mux.Handle(apiconnect.NewLedgerServiceHandler(NewLedgerService(store), protected))
	mux.Handle(apiconnect.NewAuthServiceHandler(
		NewAuthService(auth.NewPasswordAuthenticator(store), jwtManager, store, logger),
		public,
	))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &testServer{
		url:     server.URL,
		auth:    apiconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
		metrics: m,
	}
}

// bearer returns a client interceptor that sends token on every call.
func bearer(token string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			req.Header().Set("Authorization", "Bearer "+token)
			return next(ctx, req)
		}
	}
}

// register creates an account and returns its person ID and token.
func (s *testServer) register(t *testing.T, email, name string) (string, string) {
	t.Helper()

	resp, err := s.auth.Register(context.Background(), connect.NewRequest(&api.RegisterRequest{
		Email:       email,
		DisplayName: name,
		Password:    "password123",
	}))
	if err != nil {
		t.Fatalf("Register(%s) failed: %v", email, err)
	}
	return resp.Msg.Person.ID, resp.Msg.Token
}

func (s *testServer) ledger(token string) apiconnect.LedgerServiceClient {
	return apiconnect.NewLedgerServiceClient(http.DefaultClient, s.url,
		connect.WithInterceptors(bearer(token)))
}

func (s *testServer) reports(token string) apiconnect.ReportServiceClient {
	return apiconnect.NewReportServiceClient(http.DefaultClient, s.url,
		connect.WithInterceptors(bearer(token)))
}

// requireCode fails the test unless err is a Connect error with code.
func requireCode(t *testing.T, err error, code connect.Code) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %v error, got nil", code)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect error, got %T: %v", err, err)
	}
	if connectErr.Code() != code {
		t.Fatalf("expected code %v, got %v (%s)", code, connectErr.Code(), connectErr.Message())
	}
}
