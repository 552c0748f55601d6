package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/kirat/internal/auth"
	"github.com/mmynk/kirat/internal/metrics"
	"github.com/mmynk/kirat/internal/models"
)

type emptyMessage struct{}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"Bearer ", "", false},
		{"bearer abc", "", false},
		{"Basic dXNlcjpwYXNz", "", false},
		{"Bearer a b", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := bearerToken(tt.header)
		if got != tt.want || ok != tt.ok {
			t.Errorf("bearerToken(%q) = (%q, %v), want (%q, %v)", tt.header, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("middleware-test-secret", time.Hour)
	token, err := jwtManager.Generate(&models.Person{ID: "person-1", Email: "p1@example.com"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var gotUser string
	next := connect.UnaryFunc(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		gotUser = GetUserID(ctx)
		return nil, nil
	})
	handler := RequireAuth(jwtManager)(next)

	tests := []struct {
		name     string
		header   string
		wantUser string
		wantCode connect.Code
	}{
		{name: "valid token", header: "Bearer " + token, wantUser: "person-1"},
		{name: "missing header", wantCode: connect.CodeUnauthenticated},
		{name: "malformed header", header: "Token " + token, wantCode: connect.CodeUnauthenticated},
		{name: "forged token", header: "Bearer " + token + "x", wantCode: connect.CodeUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUser = ""
			req := connect.NewRequest(&emptyMessage{})
			if tt.header != "" {
				req.Header().Set("Authorization", tt.header)
			}

			_, err := handler(context.Background(), req)
			if tt.wantCode != 0 {
				if connect.CodeOf(err) != tt.wantCode {
					t.Fatalf("expected %v, got %v", tt.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gotUser != tt.wantUser {
				t.Errorf("user = %q, want %q", gotUser, tt.wantUser)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("middleware-test-secret", time.Hour)

	called := false
	next := connect.UnaryFunc(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		called = true
		if user := GetUserID(ctx); user != "" {
			t.Errorf("expected anonymous call, got user %q", user)
		}
		return nil, nil
	})

	req := connect.NewRequest(&emptyMessage{})
	req.Header().Set("Authorization", "Bearer not-a-token")
	if _, err := OptionalAuth(jwtManager)(next)(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("next handler was not called")
	}
}

func TestMetricsInterceptor(t *testing.T) {
	reg := prometheus.NewRegistry()
	interceptor := MetricsInterceptor(metrics.NewMetrics(reg))

	ok := connect.UnaryFunc(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, nil
	})
	notFound := connect.UnaryFunc(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("missing"))
	})

	req := connect.NewRequest(&emptyMessage{})
	interceptor(ok)(context.Background(), req)
	interceptor(notFound)(context.Background(), req)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	codes := map[string]float64{}
	for _, f := range families {
		if f.GetName() != "kirat_rpc_requests_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "code" {
					codes[label.GetValue()] += metric.GetCounter().GetValue()
				}
			}
		}
	}

	if codes["ok"] != 1 || codes["not_found"] != 1 {
		t.Errorf("unexpected counts by code: %v", codes)
	}
}
