package service

import (
	"context"
	"net/http"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/kirat/pkg/api"
	"github.com/mmynk/kirat/pkg/api/apiconnect"
)

func TestAuthService(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	personID, token := server.register(t, "lina@example.com", "Lina")
	if personID == "" || token == "" {
		t.Fatal("expected person ID and token")
	}

	t.Run("duplicate email", func(t *testing.T) {
		_, err := server.auth.Register(ctx, connect.NewRequest(&api.RegisterRequest{
			Email: "LINA@example.com", DisplayName: "Lina", Password: "password123",
		}))
		requireCode(t, err, connect.CodeAlreadyExists)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := server.auth.Register(ctx, connect.NewRequest(&api.RegisterRequest{
			Email: "weak@example.com", DisplayName: "Weak", Password: "short",
		}))
		requireCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("login", func(t *testing.T) {
		resp, err := server.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{
			Email: "lina@example.com", Password: "password123",
		}))
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if resp.Msg.Person.ID != personID {
			t.Errorf("Login person = %q, want %q", resp.Msg.Person.ID, personID)
		}

		_, err = server.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{
			Email: "lina@example.com", Password: "wrong-password",
		}))
		requireCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("current user", func(t *testing.T) {
		client := apiconnect.NewAuthServiceClient(http.DefaultClient, server.url,
			connect.WithInterceptors(bearer(token)))
		resp, err := client.GetCurrentUser(ctx, connect.NewRequest(&api.GetCurrentUserRequest{}))
		if err != nil {
			t.Fatalf("GetCurrentUser failed: %v", err)
		}
		if resp.Msg.Person.DisplayName != "Lina" {
			t.Errorf("DisplayName = %q, want Lina", resp.Msg.Person.DisplayName)
		}

		_, err = server.auth.GetCurrentUser(ctx, connect.NewRequest(&api.GetCurrentUserRequest{}))
		requireCode(t, err, connect.CodeUnauthenticated)
	})
}
