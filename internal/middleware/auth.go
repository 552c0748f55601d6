package middleware

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/kirat/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// UserIDKey is the context key for the authenticated person ID.
const UserIDKey contextKey = "user_id"

// GetUserID extracts the person ID from the context.
// Returns empty string if not found.
func GetUserID(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

// bearerToken returns the token of an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" || strings.ContainsRune(token, ' ') {
		return "", false
	}
	return token, true
}

// RequireAuth returns an interceptor that rejects calls without a valid JWT
// and stores the person ID of valid ones in the request context.
func RequireAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			procedure := req.Spec().Procedure

			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				slog.Warn("Unauthenticated call", "procedure", procedure, "reason", "missing token")
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}
			token, ok := bearerToken(authHeader)
			if !ok {
				slog.Warn("Unauthenticated call", "procedure", procedure, "reason", "malformed header")
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := jwtManager.Validate(token)
			if err != nil {
				slog.Warn("Unauthenticated call", "procedure", procedure, "error", err)
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			return next(context.WithValue(ctx, UserIDKey, claims.UserID), req)
		}
	}
}

// OptionalAuth returns an interceptor that records the caller when a valid
// JWT is present and lets anonymous calls through. Handlers that need a
// caller check GetUserID themselves.
func OptionalAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if token, ok := bearerToken(req.Header().Get("Authorization")); ok {
				if claims, err := jwtManager.Validate(token); err == nil {
					ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
				}
			}
			return next(ctx, req)
		}
	}
}
