package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/kirat/internal/auth"
	"github.com/mmynk/kirat/internal/middleware"
	"github.com/mmynk/kirat/internal/storage"
	"github.com/mmynk/kirat/pkg/api"
)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	persons       storage.DataLoader
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, persons storage.DataLoader, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		persons:       persons,
		logger:        logger,
	}
}

// Register creates a new account.
func (s *AuthService) Register(ctx context.Context, req *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error) {
	s.logger.Info("Register request", "email", req.Msg.Email)

	// Validate input
	if req.Msg.Email == "" || req.Msg.DisplayName == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	person, err := s.authenticator.Register(ctx, req.Msg.Email, req.Msg.DisplayName, req.Msg.Password)
	if err != nil {
		s.logger.Error("Registration failed", "email", req.Msg.Email, "error", err)
		if errors.Is(err, auth.ErrEmailExists) {
			return nil, connect.NewError(connect.CodeAlreadyExists, err)
		}
		if errors.Is(err, auth.ErrWeakPassword) {
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	token, err := s.jwtManager.Generate(person)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", person.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Person registered successfully", "user_id", person.ID, "email", person.Email)
	return connect.NewResponse(&api.RegisterResponse{
		Person: toAPIPerson(person),
		Token:  token,
	}), nil
}

// Login authenticates a person and returns a JWT token.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	s.logger.Info("Login request", "email", req.Msg.Email)

	if req.Msg.Email == "" || req.Msg.Password == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	person, err := s.authenticator.Authenticate(ctx, req.Msg.Email, req.Msg.Password)
	if err != nil {
		s.logger.Warn("Login failed", "email", req.Msg.Email, "error", err)
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}

	token, err := s.jwtManager.Generate(person)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", person.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Person logged in successfully", "user_id", person.ID, "email", person.Email)
	return connect.NewResponse(&api.LoginResponse{
		Person: toAPIPerson(person),
		Token:  token,
	}), nil
}

// GetCurrentUser returns the authenticated person with their holdings.
func (s *AuthService) GetCurrentUser(ctx context.Context, req *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error) {
	// Set by the auth interceptor
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	s.logger.Info("GetCurrentUser request", "user_id", userID)

	person, err := s.persons.GetPerson(ctx, userID)
	if err != nil {
		return nil, toConnectError("GetCurrentUser", err)
	}

	return connect.NewResponse(&api.GetCurrentUserResponse{
		Person: toAPIPerson(person),
	}), nil
}
