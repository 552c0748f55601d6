package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/kirat/internal/models"
	"github.com/mmynk/kirat/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrEmailExists        = errors.New("email already registered")
)

// PersonStorage defines the persistence operations the authenticator needs.
// This allows the authenticator to be independent of the storage implementation.
type PersonStorage interface {
	CreatePerson(ctx context.Context, person *models.Person) error
	GetPersonByEmail(ctx context.Context, email string) (*models.Person, error)
}

// PasswordAuthenticator implements password-based authentication using bcrypt.
type PasswordAuthenticator struct {
	storage PersonStorage
}

// NewPasswordAuthenticator creates a new password-based authenticator.
func NewPasswordAuthenticator(storage PersonStorage) *PasswordAuthenticator {
	return &PasswordAuthenticator{
		storage: storage,
	}
}

// ValidateCredential checks if the password meets minimum requirements.
func (a *PasswordAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < 8 {
		return ErrWeakPassword
	}
	return nil
}

// Register creates a new person with a hashed password.
func (a *PasswordAuthenticator) Register(ctx context.Context, email, displayName, credential string) (*models.Person, error) {
	if err := a.ValidateCredential(credential); err != nil {
		return nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	_, err := a.storage.GetPersonByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailExists
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	person := models.NewPerson(email, displayName, string(hashedPassword))
	if err := a.storage.CreatePerson(ctx, person); err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	return person, nil
}

// Authenticate verifies the email and password, returning the person if valid.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, email, credential string) (*models.Person, error) {
	person, err := a.storage.GetPersonByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(person.PasswordHash), []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return person, nil
}
