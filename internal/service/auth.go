// Package service contains the business logic layer: it sits between the
// HTTP handlers and the repositories and knows nothing about either HTTP or
// SQL.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hireorbit/backend/internal/apperror"
	"github.com/hireorbit/backend/internal/auth"
	"github.com/hireorbit/backend/internal/model"
	"github.com/hireorbit/backend/internal/repository"
)

// AuthService handles registration and login.
type AuthService struct {
	users     repository.UserRepository
	tokens    *auth.TokenService
	passwords *auth.PasswordService
	logger    *slog.Logger
}

// NewAuthService creates an AuthService with all dependencies injected.
func NewAuthService(
	users repository.UserRepository,
	tokens *auth.TokenService,
	passwords *auth.PasswordService,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		passwords: passwords,
		logger:    logger,
	}
}

// Register creates a new account from a username, email, and plaintext
// password. The plaintext is hashed here and never persisted.
//
// The FindUserByEmail check is a fast path for a friendly error; under
// concurrent registrations with the same email both requests can pass it,
// and the database's unique constraint is what actually decides the race.
// Both paths surface the same conflict error.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	existing, err := s.users.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperror.ErrNotFound) {
		return nil, fmt.Errorf("service/auth: checking existing email: %w", err)
	}
	if existing != nil {
		return nil, apperror.Conflict("Email already registered")
	}

	digest, err := s.passwords.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("service/auth: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: digest,
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("service/auth: creating user: %w", err)
	}

	s.logger.Info("user registered",
		slog.String("userID", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// Login verifies the credentials and issues a bearer token whose subject is
// the account's email.
//
// An unknown email and a wrong password return the same InvalidCredentials
// error, so a caller cannot probe which emails have accounts through this
// endpoint.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return "", apperror.InvalidCredentials()
		}
		return "", fmt.Errorf("service/auth: looking up user: %w", err)
	}

	if err := s.passwords.Verify(user.PasswordHash, password); err != nil {
		return "", apperror.InvalidCredentials()
	}

	token, err := s.tokens.Generate(user.Email)
	if err != nil {
		return "", fmt.Errorf("service/auth: generating token for user %s: %w", user.ID, err)
	}

	s.logger.Info("user logged in", slog.String("userID", user.ID))

	return token, nil
}

// GetUserByID returns the account for the given internal ID.
func (s *AuthService) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, fmt.Errorf("service/auth: user ID must not be empty")
	}

	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service/auth: fetching user %s: %w", id, err)
	}

	return user, nil
}
