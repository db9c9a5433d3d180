// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/metrics"
	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/repository"
)

// Auth service errors.
var (
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrPasswordRequired = errors.New("password is required")
	ErrEmailExists      = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two cases are deliberately indistinguishable to prevent user enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// emailRegex is a pragmatic format check, not a full RFC 5322 parser.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthService handles registration and login.
type AuthService struct {
	repo    *repository.Repository
	tokens  *auth.TokenManager
	metrics metrics.Recorder
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.Repository, tokens *auth.TokenManager, recorder metrics.Recorder) *AuthService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AuthService{
		repo:    repo,
		tokens:  tokens,
		metrics: recorder,
	}
}

// Credentials is the input for both Register and Login.
type Credentials struct {
	Email    string
	Password string
}

// AuthResult is the outcome of a successful registration or login.
type AuthResult struct {
	AccessToken string
	UserID      string
}

// validate checks the credential shape before any store access.
func (c Credentials) validate() error {
	if !emailRegex.MatchString(c.Email) {
		return ErrInvalidEmail
	}
	if c.Password == "" {
		return ErrPasswordRequired
	}
	return nil
}

// Register creates a new user and issues a token keyed on the email.
// The preliminary existence check is an optimization only; the unique
// index on users.email decides duplicates under concurrency.
func (s *AuthService) Register(ctx context.Context, creds Credentials) (*AuthResult, error) {
	if err := creds.validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetUserByEmail(ctx, creds.Email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := auth.HashPassword(creds.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Email:        creds.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.metrics.IncUserRegistered()

	return &AuthResult{
		AccessToken: token,
		UserID:      user.ID,
	}, nil
}

// Login verifies credentials and issues a token.
// Unknown email and wrong password both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, creds Credentials) (*AuthResult, error) {
	if err := creds.validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetUserByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.metrics.IncLoginFailure()
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	match, err := auth.VerifyPassword(creds.Password, user.PasswordHash)
	if err != nil || !match {
		s.metrics.IncLoginFailure()
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.metrics.IncLoginSuccess()

	return &AuthResult{
		AccessToken: token,
		UserID:      user.ID,
	}, nil
}
