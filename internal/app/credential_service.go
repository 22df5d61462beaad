package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Gupta1998/Tarik-Pe-Tarik/internal/clock"
	"github.com/Gupta1998/Tarik-Pe-Tarik/internal/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user domain.User) error
	FindUserByUsername(ctx context.Context, username string) (domain.User, error)
}

// CredentialService verifies admin credentials against bcrypt hashes
// and bootstraps the initial admin account.
type CredentialService struct {
	repo  UserRepository
	clock clock.Clock

	bootstrapUsername string
	bootstrapPassword string
	bcryptCost        int
}

const (
	defaultBootstrapUsername = "admin"
	defaultBootstrapPassword = "pass"
)

func NewCredentialService(repo UserRepository, clk clock.Clock, opts ...CredentialServiceOption) *CredentialService {
	svc := &CredentialService{
		repo:              repo,
		clock:             clk,
		bootstrapUsername: defaultBootstrapUsername,
		bootstrapPassword: defaultBootstrapPassword,
		bcryptCost:        bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type CredentialServiceOption func(*CredentialService)

// WithBootstrapAccount overrides the username/password used by EnsureAdmin.
func WithBootstrapAccount(username, password string) CredentialServiceOption {
	return func(s *CredentialService) {
		if username != "" {
			s.bootstrapUsername = username
		}
		if password != "" {
			s.bootstrapPassword = password
		}
	}
}

// WithBcryptCost overrides the hashing cost (tests use bcrypt.MinCost).
func WithBcryptCost(cost int) CredentialServiceOption {
	return func(s *CredentialService) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.bcryptCost = cost
		}
	}
}

// UsingDefaultPassword reports whether the bootstrap account would be
// created with the well-known default password.
func (s *CredentialService) UsingDefaultPassword() bool {
	return s.bootstrapPassword == defaultBootstrapPassword
}

// EnsureAdmin creates the bootstrap admin account if it does not exist
// yet. Calling it repeatedly never creates a second account.
func (s *CredentialService) EnsureAdmin(ctx context.Context) error {
	_, err := s.repo.FindUserByUsername(ctx, s.bootstrapUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.bootstrapPassword), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash bootstrap password: %w", err)
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Username:     s.bootstrapUsername,
		PasswordHash: string(hash),
		CreatedAt:    s.clock.Now(),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		// Another instance may have won the race; the account exists either way.
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return nil
		}
		return err
	}
	return nil
}

// Verify checks username/password and returns the matching user.
// Both an unknown username and a wrong password yield
// ErrInvalidCredentials, and a bcrypt compare runs in both paths so the
// response does not leak whether the account exists.
func (s *CredentialService) Verify(ctx context.Context, username, password string) (domain.User, error) {
	user, err := s.repo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return domain.User{}, domain.ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	return user, nil
}

// bcrypt hash of an unguessable filler value, compared against when the
// username is unknown to keep verification timing uniform.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
