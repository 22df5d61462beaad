package app

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Gupta1998/Tarik-Pe-Tarik/internal/clock"
	"github.com/Gupta1998/Tarik-Pe-Tarik/internal/domain"
)

type SessionRepository interface {
	CreateSession(ctx context.Context, session domain.Session) error
	GetSession(ctx context.Context, id string) (domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// SessionService issues and validates the opaque tokens that mark a
// browser as logged in. Tokens carry no data beyond their ID; state
// lives server-side.
type SessionService struct {
	repo  SessionRepository
	clock clock.Clock
	ttl   time.Duration
}

const defaultSessionTTL = 24 * time.Hour

func NewSessionService(repo SessionRepository, clk clock.Clock, opts ...SessionServiceOption) *SessionService {
	svc := &SessionService{
		repo:  repo,
		clock: clk,
		ttl:   defaultSessionTTL,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type SessionServiceOption func(*SessionService)

// WithSessionTTL overrides the default session lifetime.
func WithSessionTTL(d time.Duration) SessionServiceOption {
	return func(s *SessionService) {
		if d > 0 {
			s.ttl = d
		}
	}
}

// TTL returns the configured session lifetime.
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Start issues a new session for the given user.
func (s *SessionService) Start(ctx context.Context, userID string) (domain.Session, error) {
	now := s.clock.Now()
	session := domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

// Validate returns the session for the given token if it exists and has
// not expired. An expired session is deleted on sight.
func (s *SessionService) Validate(ctx context.Context, token string) (domain.Session, error) {
	if token == "" {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	session, err := s.repo.GetSession(ctx, token)
	if err != nil {
		return domain.Session{}, err
	}
	if !session.Active(s.clock.Now()) {
		_ = s.repo.DeleteSession(ctx, token)
		return domain.Session{}, domain.ErrSessionExpired
	}
	return session, nil
}

// Destroy invalidates the session for the given token. An unknown token
// is not an error; logout must succeed regardless.
func (s *SessionService) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.repo.DeleteSession(ctx, token); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return err
	}
	return nil
}

// PurgeExpired removes sessions past their expiry and reports how many
// were deleted. Driven by a background ticker in the server process.
func (s *SessionService) PurgeExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpiredSessions(ctx, s.clock.Now())
}
