package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
	pkgAuth "github.com/polkiloo/orderdesk/internal/pkg/auth"
)

// Manager owns the session lifecycle: opaque tokens with an absolute
// expiry, resolved lazily and destroyed explicitly on logout.
type Manager struct {
	sessions repository.SessionRepository
	ttl      time.Duration
	now      func() time.Time
}

// NewManager builds Manager with the given repository and session lifetime.
func NewManager(sessions repository.SessionRepository, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{sessions: sessions, ttl: ttl, now: time.Now}
}

// Create issues a fresh token for the account and stores the mapping.
// The expiry is fixed at creation and never slides.
func (m *Manager) Create(ctx context.Context, accountID int64) (string, error) {
	token, err := pkgAuth.NewToken()
	if err != nil {
		return "", err
	}

	createdAt := m.now()
	err = m.sessions.Create(ctx, model.Session{
		Token:     token,
		AccountID: accountID,
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(m.ttl),
	})
	if err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return token, nil
}

// Resolve returns the owning account id iff the token exists and has not
// expired. Unknown and expired tokens both resolve to ErrNotAuthenticated;
// callers treat that as "not authenticated", not as a fault.
func (m *Manager) Resolve(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, domainErrors.ErrNotAuthenticated
	}

	session, err := m.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return 0, domainErrors.ErrNotAuthenticated
		}
		return 0, err
	}

	if !session.Active(m.now()) {
		return 0, domainErrors.ErrNotAuthenticated
	}

	return session.AccountID, nil
}

// Destroy removes the session. Destroying an unknown or already destroyed
// token succeeds silently.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := m.sessions.Delete(ctx, token); err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		return err
	}
	return nil
}

// TTL reports the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
