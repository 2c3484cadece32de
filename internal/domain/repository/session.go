package repository

import (
	"context"
	"time"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// SessionRepository describes durable storage of session tokens.
type SessionRepository interface {
	Create(ctx context.Context, session model.Session) error
	Get(ctx context.Context, token string) (*model.Session, error)
	// Delete is idempotent; removing an unknown token is not an error.
	Delete(ctx context.Context, token string) error
	// DeleteExpired removes up to limit sessions expired before the given
	// moment and returns how many rows were reclaimed.
	DeleteExpired(ctx context.Context, before time.Time, limit int) (int64, error)
}
