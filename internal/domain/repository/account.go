package repository

import (
	"context"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// AccountRepository describes persistence operations for accounts.
// Accounts are immutable once created, so no update or delete is exposed.
type AccountRepository interface {
	// Create inserts the account and must detect username/email conflicts
	// atomically at the storage layer.
	Create(ctx context.Context, username, email, passwordHash string) (*model.Account, error)
	GetByUsername(ctx context.Context, username string) (*model.Account, error)
	GetByID(ctx context.Context, id int64) (*model.Account, error)
}
