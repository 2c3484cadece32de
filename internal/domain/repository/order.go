package repository

import (
	"context"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// OrderRepository describes append-only persistence of orders.
type OrderRepository interface {
	// Create assigns a fresh identifier and creation timestamp. The draft
	// is assumed to be validated already.
	Create(ctx context.Context, accountID int64, draft model.OrderDraft) (*model.Order, error)
	// ListByAccount returns the account's orders newest first; an account
	// without orders yields an empty slice, never an error.
	ListByAccount(ctx context.Context, accountID int64) ([]model.Order, error)
}
