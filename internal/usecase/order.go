package usecase

import (
	"context"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

// OrderUseCase encapsulates the submission workflow and order retrieval.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Submit validates the payload and persists the resulting draft. Nothing
// is persisted when any rule fails; validation is the sole gate.
func (u *OrderUseCase) Submit(ctx context.Context, accountID int64, sub model.OrderSubmission) (*model.Order, error) {
	draft, err := ValidateSubmission(sub)
	if err != nil {
		return nil, err
	}
	return u.orders.Create(ctx, accountID, *draft)
}

// ListByAccount returns the account's orders, most recent first.
func (u *OrderUseCase) ListByAccount(ctx context.Context, accountID int64) ([]model.Order, error) {
	return u.orders.ListByAccount(ctx, accountID)
}
