package handlers

import (
	"context"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, email, password string) (string, error)
	Authenticate(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*model.Account, error)
	RequireSession(ctx context.Context, token string) (int64, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	SubmitOrder(ctx context.Context, accountID int64, sub model.OrderSubmission) (*model.Order, error)
	Orders(ctx context.Context, accountID int64) ([]model.Order, error)
}

// Pinger reports backing store health.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// DeskFacade aggregates the full set of operations used across handlers.
type DeskFacade interface {
	AuthFacade
	OrderFacade
}
