package test

import (
	"context"
	"time"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn       func(context.Context, string, string, string) (string, error)
	AuthenticateFn   func(context.Context, string, string) (string, error)
	LogoutFn         func(context.Context, string) error
	CurrentUserFn    func(context.Context, string) (*model.Account, error)
	RequireSessionFn func(context.Context, string) (int64, error)
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, username, email, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, username, email, password)
	}
	return "token", nil
}

// Authenticate returns token for successful login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, username, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, username, password)
	}
	return "token", nil
}

// Logout delegates to override or succeeds silently.
func (s AuthFacadeStub) Logout(ctx context.Context, token string) error {
	if s.LogoutFn != nil {
		return s.LogoutFn(ctx, token)
	}
	return nil
}

// CurrentUser returns a fixed account unless overridden.
func (s AuthFacadeStub) CurrentUser(ctx context.Context, token string) (*model.Account, error) {
	if s.CurrentUserFn != nil {
		return s.CurrentUserFn(ctx, token)
	}
	return &model.Account{ID: 1, Username: "alice", Email: "alice@example.com", CreatedAt: time.Unix(0, 0)}, nil
}

// RequireSession resolves tokens to a fixed account id unless overridden.
func (s AuthFacadeStub) RequireSession(ctx context.Context, token string) (int64, error) {
	if s.RequireSessionFn != nil {
		return s.RequireSessionFn(ctx, token)
	}
	return 1, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	SubmitFn func(context.Context, int64, model.OrderSubmission) (*model.Order, error)
	OrdersFn func(context.Context, int64) ([]model.Order, error)
}

// SubmitOrder delegates to provided function or returns a default order.
func (s OrderFacadeStub) SubmitOrder(ctx context.Context, accountID int64, sub model.OrderSubmission) (*model.Order, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, accountID, sub)
	}
	return &model.Order{ID: 1, AccountID: accountID, Description: sub.Description, Category: sub.Category, Phone: sub.Phone}, nil
}

// Orders returns predefined orders for given account.
func (s OrderFacadeStub) Orders(ctx context.Context, accountID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, accountID)
	}
	return []model.Order{{ID: 1, AccountID: accountID, Description: "Fix roof", Category: "oprava", Phone: "+420777123456", CreatedAt: time.Unix(0, 0)}}, nil
}

// DeskFacadeStub aggregates facade dependencies for HTTP layer tests.
type DeskFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
}

// SessionResolverStub implements the middleware guard contract.
type SessionResolverStub struct {
	ID        int64
	Err       error
	ResolveFn func(context.Context, string) (int64, error)
}

// RequireSession either delegates to override or returns predefined result.
func (s SessionResolverStub) RequireSession(ctx context.Context, token string) (int64, error) {
	if s.ResolveFn != nil {
		return s.ResolveFn(ctx, token)
	}
	if s.Err != nil {
		return 0, s.Err
	}
	return s.ID, nil
}

// PingerStub reports configurable storage health.
type PingerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s PingerStub) HealthCheck(ctx context.Context) error {
	return s.Err
}

// SessionStoreStub backs the janitor worker in tests.
type SessionStoreStub struct {
	DeleteExpiredFn func(context.Context, time.Time, int) (int64, error)
	Sweeps          []int
}

// DeleteExpired records sweep invocations.
func (s *SessionStoreStub) DeleteExpired(ctx context.Context, before time.Time, limit int) (int64, error) {
	if s.DeleteExpiredFn != nil {
		return s.DeleteExpiredFn(ctx, before, limit)
	}
	s.Sweeps = append(s.Sweeps, limit)
	return 0, nil
}
