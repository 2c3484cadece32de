package app

import (
	"context"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/usecase"
)

// DeskFacade is the application surface the HTTP layer talks to. It narrows
// the use cases to exactly what handlers and middleware need.
type DeskFacade struct {
	auth   *usecase.AuthUseCase
	orders *usecase.OrderUseCase
}

// NewDeskFacade constructs the application facade.
func NewDeskFacade(auth *usecase.AuthUseCase, orders *usecase.OrderUseCase) *DeskFacade {
	return &DeskFacade{auth: auth, orders: orders}
}

func (f *DeskFacade) Register(ctx context.Context, username, email, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, username, email, password)
	return token, err
}

func (f *DeskFacade) Authenticate(ctx context.Context, username, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, username, password)
	return token, err
}

func (f *DeskFacade) Logout(ctx context.Context, token string) error {
	return f.auth.Logout(ctx, token)
}

func (f *DeskFacade) CurrentUser(ctx context.Context, token string) (*model.Account, error) {
	return f.auth.CurrentUser(ctx, token)
}

func (f *DeskFacade) RequireSession(ctx context.Context, token string) (int64, error) {
	return f.auth.RequireSession(ctx, token)
}

func (f *DeskFacade) SubmitOrder(ctx context.Context, accountID int64, sub model.OrderSubmission) (*model.Order, error) {
	return f.orders.Submit(ctx, accountID, sub)
}

func (f *DeskFacade) Orders(ctx context.Context, accountID int64) ([]model.Order, error) {
	return f.orders.ListByAccount(ctx, accountID)
}
