package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/orderdesk/internal/domain/errors"
	"github.com/polkiloo/orderdesk/internal/domain/model"
	testhelpers "github.com/polkiloo/orderdesk/internal/test"
)

func TestOrderUseCaseSubmitRejectsInvalidPayload(t *testing.T) {
	uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{CreateFn: func(context.Context, int64, model.OrderDraft) (*model.Order, error) {
		t.Fatal("create must not be called for invalid payload")
		return nil, nil
	}})

	sub := model.OrderSubmission{Description: "Fix roof", Category: "oprava", Phone: "12"}
	if _, err := uc.Submit(context.Background(), 1, sub); !domainErrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestOrderUseCaseSubmitSuccess(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	uc := NewOrderUseCase(repo)

	lat, lon := 50.08, 14.43
	sub := model.OrderSubmission{
		Description: "Fix roof",
		Category:    "oprava",
		Consent:     true,
		Phone:       "+420777123456",
		Latitude:    &lat,
		Longitude:   &lon,
	}

	order, err := uc.Submit(context.Background(), 7, sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ID == 0 {
		t.Fatal("expected order id to be assigned")
	}
	if order.AccountID != 7 {
		t.Fatalf("expected owner 7, got %d", order.AccountID)
	}
	if order.Location == nil || order.Location.Latitude != 50.08 {
		t.Fatalf("expected coordinates to persist, got %+v", order.Location)
	}
}

func TestOrderUseCaseSubmitPropagatesStorageError(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{Err: errors.New("insert failed")}
	uc := NewOrderUseCase(repo)

	sub := model.OrderSubmission{Description: "Fix roof", Category: "oprava", Phone: "+420777123456"}
	if _, err := uc.Submit(context.Background(), 1, sub); err == nil {
		t.Fatal("expected storage error to surface")
	}
}

func TestOrderUseCaseListByAccountNewestFirst(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	uc := NewOrderUseCase(repo)

	first := model.OrderSubmission{Description: "Fix roof", Category: "oprava", Phone: "+420777123456"}
	second := model.OrderSubmission{Description: "Paint fence", Category: "uprava", Phone: "+420777123457"}
	if _, err := uc.Submit(context.Background(), 3, first); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if _, err := uc.Submit(context.Background(), 3, second); err != nil {
		t.Fatalf("second submit failed: %v", err)
	}

	orders, err := uc.ListByAccount(context.Background(), 3)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].Description != "Paint fence" || orders[1].Description != "Fix roof" {
		t.Fatalf("expected newest first, got %q then %q", orders[0].Description, orders[1].Description)
	}
}

func TestOrderUseCaseListByAccountEmpty(t *testing.T) {
	uc := NewOrderUseCase(&testhelpers.OrderRepositoryStub{})
	orders, err := uc.ListByAccount(context.Background(), 9)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if orders == nil || len(orders) != 0 {
		t.Fatalf("expected empty slice, got %#v", orders)
	}
}
