package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/polkiloo/orderdesk/internal/app"
	"github.com/polkiloo/orderdesk/internal/config"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
	"github.com/polkiloo/orderdesk/internal/storage/postgres"
	"github.com/polkiloo/orderdesk/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		SessionTTL:      time.Hour,
		BcryptCost:      4,
		SweepInterval:   time.Millisecond,
		SweepBatchSize:  1,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	accountRepo := test.NewAccountRepositoryStub()
	sessionRepo := test.NewSessionRepositoryStub()
	orderRepo := &test.OrderRepositoryStub{}

	var facade *app.DeskFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.AccountRepository(accountRepo)),
			fx.Replace(repository.SessionRepository(sessionRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected desk facade instance")
	}
}
