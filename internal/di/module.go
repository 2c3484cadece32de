package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/orderdesk/internal/app"
	"github.com/polkiloo/orderdesk/internal/config"
	"github.com/polkiloo/orderdesk/internal/logger"
	"github.com/polkiloo/orderdesk/internal/pkg/auth"
	"github.com/polkiloo/orderdesk/internal/server/http/handlers"
	"github.com/polkiloo/orderdesk/internal/server/http/router"
	"github.com/polkiloo/orderdesk/internal/session"
	"github.com/polkiloo/orderdesk/internal/storage/postgres"
	"github.com/polkiloo/orderdesk/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		session.Module,
		usecase.Module,
		fx.Provide(func(m *session.Manager) usecase.SessionManager { return m }),
		fx.Provide(func(f *app.DeskFacade) handlers.DeskFacade { return f }),
		fx.Provide(func(s *postgres.Storage) handlers.Pinger { return s }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
