package session

import (
	"go.uber.org/fx"

	"github.com/polkiloo/orderdesk/internal/config"
	"github.com/polkiloo/orderdesk/internal/domain/repository"
)

// Module wires the session manager for fx graphs.
var Module = fx.Provide(newManager)

type managerParams struct {
	fx.In

	Sessions repository.SessionRepository
	Config   *config.Config
}

func newManager(p managerParams) *Manager {
	return NewManager(p.Sessions, p.Config.SessionTTL)
}
