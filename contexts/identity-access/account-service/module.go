// Package accountservice bundles registration, login, token resolution
// and the self-ownership invariants over the credential store.
package accountservice

import (
	"log/slog"

	httpadapter "madr/contexts/identity-access/account-service/adapters/http"
	"madr/contexts/identity-access/account-service/adapters/memory"
	"madr/contexts/identity-access/account-service/application"
	"madr/contexts/identity-access/account-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repo   ports.Repository
	Tokens ports.Tokens
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repo,
		Tokens: deps.Tokens,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(tokens ports.Tokens, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repo:   store,
		Tokens: tokens,
		Logger: logger,
	})
	module.Store = store
	return module
}
