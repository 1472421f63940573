// Package novelistservice owns the novelist records of the catalog:
// CRUD with a case-insensitive name-uniqueness invariant plus substring
// search and pagination.
package novelistservice

import (
	"log/slog"

	httpadapter "madr/contexts/catalog/novelist-service/adapters/http"
	"madr/contexts/catalog/novelist-service/adapters/memory"
	"madr/contexts/catalog/novelist-service/application"
	"madr/contexts/catalog/novelist-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repo   ports.Repository
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repo,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repo:   store,
		Logger: logger,
	})
	module.Store = store
	return module
}
