// Package bookservice owns the book records of the catalog: CRUD with a
// case-insensitive title-uniqueness invariant, a referential invariant
// on the owning novelist, partial updates and filtered listing.
package bookservice

import (
	"log/slog"

	httpadapter "madr/contexts/catalog/book-service/adapters/http"
	"madr/contexts/catalog/book-service/adapters/memory"
	"madr/contexts/catalog/book-service/application"
	"madr/contexts/catalog/book-service/ports"
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

func NewInMemoryModule(novelists ports.NovelistDirectory, logger *slog.Logger) Module {
	store := memory.NewStore(novelists)
	module := NewModule(Dependencies{
		Repo:   store,
		Logger: logger,
	})
	module.Store = store
	return module
}
