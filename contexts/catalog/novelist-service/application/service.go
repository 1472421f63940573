package application

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "madr/contexts/catalog/novelist-service/domain/errors"
	"madr/contexts/catalog/novelist-service/ports"
)

const DefaultPageLimit = 20

type Service struct {
	Repo   ports.Repository
	Logger *slog.Logger
}

func (s Service) Create(ctx context.Context, name string) (ports.Novelist, error) {
	name = fold(name)
	if name == "" {
		return ports.Novelist{}, domainerrors.ErrInvalidRequest
	}

	novelist, err := s.Repo.Create(ctx, ports.Novelist{Name: name})
	if err != nil {
		return ports.Novelist{}, err
	}

	resolveLogger(s.Logger).Info("novelist created",
		"event", "novelist_created",
		"module", "catalog/novelist-service",
		"layer", "application",
		"novelist_id", novelist.ID,
	)
	return novelist, nil
}

func (s Service) Get(ctx context.Context, id int64) (ports.Novelist, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s Service) List(ctx context.Context, filter ports.ListFilter) ([]ports.Novelist, error) {
	if filter.Offset < 0 || filter.Limit < 0 {
		return nil, domainerrors.ErrInvalidRequest
	}
	return s.Repo.List(ctx, filter)
}

func (s Service) Update(ctx context.Context, id int64, name string) (ports.Novelist, error) {
	name = fold(name)
	if name == "" {
		return ports.Novelist{}, domainerrors.ErrInvalidRequest
	}

	novelist, err := s.Repo.Update(ctx, ports.Novelist{ID: id, Name: name})
	if err != nil {
		return ports.Novelist{}, err
	}

	resolveLogger(s.Logger).Info("novelist updated",
		"event", "novelist_updated",
		"module", "catalog/novelist-service",
		"layer", "application",
		"novelist_id", novelist.ID,
	)
	return novelist, nil
}

func (s Service) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}

	resolveLogger(s.Logger).Info("novelist deleted",
		"event", "novelist_deleted",
		"module", "catalog/novelist-service",
		"layer", "application",
		"novelist_id", id,
	)
	return nil
}

func fold(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
