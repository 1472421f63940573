package application

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "madr/contexts/catalog/book-service/domain/errors"
	"madr/contexts/catalog/book-service/ports"
)

type Service struct {
	Repo   ports.Repository
	Logger *slog.Logger
}

func (s Service) Create(ctx context.Context, title string, year int, novelistID int64) (ports.Book, error) {
	title = fold(title)
	if title == "" {
		return ports.Book{}, domainerrors.ErrInvalidRequest
	}

	book, err := s.Repo.Create(ctx, ports.Book{
		Title:      title,
		Year:       year,
		NovelistID: novelistID,
	})
	if err != nil {
		return ports.Book{}, err
	}

	resolveLogger(s.Logger).Info("book created",
		"event", "book_created",
		"module", "catalog/book-service",
		"layer", "application",
		"book_id", book.ID,
		"novelist_id", book.NovelistID,
	)
	return book, nil
}

func (s Service) Get(ctx context.Context, id int64) (ports.Book, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s Service) List(ctx context.Context, filter ports.ListFilter) ([]ports.Book, error) {
	if filter.Offset < 0 || filter.Limit < 0 {
		return nil, domainerrors.ErrInvalidRequest
	}
	filter.Title = fold(filter.Title)
	filter.Year = strings.TrimSpace(filter.Year)
	return s.Repo.List(ctx, filter)
}

// Update applies a partial update: fields absent from the request are
// left unchanged, fields present are applied as given.
func (s Service) Update(ctx context.Context, id int64, update ports.BookUpdate) (ports.Book, error) {
	book, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return ports.Book{}, err
	}

	if update.Title != nil {
		title := fold(*update.Title)
		if title == "" {
			return ports.Book{}, domainerrors.ErrInvalidRequest
		}
		book.Title = title
	}
	if update.Year != nil {
		book.Year = *update.Year
	}
	if update.NovelistID != nil {
		book.NovelistID = *update.NovelistID
	}

	book, err = s.Repo.Update(ctx, book)
	if err != nil {
		return ports.Book{}, err
	}

	resolveLogger(s.Logger).Info("book updated",
		"event", "book_updated",
		"module", "catalog/book-service",
		"layer", "application",
		"book_id", book.ID,
	)
	return book, nil
}

func (s Service) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}

	resolveLogger(s.Logger).Info("book deleted",
		"event", "book_deleted",
		"module", "catalog/book-service",
		"layer", "application",
		"book_id", id,
	)
	return nil
}

func fold(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
