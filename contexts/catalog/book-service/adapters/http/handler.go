package httpadapter

import (
	"context"
	"log/slog"

	"madr/contexts/catalog/book-service/application"
	"madr/contexts/catalog/book-service/ports"
	httptransport "madr/contexts/catalog/book-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateHandler(ctx context.Context, req httptransport.CreateBookRequest) (httptransport.BookResponse, error) {
	book, err := h.Service.Create(ctx, req.Title, req.Year, req.NovelistID)
	if err != nil {
		return httptransport.BookResponse{}, err
	}
	return bookResponse(book), nil
}

func (h Handler) GetHandler(ctx context.Context, id int64) (httptransport.BookResponse, error) {
	book, err := h.Service.Get(ctx, id)
	if err != nil {
		return httptransport.BookResponse{}, err
	}
	return bookResponse(book), nil
}

func (h Handler) ListHandler(ctx context.Context, filter ports.ListFilter) (httptransport.BookListResponse, error) {
	books, err := h.Service.List(ctx, filter)
	if err != nil {
		return httptransport.BookListResponse{}, err
	}
	resp := httptransport.BookListResponse{
		Books: make([]httptransport.BookResponse, 0, len(books)),
	}
	for _, book := range books {
		resp.Books = append(resp.Books, bookResponse(book))
	}
	return resp, nil
}

func (h Handler) UpdateHandler(ctx context.Context, id int64, req httptransport.UpdateBookRequest) (httptransport.BookResponse, error) {
	book, err := h.Service.Update(ctx, id, ports.BookUpdate{
		Title:      req.Title,
		Year:       req.Year,
		NovelistID: req.NovelistID,
	})
	if err != nil {
		return httptransport.BookResponse{}, err
	}
	return bookResponse(book), nil
}

func (h Handler) DeleteHandler(ctx context.Context, id int64) (httptransport.MessageResponse, error) {
	if err := h.Service.Delete(ctx, id); err != nil {
		return httptransport.MessageResponse{}, err
	}
	return httptransport.MessageResponse{Message: "Book deleted successfully"}, nil
}

func bookResponse(book ports.Book) httptransport.BookResponse {
	return httptransport.BookResponse{
		ID:         book.ID,
		Title:      book.Title,
		Year:       book.Year,
		NovelistID: book.NovelistID,
	}
}
