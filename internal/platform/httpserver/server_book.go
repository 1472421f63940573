package httpserver

import (
	"errors"
	"net/http"

	bookerrors "madr/contexts/catalog/book-service/domain/errors"
	"madr/contexts/catalog/book-service/ports"
	bookhttp "madr/contexts/catalog/book-service/transport/http"
)

func writeBookError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, bookhttp.ErrorResponse{Code: code, Message: message})
}

func writeBookDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bookerrors.ErrBookExists),
		errors.Is(err, bookerrors.ErrNovelistIDInvalid):
		writeBookError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, bookerrors.ErrBookNotFound):
		writeBookError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, bookerrors.ErrInvalidRequest):
		writeBookError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeBookError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authenticate(w, r); !ok {
		return
	}
	var req bookhttp.CreateBookRequest
	if !s.decodeJSON(w, r, &req, writeBookError) {
		return
	}
	resp, err := s.books.Handler.CreateHandler(r.Context(), req)
	if err != nil {
		writeBookDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authenticate(w, r); !ok {
		return
	}
	id, ok := parsePathID(r, "book_id")
	if !ok {
		writeBookError(w, http.StatusBadRequest, "invalid_request", "book_id must be a positive integer")
		return
	}
	resp, err := s.books.Handler.GetHandler(r.Context(), id)
	if err != nil {
		writeBookDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authenticate(w, r); !ok {
		return
	}
	offset, limit, ok := parsePage(r)
	if !ok {
		writeBookError(w, http.StatusBadRequest, "invalid_request", "offset and limit must be non-negative integers")
		return
	}
	resp, err := s.books.Handler.ListHandler(r.Context(), ports.ListFilter{
		Title:  r.URL.Query().Get("title"),
		Year:   r.URL.Query().Get("year"),
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		writeBookDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authenticate(w, r); !ok {
		return
	}
	id, ok := parsePathID(r, "book_id")
	if !ok {
		writeBookError(w, http.StatusBadRequest, "invalid_request", "book_id must be a positive integer")
		return
	}
	var req bookhttp.UpdateBookRequest
	if !s.decodeJSON(w, r, &req, writeBookError) {
		return
	}
	resp, err := s.books.Handler.UpdateHandler(r.Context(), id, req)
	if err != nil {
		writeBookDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authenticate(w, r); !ok {
		return
	}
	id, ok := parsePathID(r, "book_id")
	if !ok {
		writeBookError(w, http.StatusBadRequest, "invalid_request", "book_id must be a positive integer")
		return
	}
	resp, err := s.books.Handler.DeleteHandler(r.Context(), id)
	if err != nil {
		writeBookDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
