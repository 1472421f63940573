package httpserver

import (
	"errors"
	"net/http"

	novelisterrors "madr/contexts/catalog/novelist-service/domain/errors"
	"madr/contexts/catalog/novelist-service/ports"
	novelisthttp "madr/contexts/catalog/novelist-service/transport/http"
)

func writeNovelistError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, novelisthttp.ErrorResponse{Code: code, Message: message})
}

func writeNovelistDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, novelisterrors.ErrNovelistExists):
		writeNovelistError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, novelisterrors.ErrNovelistNotFound):
		writeNovelistError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, novelisterrors.ErrInvalidRequest):
		writeNovelistError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeNovelistError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleCreateNovelist(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authenticate(w, r); !ok {
		return
	}
	var req novelisthttp.NovelistRequest
	if !s.decodeJSON(w, r, &req, writeNovelistError) {
		return
	}
	resp, err := s.novelists.Handler.CreateHandler(r.Context(), req)
	if err != nil {
		writeNovelistDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetNovelist(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authenticate(w, r); !ok {
		return
	}
	id, ok := parsePathID(r, "novelist_id")
	if !ok {
		writeNovelistError(w, http.StatusBadRequest, "invalid_request", "novelist_id must be a positive integer")
		return
	}
	resp, err := s.novelists.Handler.GetHandler(r.Context(), id)
	if err != nil {
		writeNovelistDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListNovelists(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authenticate(w, r); !ok {
		return
	}
	offset, limit, ok := parsePage(r)
	if !ok {
		writeNovelistError(w, http.StatusBadRequest, "invalid_request", "offset and limit must be non-negative integers")
		return
	}
	resp, err := s.novelists.Handler.ListHandler(r.Context(), ports.ListFilter{
		Name:   r.URL.Query().Get("name"),
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		writeNovelistDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateNovelist(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authenticate(w, r); !ok {
		return
	}
	id, ok := parsePathID(r, "novelist_id")
	if !ok {
		writeNovelistError(w, http.StatusBadRequest, "invalid_request", "novelist_id must be a positive integer")
		return
	}
	var req novelisthttp.NovelistRequest
	if !s.decodeJSON(w, r, &req, writeNovelistError) {
		return
	}
	resp, err := s.novelists.Handler.UpdateHandler(r.Context(), id, req)
	if err != nil {
		writeNovelistDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteNovelist(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authenticate(w, r); !ok {
		return
	}
	id, ok := parsePathID(r, "novelist_id")
	if !ok {
		writeNovelistError(w, http.StatusBadRequest, "invalid_request", "novelist_id must be a positive integer")
		return
	}
	resp, err := s.novelists.Handler.DeleteHandler(r.Context(), id)
	if err != nil {
		writeNovelistDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
