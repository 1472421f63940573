package httpserver

import (
	"errors"
	"net/http"

	accounterrors "madr/contexts/identity-access/account-service/domain/errors"
	accounthttp "madr/contexts/identity-access/account-service/transport/http"
)

func writeAccountError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, accounthttp.ErrorResponse{Code: code, Message: message})
}

func writeAccountDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accounterrors.ErrInvalidCredentials),
		errors.Is(err, accounterrors.ErrCredentialsUnusable):
		writeAccountError(w, http.StatusUnauthorized, "unauthorized", err.Error())
	case errors.Is(err, accounterrors.ErrChangeOtherUser),
		errors.Is(err, accounterrors.ErrDeleteOtherUser):
		writeAccountError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, accounterrors.ErrUserExists),
		errors.Is(err, accounterrors.ErrUserUpdateConflict):
		writeAccountError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, accounterrors.ErrUserNotFound):
		writeAccountError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, accounterrors.ErrInvalidRequest):
		writeAccountError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeAccountError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req accounthttp.CreateAccountRequest
	if !s.decodeJSON(w, r, &req, writeAccountError) {
		return
	}
	resp, err := s.accounts.Handler.RegisterHandler(r.Context(), req)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateAccount(w http.ResponseWriter, r *http.Request) {
	principal, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	targetID, ok := parsePathID(r, "user_id")
	if !ok {
		writeAccountError(w, http.StatusBadRequest, "invalid_request", "user_id must be a positive integer")
		return
	}
	var req accounthttp.UpdateAccountRequest
	if !s.decodeJSON(w, r, &req, writeAccountError) {
		return
	}
	resp, err := s.accounts.Handler.UpdateHandler(r.Context(), principal, targetID, req)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	principal, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	targetID, ok := parsePathID(r, "user_id")
	if !ok {
		writeAccountError(w, http.StatusBadRequest, "invalid_request", "user_id must be a positive integer")
		return
	}
	resp, err := s.accounts.Handler.DeleteHandler(r.Context(), principal, targetID)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
