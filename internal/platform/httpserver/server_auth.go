package httpserver

import (
	"net/http"
	"strings"

	"madr/contexts/identity-access/account-service/ports"
)

// handleLogin implements the OAuth2 password form: the identifier
// travels in the "username" field even when it carries an email.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeAccountError(w, http.StatusBadRequest, "invalid_form", "request body must be a valid form")
		return
	}
	identifier := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	if identifier == "" || password == "" {
		writeAccountError(w, http.StatusBadRequest, "invalid_form", "username and password are required")
		return
	}

	resp, err := s.accounts.Handler.LoginHandler(r.Context(), identifier, password)
	if err != nil {
		writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// authenticate resolves the bearer token to the request principal.
// Absent and invalid credentials fail identically.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (ports.User, bool) {
	raw, ok := bearerToken(r)
	if !ok {
		writeAccountError(w, http.StatusUnauthorized, "unauthorized", "Could not validate credentials")
		return ports.User{}, false
	}
	principal, err := s.accounts.Handler.ResolveHandler(r.Context(), raw)
	if err != nil {
		writeAccountDomainError(w, err)
		return ports.User{}, false
	}
	return principal, true
}
