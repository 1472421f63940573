package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	httpSwagger "github.com/swaggo/http-swagger"

	bookservice "madr/contexts/catalog/book-service"
	novelistservice "madr/contexts/catalog/novelist-service"
	accountservice "madr/contexts/identity-access/account-service"
	accounthttp "madr/contexts/identity-access/account-service/transport/http"
	_ "madr/internal/platform/httpserver/docs"
)

type Server struct {
	mux       *http.ServeMux
	logger    *slog.Logger
	addr      string
	accounts  accountservice.Module
	novelists novelistservice.Module
	books     bookservice.Module
}

func New(
	accounts accountservice.Module,
	novelists novelistservice.Module,
	books bookservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:       http.NewServeMux(),
		logger:    logger,
		addr:      addr,
		accounts:  accounts,
		novelists: novelists,
		books:     books,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /{$}", s.handleWelcome)

	s.mux.HandleFunc("POST /auth/token", s.handleLogin)

	s.mux.HandleFunc("POST /conta/{$}", s.handleCreateAccount)
	s.mux.HandleFunc("PUT /conta/{user_id}", s.handleUpdateAccount)
	s.mux.HandleFunc("DELETE /conta/{user_id}", s.handleDeleteAccount)

	s.mux.HandleFunc("POST /romancista/{$}", s.handleCreateNovelist)
	s.mux.HandleFunc("GET /romancista/{$}", s.handleListNovelists)
	s.mux.HandleFunc("GET /romancista/{novelist_id}", s.handleGetNovelist)
	s.mux.HandleFunc("PATCH /romancista/{novelist_id}", s.handleUpdateNovelist)
	s.mux.HandleFunc("DELETE /romancista/{novelist_id}", s.handleDeleteNovelist)

	s.mux.HandleFunc("POST /livro/{$}", s.handleCreateBook)
	s.mux.HandleFunc("GET /livro/{$}", s.handleListBooks)
	s.mux.HandleFunc("GET /livro/{book_id}", s.handleGetBook)
	s.mux.HandleFunc("PATCH /livro/{book_id}", s.handleUpdateBook)
	s.mux.HandleFunc("DELETE /livro/{book_id}", s.handleDeleteBook)
}

func (s *Server) handleWelcome(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, accounthttp.MessageResponse{
		Message: "Seja bem-vindo(a) ao Meu Acervo Digital de Romances",
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any, writeError func(http.ResponseWriter, int, string, string)) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return false
	}
	return true
}

// bearerToken extracts the credential from the Authorization header.
func bearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func parsePathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(r.PathValue(name)), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parsePage reads offset/limit query parameters; limit defaults to 20.
func parsePage(r *http.Request) (offset, limit int, ok bool) {
	offset = 0
	limit = 20

	if raw := r.URL.Query().Get("offset"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			return 0, 0, false
		}
		offset = value
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			return 0, 0, false
		}
		limit = value
	}
	return offset, limit, true
}
