package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	bookservice "madr/contexts/catalog/book-service"
	novelistservice "madr/contexts/catalog/novelist-service"
	accountservice "madr/contexts/identity-access/account-service"
	"madr/internal/platform/token"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	tokens, err := token.NewService(token.Config{
		SecretKey:     "test-secret",
		Algorithm:     "HS256",
		ExpireMinutes: 30,
	})
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	novelists := novelistservice.NewInMemoryModule(slog.Default())
	return New(
		accountservice.NewInMemoryModule(tokens, slog.Default()),
		novelists,
		bookservice.NewInMemoryModule(novelists.Store, slog.Default()),
		slog.Default(),
		":0",
	)
}

func doJSON(server *Server, method, path, bearer string, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	return rr
}

func registerAccount(t *testing.T, server *Server, username, email, password string) int64 {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"email":%q,"password":%q}`, username, email, password)
	rr := doJSON(server, http.MethodPost, "/conta/", "", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d body=%s", username, rr.Code, rr.Body.String())
	}
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	return resp.ID
}

func login(t *testing.T, server *Server, identifier, password string) string {
	t.Helper()
	form := url.Values{"username": {identifier}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d body=%s", identifier, rr.Code, rr.Body.String())
	}
	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode token response: %v", err)
	}
	if resp.TokenType != "bearer" {
		t.Fatalf("expected token_type bearer, got %q", resp.TokenType)
	}
	return resp.AccessToken
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return resp.Message
}

func TestWelcome(t *testing.T) {
	server := newTestServer(t)
	rr := doJSON(server, http.MethodGet, "/", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if got := errorMessage(t, rr); got != "Seja bem-vindo(a) ao Meu Acervo Digital de Romances" {
		t.Fatalf("unexpected welcome message %q", got)
	}
}

func TestRegisterDuplicateConflict(t *testing.T) {
	server := newTestServer(t)
	registerAccount(t, server, "alice", "alice@example.com", "s3cret")

	rr := doJSON(server, http.MethodPost, "/conta/", "", `{"username":"ALICE","email":"other@example.com","password":"x"}`)
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rr.Code, rr.Body.String())
	}
	if got := errorMessage(t, rr); got != "Username or Email already exist" {
		t.Fatalf("unexpected conflict message %q", got)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	server := newTestServer(t)
	registerAccount(t, server, "alice", "alice@example.com", "s3cret")

	form := url.Values{"username": {"alice@example.com"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
	if got := errorMessage(t, rr); got != "User or credentials invalid" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestLoginAcceptsUsernameIdentifier(t *testing.T) {
	server := newTestServer(t)
	registerAccount(t, server, "alice", "alice@example.com", "s3cret")

	if raw := login(t, server, "alice", "s3cret"); raw == "" {
		t.Fatalf("expected a token")
	}
	if raw := login(t, server, "ALICE@EXAMPLE.COM", "s3cret"); raw == "" {
		t.Fatalf("expected a token")
	}
}

func TestProtectedRoutesRequireBearer(t *testing.T) {
	server := newTestServer(t)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/romancista/"},
		{http.MethodPost, "/romancista/"},
		{http.MethodGet, "/livro/"},
		{http.MethodGet, "/livro/1"},
		{http.MethodDelete, "/conta/1"},
	} {
		rr := doJSON(server, tc.method, tc.path, "", "")
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", tc.method, tc.path, rr.Code)
		}
		if got := errorMessage(t, rr); got != "Could not validate credentials" {
			t.Fatalf("%s %s: unexpected message %q", tc.method, tc.path, got)
		}
	}

	rr := doJSON(server, http.MethodGet, "/romancista/", "garbage-token", "")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: expected 401, got %d", rr.Code)
	}
	if got := errorMessage(t, rr); got != "Could not validate credentials" {
		t.Fatalf("garbage token: unexpected message %q", got)
	}
}

func TestAccountOwnership(t *testing.T) {
	server := newTestServer(t)
	registerAccount(t, server, "alice", "alice@example.com", "s3cret")
	bobID := registerAccount(t, server, "bob", "bob@example.com", "s3cret")
	aliceToken := login(t, server, "alice", "s3cret")

	rr := doJSON(server, http.MethodPut, fmt.Sprintf("/conta/%d", bobID), aliceToken,
		`{"username":"bob2","email":"bob2@example.com","password":"x"}`)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
	if got := errorMessage(t, rr); got != "You are not allowed to change this user" {
		t.Fatalf("unexpected message %q", got)
	}

	rr = doJSON(server, http.MethodDelete, fmt.Sprintf("/conta/%d", bobID), aliceToken, "")
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
	if got := errorMessage(t, rr); got != "You are not allowed to delete this user" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestAccountSelfUpdateAndDelete(t *testing.T) {
	server := newTestServer(t)
	aliceID := registerAccount(t, server, "alice", "alice@example.com", "s3cret")
	aliceToken := login(t, server, "alice", "s3cret")

	rr := doJSON(server, http.MethodPut, fmt.Sprintf("/conta/%d", aliceID), aliceToken,
		`{"username":"Alice2","email":"ALICE2@example.com","password":"newpass"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var updated struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&updated); err != nil {
		t.Fatalf("decode update response: %v", err)
	}
	if updated.Username != "alice2" || updated.Email != "alice2@example.com" {
		t.Fatalf("update response not folded: %+v", updated)
	}

	// The old token's subject no longer resolves after the email change.
	rr = doJSON(server, http.MethodGet, "/romancista/", aliceToken, "")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with stale token, got %d", rr.Code)
	}

	aliceToken = login(t, server, "alice2", "newpass")
	rr = doJSON(server, http.MethodDelete, fmt.Sprintf("/conta/%d", aliceID), aliceToken, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if got := errorMessage(t, rr); got != "Account deleted successfully" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestNovelistLifecycle(t *testing.T) {
	server := newTestServer(t)
	registerAccount(t, server, "alice", "alice@example.com", "s3cret")
	bearer := login(t, server, "alice", "s3cret")

	rr := doJSON(server, http.MethodPost, "/romancista/", bearer, `{"name":"  Machado de Assis "}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	var novelist struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&novelist); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if novelist.Name != "machado de assis" {
		t.Fatalf("expected folded name, got %q", novelist.Name)
	}

	rr = doJSON(server, http.MethodPost, "/romancista/", bearer, `{"name":"Machado De Assis"}`)
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rr.Code, rr.Body.String())
	}
	if got := errorMessage(t, rr); got != "Novelist already exists" {
		t.Fatalf("unexpected message %q", got)
	}

	rr = doJSON(server, http.MethodGet, "/romancista/999", bearer, "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
	if got := errorMessage(t, rr); got != "Novelist id not found" {
		t.Fatalf("unexpected message %q", got)
	}

	rr = doJSON(server, http.MethodPatch, fmt.Sprintf("/romancista/%d", novelist.ID), bearer, `{"name":"Graciliano Ramos"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(server, http.MethodDelete, fmt.Sprintf("/romancista/%d", novelist.ID), bearer, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if got := errorMessage(t, rr); got != "Novelist deleted in the MADR" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestNovelistListFilterAndPagination(t *testing.T) {
	server := newTestServer(t)
	registerAccount(t, server, "alice", "alice@example.com", "s3cret")
	bearer := login(t, server, "alice", "s3cret")

	for i := 0; i < 25; i++ {
		body := fmt.Sprintf(`{"name":"machado %02d"}`, i)
		if rr := doJSON(server, http.MethodPost, "/romancista/", bearer, body); rr.Code != http.StatusCreated {
			t.Fatalf("seed create: expected 201, got %d body=%s", rr.Code, rr.Body.String())
		}
	}

	var list struct {
		Novelists []struct {
			Name string `json:"name"`
		} `json:"novelists"`
	}

	rr := doJSON(server, http.MethodGet, "/romancista/", bearer, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if err := json.NewDecoder(rr.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Novelists) != 20 {
		t.Fatalf("expected default page of 20, got %d", len(list.Novelists))
	}

	rr = doJSON(server, http.MethodGet, "/romancista/?offset=20", bearer, "")
	if err := json.NewDecoder(rr.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Novelists) != 5 {
		t.Fatalf("expected 5 on the second page, got %d", len(list.Novelists))
	}

	rr = doJSON(server, http.MethodGet, "/romancista/?name=machado+01", bearer, "")
	if err := json.NewDecoder(rr.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Novelists) != 1 || list.Novelists[0].Name != "machado 01" {
		t.Fatalf("name filter matched %+v", list.Novelists)
	}

	rr = doJSON(server, http.MethodGet, "/romancista/?offset=-1", bearer, "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative offset, got %d", rr.Code)
	}
}

func TestBookLifecycle(t *testing.T) {
	server := newTestServer(t)
	registerAccount(t, server, "alice", "alice@example.com", "s3cret")
	bearer := login(t, server, "alice", "s3cret")

	rr := doJSON(server, http.MethodPost, "/romancista/", bearer, `{"name":"machado de assis"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	var novelist struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&novelist); err != nil {
		t.Fatalf("decode novelist: %v", err)
	}

	rr = doJSON(server, http.MethodPost, "/livro/", bearer,
		fmt.Sprintf(`{"title":" Dom Casmurro ","year":1899,"novelist_id":%d}`, novelist.ID))
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	var book struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
		Year  int    `json:"year"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&book); err != nil {
		t.Fatalf("decode book: %v", err)
	}
	if book.Title != "dom casmurro" {
		t.Fatalf("expected folded title, got %q", book.Title)
	}

	rr = doJSON(server, http.MethodPost, "/livro/", bearer,
		fmt.Sprintf(`{"title":"Dom Casmurro","year":1899,"novelist_id":%d}`, novelist.ID))
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rr.Code, rr.Body.String())
	}
	if got := errorMessage(t, rr); got != "Book already created" {
		t.Fatalf("unexpected message %q", got)
	}

	rr = doJSON(server, http.MethodPost, "/livro/", bearer, `{"title":"quincas borba","year":1891,"novelist_id":999}`)
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d body=%s", rr.Code, rr.Body.String())
	}
	if got := errorMessage(t, rr); got != "Novelist id is invalid" {
		t.Fatalf("unexpected message %q", got)
	}

	rr = doJSON(server, http.MethodGet, "/livro/999", bearer, "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
	if got := errorMessage(t, rr); got != "Book id was not found" {
		t.Fatalf("unexpected message %q", got)
	}

	// Year-only patch leaves the title untouched.
	rr = doJSON(server, http.MethodPatch, fmt.Sprintf("/livro/%d", book.ID), bearer, `{"year":1900}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if err := json.NewDecoder(rr.Body).Decode(&book); err != nil {
		t.Fatalf("decode patched book: %v", err)
	}
	if book.Year != 1900 || book.Title != "dom casmurro" {
		t.Fatalf("patch touched absent fields: %+v", book)
	}

	rr = doJSON(server, http.MethodDelete, fmt.Sprintf("/livro/%d", book.ID), bearer, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if got := errorMessage(t, rr); got != "Book deleted successfully" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestBookListYearSubstringFilter(t *testing.T) {
	server := newTestServer(t)
	registerAccount(t, server, "alice", "alice@example.com", "s3cret")
	bearer := login(t, server, "alice", "s3cret")

	rr := doJSON(server, http.MethodPost, "/romancista/", bearer, `{"name":"machado de assis"}`)
	var novelist struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&novelist); err != nil {
		t.Fatalf("decode novelist: %v", err)
	}

	for _, b := range []struct {
		title string
		year  int
	}{
		{"dom casmurro", 1899},
		{"memorias postumas de bras cubas", 1881},
		{"esau e jaco", 1904},
	} {
		body := fmt.Sprintf(`{"title":%q,"year":%d,"novelist_id":%d}`, b.title, b.year, novelist.ID)
		if rr := doJSON(server, http.MethodPost, "/livro/", bearer, body); rr.Code != http.StatusCreated {
			t.Fatalf("seed book: expected 201, got %d body=%s", rr.Code, rr.Body.String())
		}
	}

	var list struct {
		Books []struct {
			Title string `json:"title"`
		} `json:"books"`
	}
	rr = doJSON(server, http.MethodGet, "/livro/?year=18", bearer, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if err := json.NewDecoder(rr.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Books) != 2 {
		t.Fatalf("expected 2 matches for year substring, got %d", len(list.Books))
	}

	rr = doJSON(server, http.MethodGet, "/livro/?title=Casmurro", bearer, "")
	if err := json.NewDecoder(rr.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Books) != 1 || list.Books[0].Title != "dom casmurro" {
		t.Fatalf("title filter matched %+v", list.Books)
	}
}

func TestMalformedBodiesAndIDs(t *testing.T) {
	server := newTestServer(t)
	registerAccount(t, server, "alice", "alice@example.com", "s3cret")
	bearer := login(t, server, "alice", "s3cret")

	rr := doJSON(server, http.MethodPost, "/conta/", "", `{not json`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rr.Code)
	}

	rr = doJSON(server, http.MethodGet, "/romancista/zero", bearer, "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", rr.Code)
	}

	rr = doJSON(server, http.MethodPatch, "/livro/1", bearer, `{"title":"   "}`)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown book, got %d body=%s", rr.Code, rr.Body.String())
	}
}
