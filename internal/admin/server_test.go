package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/danmuck/coordctl/internal/coordinator"
	"github.com/danmuck/coordctl/internal/credstore"
	"github.com/danmuck/coordctl/internal/testutil/testlog"
)

func newTestServer(t *testing.T) (*Server, credstore.Store) {
	t.Helper()
	store := credstore.NewMemStore()
	if err := store.Put("acct.alpha", "tok.1"); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	srv := NewServer(Options{
		Store:    store,
		Registry: coordinator.NewRegistry(),
		Auth:     StaticToken{Token: "admin.secret"},
		Logger:   zerolog.Nop(),
	})
	return srv, store
}

func TestHealthRoute(t *testing.T) {
	testlog.Start(t)
	srv, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("body: %s", rec.Body.String())
	}
}

func TestAccountsRoute(t *testing.T) {
	testlog.Start(t)
	srv, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/accounts", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var body struct {
		Accounts []string `json:"accounts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Accounts) != 1 || body.Accounts[0] != "acct.alpha" {
		t.Fatalf("accounts: %v", body.Accounts)
	}
}

func TestDeleteAccountRequiresToken(t *testing.T) {
	testlog.Start(t)
	srv, store := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/accounts/acct.alpha", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: status %d", rec.Code)
	}
	if _, err := store.Get("acct.alpha"); err != nil {
		t.Fatalf("account deleted without auth: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/accounts/acct.alpha", nil)
	req.Header.Set("X-Admin-Token", "admin.secret")
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("authorized delete: status %d", rec.Code)
	}
	if _, err := store.Get("acct.alpha"); err == nil {
		t.Fatalf("account survived delete")
	}
}

func TestDeleteUnknownAccount(t *testing.T) {
	testlog.Start(t)
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodDelete, "/accounts/acct.ghost", nil)
	req.Header.Set("X-Admin-Token", "admin.secret")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestSessionsRouteEmpty(t *testing.T) {
	testlog.Start(t)
	srv, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"sessions":[]`) {
		t.Fatalf("body: %s", rec.Body.String())
	}
}

func TestStaticTokenValidator(t *testing.T) {
	testlog.Start(t)
	v := StaticToken{Token: "secret"}
	if err := v.Validate("secret"); err != nil {
		t.Fatalf("valid token rejected: %v", err)
	}
	if err := v.Validate("wrong"); err == nil {
		t.Fatalf("invalid token accepted")
	}
	if err := (StaticToken{}).Validate(""); err == nil {
		t.Fatalf("empty configured token accepted")
	}
}
