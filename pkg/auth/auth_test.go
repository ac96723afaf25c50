package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	tok := Token(42)
	if !strings.HasPrefix(tok, "mock-token-42-") {
		t.Fatalf("unexpected token shape %q", tok)
	}
	if got := UserID(tok); got != 42 {
		t.Fatalf("UserID = %d, want 42", got)
	}
}

func TestUserIDRejectsForeignTokens(t *testing.T) {
	for _, tok := range []string{"", "garbage", "mock-token-", "mock-token-abc-1", "token-1-2"} {
		if got := UserID(tok); got != 0 {
			t.Fatalf("UserID(%q) = %d, want 0", tok, got)
		}
	}
}

func TestMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := Middleware(next)

	r := httptest.NewRequest(http.MethodGet, "/x", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no header: code = %d", w.Code)
	}

	r = httptest.NewRequest(http.MethodGet, "/x", nil)
	r.Header.Set("Authorization", "Basic abc")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("basic auth: code = %d", w.Code)
	}

	r = httptest.NewRequest(http.MethodGet, "/x", nil)
	r.Header.Set("Authorization", "Bearer "+Token(1))
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusNoContent {
		t.Fatalf("bearer: code = %d", w.Code)
	}
}

func TestLimiterPoolIsolatesKeys(t *testing.T) {
	p := NewLimiterPool(1, 1)
	if !p.Allow("a@x") {
		t.Fatal("first attempt must pass")
	}
	if p.Allow("a@x") {
		t.Fatal("burst of 1 must exhaust after one attempt")
	}
	if !p.Allow("b@x") {
		t.Fatal("other key must be unaffected")
	}
}
