package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestVaryMiddlewareSetsHeader(t *testing.T) {
	h := Vary()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Custom", "value")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("test body"))
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()

	h.ServeHTTP(resp, req)

	if vary := resp.Header().Get("Vary"); vary != "Accept" {
		t.Fatalf("expected Vary: Accept, got %q", vary)
	}
	if resp.Code != http.StatusCreated || resp.Body.String() != "test body" {
		t.Fatalf("expected downstream response to be preserved, got %d %q", resp.Code, resp.Body.String())
	}
	if resp.Header().Get("X-Custom") != "value" {
		t.Fatalf("expected X-Custom header to be preserved")
	}
}
