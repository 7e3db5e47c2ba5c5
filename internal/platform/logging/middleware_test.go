package logging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// withProjectID pins the cached project ID for the duration of a test.
func withProjectID(t *testing.T, projectID string) {
	t.Helper()
	orig := cachedProjectID
	cachedProjectID = projectID
	projectIDOnce = sync.Once{}
	projectIDOnce.Do(func() {})
	t.Cleanup(func() {
		cachedProjectID = orig
		projectIDOnce = sync.Once{}
	})
}

func TestAccessLoggerWritesSummary(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(contextWithLogger(r.Context(), zap.New(core))))
		})
	})
	router.Use(AccessLogger())
	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("User-Agent", "kube-probe/1.30")
	router.ServeHTTP(httptest.NewRecorder(), req)

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Message != "request completed" {
		t.Fatalf("unexpected log message: %s", entries[0].Message)
	}

	fields := map[string]zap.Field{}
	for _, f := range entries[0].Context {
		fields[f.Key] = f
	}
	if f, ok := fields["status"]; !ok || f.Integer != http.StatusTeapot {
		t.Fatalf("expected status 418, got %+v", f)
	}
	if f, ok := fields["bytes"]; !ok || f.Integer != 2 {
		t.Fatalf("expected 2 bytes, got %+v", f)
	}
	if f, ok := fields["route"]; !ok || f.String != "/health" {
		t.Fatalf("expected route /health, got %+v", f)
	}
	if f, ok := fields["userAgent"]; !ok || f.String != "kube-probe/1.30" {
		t.Fatalf("expected userAgent, got %+v", f)
	}
	if _, ok := fields["duration"]; !ok {
		t.Fatalf("expected duration field, got %+v", fields)
	}
}

func TestRequestLoggerUsesTraceResource(t *testing.T) {
	withProjectID(t, "logcraft-prod")

	var traceID *string
	handler := RequestLogger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = TraceIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("traceparent", testTraceparent)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	want := "projects/logcraft-prod/traces/3d23d071b5bfd6579171efce907685cb"
	if traceID == nil || *traceID != want {
		t.Fatalf("expected trace ID %q, got %v", want, traceID)
	}
}

func TestRequestLoggerFallsBackToRequestID(t *testing.T) {
	withProjectID(t, "")

	var traceID *string
	inner := RequestLogger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = TraceIDFromContext(r.Context())
	}))
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), chimiddleware.RequestIDKey, "test-request-id")
		inner.ServeHTTP(w, r.WithContext(ctx))
	})

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if traceID == nil || *traceID != "test-request-id" {
		t.Fatalf("expected request ID as trace ID, got %v", traceID)
	}
}

func TestRequestLoggerWithoutIdentifiers(t *testing.T) {
	withProjectID(t, "")

	handler := RequestLogger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := TraceIDFromContext(r.Context()); got != nil {
			t.Fatalf("expected no trace ID, got %v", *got)
		}
		if LoggerFromContext(r.Context()) == nil {
			t.Fatal("expected non-nil logger in context")
		}
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}
