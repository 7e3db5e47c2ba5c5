// Package server assembles the HTTP router, middleware stack and Huma API,
// and runs the public and admin listeners.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/logcraft/logcraft-api/internal/config"
	"github.com/logcraft/logcraft-api/internal/http/routes"
	applog "github.com/logcraft/logcraft-api/internal/platform/logging"
	"github.com/logcraft/logcraft-api/internal/platform/metrics"
	appmiddleware "github.com/logcraft/logcraft-api/internal/platform/middleware"
	"github.com/logcraft/logcraft-api/internal/platform/respond"
)

const (
	// Title identifies the API in the generated OpenAPI document.
	Title = "Logcraft AI Backend"

	// DocsPath serves the interactive API reference when docs are enabled.
	DocsPath = "/api-docs"

	maxHeaderBytes = 64 << 10 // 64 KB
)

// Server owns the router and the listeners built from a Config.
type Server struct {
	cfg     *config.Config
	router  chi.Router
	api     huma.API
	metrics *metrics.Metrics
}

// New builds the router, middleware stack and routes. Nothing is registered after New returns.
func New(cfg *config.Config, version string, m *metrics.Metrics) *Server {
	apiCfg := APIConfig(version, cfg.DocsEnabled)

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(docsRoutes(apiCfg)...),
		appmiddleware.Vary(),
		appmiddleware.CORS(cfg.CORSAllowedOrigins...),
		appmiddleware.RequestID(),
		// RealIP trusts X-Forwarded-For; only deploy behind a proxy that sets it.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(cfg.Server.MaxRequestBytes),
		applog.RequestLogger(),
		applog.AccessLogger(),
		m.Middleware(),
		respond.Recoverer(),
	)

	api := humachi.New(router, apiCfg)
	routes.Register(api)

	return &Server{cfg: cfg, router: router, api: api, metrics: m}
}

// APIConfig returns the Huma configuration for the service.
//
// Only JSON is registered, so every Accept header gets the same JSON body.
// The schema link hook is dropped so bodies carry no "$schema" field.
// Without docs the OpenAPI, docs and schema routes are not mounted at all.
func APIConfig(version string, docsEnabled bool) huma.Config {
	cfg := huma.DefaultConfig(Title, version)
	cfg.Info.Description = "HTTP API of the Logcraft AI log analysis platform."
	cfg.CreateHooks = nil
	cfg.Formats = map[string]huma.Format{
		"application/json": huma.DefaultJSONFormat,
		"json":             huma.DefaultJSONFormat,
	}
	cfg.DefaultFormat = "application/json"
	if docsEnabled {
		cfg.DocsPath = DocsPath
	} else {
		cfg.OpenAPIPath = ""
		cfg.DocsPath = ""
		cfg.SchemasPath = ""
	}
	return cfg
}

// docsRoutes lists the documentation route prefixes cfg mounts. Empty when docs are off.
func docsRoutes(cfg huma.Config) []string {
	var paths []string
	for _, p := range []string{cfg.OpenAPIPath, cfg.DocsPath, cfg.SchemasPath} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// Handler returns the public HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// API exposes the Huma API, mainly for OpenAPI inspection.
func (s *Server) API() huma.API {
	return s.api
}

// Run listens on the configured port and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves the public API on ln, plus the metrics admin listener when
// configured, then shuts both down gracefully once ctx is cancelled.
// A listener failure also triggers shutdown and is returned.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	servers := []*http.Server{s.newHTTPServer(s.router)}
	listeners := []net.Listener{ln}

	if s.cfg.MetricsAddr != "" {
		adminLn, err := net.Listen("tcp", s.cfg.MetricsAddr)
		if err != nil {
			_ = ln.Close()
			return fmt.Errorf("listen metrics %s: %w", s.cfg.MetricsAddr, err)
		}
		admin := http.NewServeMux()
		admin.Handle("GET /metrics", s.metrics.Handler())
		servers = append(servers, s.newHTTPServer(admin))
		listeners = append(listeners, adminLn)
	}

	ctx = applog.WithLogger(ctx, applog.Logger().With(zap.String("component", "server")))
	listenErr := make(chan error, len(servers))
	for i, srv := range servers {
		srv, l := srv, listeners[i]
		go func() {
			applog.LogInfo(ctx, "server listening", zap.String("addr", l.Addr().String()))
			if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
				listenErr <- fmt.Errorf("serve %s: %w", l.Addr(), err)
			}
		}()
	}

	var runErr error
	select {
	case runErr = <-listenErr:
		applog.LogError(ctx, "listen failed", runErr)
	case <-ctx.Done():
		applog.LogInfo(ctx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			applog.LogError(shutdownCtx, "server shutdown error", err)
			runErr = errors.Join(runErr, fmt.Errorf("shutdown: %w", err))
		}
	}
	applog.LogInfo(shutdownCtx, "server exited")
	return runErr
}

func (s *Server) newHTTPServer(h http.Handler) *http.Server {
	sc := s.cfg.Server
	return &http.Server{
		Handler:           h,
		ReadTimeout:       sc.ReadTimeout,
		ReadHeaderTimeout: sc.ReadHeaderTimeout,
		WriteTimeout:      sc.WriteTimeout,
		IdleTimeout:       sc.IdleTimeout,
		MaxHeaderBytes:    maxHeaderBytes,
		ErrorLog:          zap.NewStdLog(applog.Logger()),
	}
}
