package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/logcraft/logcraft-api/internal/config"
	applog "github.com/logcraft/logcraft-api/internal/platform/logging"
	"github.com/logcraft/logcraft-api/internal/platform/metrics"
	"github.com/logcraft/logcraft-api/internal/server"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx)
	stop()
	os.Exit(code)
}

// run wires configuration, logging and the server, and returns the process exit code.
func run(ctx context.Context) int {
	defer func() {
		// Syncing stdout returns EINVAL on some platforms; nothing to act on.
		_ = applog.Sync()
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(ctx, "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogError(ctx, "config load error", err)
		return 1
	}
	if err := applog.SetLevel(cfg.LogLevel); err != nil {
		applog.LogError(ctx, "invalid log level", err)
		return 1
	}

	applog.LogInfo(ctx, "starting "+server.Title,
		zap.String("version", Version),
		zap.String("addr", cfg.Addr()),
		zap.Bool("docs", cfg.DocsEnabled),
		zap.String("metricsAddr", cfg.MetricsAddr),
	)

	srv := server.New(cfg, Version, metrics.New())
	if err := srv.Run(ctx); err != nil {
		applog.LogError(ctx, "server error", err)
		return 1
	}
	return 0
}
