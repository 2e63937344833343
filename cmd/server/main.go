package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"saponify/internal/catalog"
	"saponify/internal/config"
	"saponify/internal/db"
	applog "saponify/internal/log"
	"saponify/internal/server"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		applog.Error(ctx, "failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := applog.SetLevel(cfg.LogLevel); err != nil {
		applog.Error(ctx, "invalid log level", "error", err)
		os.Exit(1)
	}

	database, err := db.Configure(cfg.Database)
	if err != nil {
		applog.Error(ctx, "failed to configure database", "error", err)
		os.Exit(1)
	}

	oilCatalog, err := catalog.Load(cfg.Catalog.OverlayPath)
	if err != nil {
		applog.Error(ctx, "failed to load catalog", "error", err, "path", cfg.Catalog.OverlayPath)
		os.Exit(1)
	}

	srv, err := server.New(server.Config{
		Addr: cfg.Server.Addr,
		Session: server.SessionConfig{
			Lifetime:     cfg.Session.Lifetime,
			CookieName:   cfg.Session.CookieName,
			CookieDomain: cfg.Session.CookieDomain,
			CookieSecure: cfg.Session.CookieSecure,
		},
		Database: database,
		Catalog:  oilCatalog,
	})
	if err != nil {
		applog.Error(ctx, "failed to build server", "error", err)
		os.Exit(1)
	}

	go func() {
		applog.Info(ctx, "starting http server", "addr", cfg.Server.Addr)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			applog.Error(ctx, "server encountered an error", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	<-sigCh

	applog.Info(ctx, "shutting down http server")
	if err := srv.Stop(); err != nil {
		applog.Error(ctx, "graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
