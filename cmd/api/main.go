package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"storefront/internal/cms"
	"storefront/internal/commerce"
	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/events"
	"storefront/internal/httpserver"
	"storefront/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if cfg.StoreDomain == "" || cfg.StorefrontToken == "" {
		logger.Fatalf("STORE_DOMAIN and STOREFRONT_ACCESS_TOKEN are required")
	}

	ctx := context.Background()

	deps := httpserver.Deps{
		Commerce: commerce.New(
			commerce.EndpointFor(cfg.StoreDomain, cfg.StorefrontVersion),
			cfg.StorefrontToken,
			http.DefaultClient,
		),
		CacheTTL:     cfg.CacheTTL,
		AllowOrigins: cfg.AllowOrigins,
	}

	if cfg.CMSProjectID != "" {
		deps.Content = cms.New(
			cms.EndpointFor(cfg.CMSProjectID, cfg.CMSAPIVersion),
			cfg.CMSDataset,
			cfg.CMSToken,
			http.DefaultClient,
		)
	} else {
		logger.Printf("CMS_PROJECT_ID not set, content routes disabled")
	}

	if cfg.AMQPURL != "" {
		publisher, err := events.Dial(cfg.AMQPURL)
		if err != nil {
			logger.Fatalf("connect broker: %v", err)
		}
		defer publisher.Close()
		deps.Publisher = publisher
	}

	var dbpool *pgxpool.Pool
	if cfg.DBConnString != "" {
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect to db: %v", err)
		}
		defer pool.Close()
		dbpool = pool
		deps.SessionStore = store.NewPostgres(pool)
	} else {
		logger.Printf("DB_DSN not set, session carts held in memory")
		deps.SessionStore = store.NewMemory()
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, deps)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
