package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"

	"github.com/clothify/catalog-admin/config"
	"github.com/clothify/catalog-admin/middleware"
	"github.com/clothify/catalog-admin/storeserver"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg := config.Load()

	db, err := storeserver.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open store database: %v", err)
	}
	storeserver.Seed(db)

	server := storeserver.NewServer(storeserver.NewRepository(db))
	srv := &http.Server{
		Addr:    cfg.StoreAddr,
		Handler: middleware.Logger(middleware.RequestID(server.Routes())),
	}

	go func() {
		log.Printf("Data store listening on %s (database %s)", cfg.StoreAddr, cfg.DatabaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				log.Println("Shutting down store server...")
				return srv.Shutdown(ctx)
			},
		},
	)
	os.Exit(<-wait)
}
