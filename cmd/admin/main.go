package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"

	"github.com/clothify/catalog-admin/app/catalog"
	"github.com/clothify/catalog-admin/app/categories"
	"github.com/clothify/catalog-admin/app/products"
	"github.com/clothify/catalog-admin/config"
	"github.com/clothify/catalog-admin/middleware"
	"github.com/clothify/catalog-admin/notify"
	"github.com/clothify/catalog-admin/store"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg := config.Load()

	client := store.NewClient(cfg.StoreBaseURL)
	notifier := &notify.LogNotifier{}

	catalogHandler := catalog.NewCatalogHandler(client, notifier, cfg.PageSize)
	productHandler := products.NewProductHandler(client, notifier)
	categoryHandler := categories.NewCategoryHandler(client)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /catalog", catalogHandler.HandleGet)
	mux.HandleFunc("GET /products/{id}", productHandler.HandleGetProduct)
	mux.HandleFunc("POST /products", productHandler.HandleCreate)
	mux.HandleFunc("PUT /products/{id}", productHandler.HandleUpdate)
	mux.HandleFunc("GET /categories", categoryHandler.HandleGetAll)

	srv := &http.Server{
		Addr:    cfg.AdminAddr,
		Handler: middleware.Logger(middleware.RequestID(mux)),
	}

	go func() {
		log.Printf("Catalog admin listening on %s (store at %s)", cfg.AdminAddr, cfg.StoreBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				log.Println("Shutting down admin server...")
				return srv.Shutdown(ctx)
			},
		},
	)
	os.Exit(<-wait)
}
