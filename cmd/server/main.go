package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"realty-api/internal/api"
	"realty-api/internal/config"
	"realty-api/internal/db"
	"realty-api/internal/export"
	"realty-api/internal/ingestion"
	"realty-api/internal/middleware"
	"realty-api/internal/repository"
	"realty-api/internal/seed"

	"github.com/rs/cors"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var propertyRepo repository.PropertyRepository
	var inquiryRepo repository.InquiryRepository

	switch cfg.Storage {
	case config.StoragePostgres:
		conn, err := db.NewConnection(ctx, cfg.DB)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer conn.Close()

		if err := db.RunMigrations(cfg.DB, cfg.MigrationsPath); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}

		propertyRepo = repository.NewPostgresPropertyRepository(conn.Pool)
		inquiryRepo = repository.NewPostgresInquiryRepository(conn.Pool)
	default:
		propertyRepo = repository.NewMemoryPropertyRepository()
		inquiryRepo = repository.NewMemoryInquiryRepository()

		if cfg.Seed {
			if err := seed.Load(ctx, propertyRepo); err != nil {
				log.Fatalf("Failed to seed sample listings: %v", err)
			}
		}
	}

	propertyHandler := api.NewPropertyHandler(propertyRepo)
	inquiryHandler := api.NewInquiryHandler(inquiryRepo)
	exportHandler := export.NewHTTPHandler(export.NewService(propertyRepo))
	ingestHandler := ingestion.NewHTTPHandler(ingestion.NewService(propertyRepo))

	mux := http.NewServeMux()
	mux.Handle("/api/properties", propertyHandler)
	mux.Handle("/api/properties/", propertyHandler)
	mux.Handle("/api/properties/export", exportHandler)
	mux.Handle("/api/properties/import", ingestHandler)
	mux.Handle("/api/inquiries", inquiryHandler)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
	})

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      corsHandler.Handler(middleware.LoggingMiddleware(mux)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting realty API on %s (storage: %s)", cfg.Addr, cfg.Storage)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
