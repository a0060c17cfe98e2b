package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/hqasem/billsplit/internal/bill"
	"github.com/hqasem/billsplit/internal/config"
	"github.com/hqasem/billsplit/internal/database"
	"github.com/hqasem/billsplit/internal/item"
	"github.com/hqasem/billsplit/internal/person"
	"github.com/hqasem/billsplit/internal/share"
)

// @title        billsplit API
// @version      1.0
// @description  Bill-splitting backend: people, items, portion shares and the derived dues/settlement views.
// @BasePath     /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Connected to database successfully")

	// Person feature
	personRepo := person.NewRepository(db)
	personService := person.NewService(personRepo)
	personHandler := person.NewHandler(personService)

	// Item feature
	itemRepo := item.NewRepository(db)
	itemService := item.NewService(itemRepo)
	itemHandler := item.NewHandler(itemService)

	// Share feature
	shareRepo := share.NewRepository(db)
	shareService := share.NewService(shareRepo)
	shareHandler := share.NewHandler(shareService)

	// Bill feature (reads the other features' snapshots)
	billRepo := bill.NewRepository(db)
	billService := bill.NewService(billRepo, personRepo, itemRepo, shareRepo)
	billHandler := bill.NewHandler(billService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Mount feature routers
		r.Mount("/people", personHandler.Routes())
		r.Mount("/items", itemHandler.Routes())
		r.Mount("/shares", shareHandler.Routes())
		r.Mount("/bill", billHandler.Routes())
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
