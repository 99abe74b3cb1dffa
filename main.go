package main

//go:generate swag init

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/manojvns/billdesk/db"
	_ "github.com/manojvns/billdesk/docs"
	"github.com/manojvns/billdesk/handlers"
	"github.com/manojvns/billdesk/store"
)

// @title           Billdesk API
// @version         1.0.0
// @description     API for managing GST business documents (invoices, quotations, purchase orders, waybills), stock and employees.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.basic  BasicAuth

func main() {
	// Optional .env file for local runs
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded .env file")
	}

	// Configure structured logging
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	// Open database
	database, err := db.Open()
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	// Run migrations
	if err := db.Migrate(database); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Shared stores for handlers
	handlers.DB = database
	handlers.Docs = store.NewDocumentStore(database)

	// Router setup
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// API routes with basic auth
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(handlers.BasicAuth)

		// Documents
		r.Get("/documents", handlers.ListDocuments)
		r.Post("/documents", handlers.CreateDocument)
		r.Get("/documents/{id}", handlers.GetDocument)
		r.Put("/documents/{id}", handlers.UpdateDocument)
		r.Delete("/documents/{id}", handlers.DeleteDocument)
		r.Get("/documents/{id}/html", handlers.GetDocumentHTML)
		r.Get("/documents/{id}/pdf", handlers.GetDocumentPDF)

		// Settings
		r.Get("/settings", handlers.GetSettings)
		r.Put("/settings", handlers.UpdateSettings)

		// Stock
		r.Get("/stock", handlers.ListStockItems)
		r.Post("/stock", handlers.CreateStockItem)
		r.Get("/stock/{id}", handlers.GetStockItem)
		r.Put("/stock/{id}", handlers.UpdateStockItem)
		r.Delete("/stock/{id}", handlers.DeleteStockItem)

		// Employees
		r.Get("/employees", handlers.ListEmployees)
		r.Post("/employees", handlers.CreateEmployee)
		r.Get("/employees/{id}", handlers.GetEmployee)
		r.Put("/employees/{id}", handlers.UpdateEmployee)
		r.Delete("/employees/{id}", handlers.DeleteEmployee)

		// Dashboard
		r.Get("/dashboard", handlers.GetDashboard)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := fmt.Sprintf(":%s", port)
	slog.Info("server starting", "address", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
