package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/mdan/duka-golang/internal/database"
	"github.com/mdan/duka-golang/internal/handlers"
	"github.com/mdan/duka-golang/internal/routes"
)

func main() {
	// --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// --- Database Connection ---
	db, err := database.OpenDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// --- Schema Migration ---
	// Creates the users/products/sales/purchases tables on first boot.
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// --- Application Setup ---
	// All handlers share one connection pool through the stores.
	app := handlers.New(db)

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting Duka API server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
