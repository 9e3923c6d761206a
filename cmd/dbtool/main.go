package main

import (
	"context"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"pickup-coordination-service/internal/adapters/repositories"
	"pickup-coordination-service/internal/config"
	"pickup-coordination-service/internal/platform/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	dbConn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer dbConn.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(dbConn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	seedPath := config.Get("SEED_PATH", "data/seeds/guests.json")
	if _, err := os.Stat(seedPath); err != nil {
		log.Printf("No seed file at %q; skipping seed.", seedPath)
		return
	}

	log.Println("Seeding database...")
	repo := repositories.NewPostgresGuestRepository(dbConn)
	if err := repositories.SeedFromJSON(context.Background(), repo, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
