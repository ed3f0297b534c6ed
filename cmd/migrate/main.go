package main

import (
	"context"
	"log"
	"os"

	"evident/adapters/postgres"
	"evident/internal/migration"
)

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if len(os.Args) > 1 {
		databaseURL = os.Args[1]
	}
	if databaseURL == "" {
		log.Fatal("Usage: migrate <database_url> (or set DATABASE_URL)")
	}

	db, err := postgres.Open(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	runner := migration.NewRunner()
	if err := runner.Run(context.Background(), db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Printf("Schema version %s applied", runner.Version())
}
