package main

import (
	"context"
	"log"

	"qr-attendance/app/config"
	"qr-attendance/app/database"
)

func main() {
	log.Println("Starting schema migration...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	if cfg.DB.Driver != config.DriverPostgres {
		log.Fatalf("Nothing to migrate for database driver %q", cfg.DB.Driver)
	}

	db, err := config.OpenDB(cfg.DB)
	if err != nil {
		log.Fatal("Failed to get database instance:", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		log.Fatal(err)
	}
	log.Println("Schema migration completed successfully!")
}
