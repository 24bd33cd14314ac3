package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qr-attendance/app/config"
	"qr-attendance/app/database"
	"qr-attendance/app/database/memory"
	"qr-attendance/app/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	var store server.Store
	switch cfg.DB.Driver {
	case config.DriverMemory:
		log.Println("Using in-memory storage; data is lost on exit")
		store = memory.New()
	default:
		db, err := config.OpenDB(cfg.DB)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer db.Close()

		// Create missing tables once, before serving requests
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err = database.EnsureSchema(ctx, db)
		cancel()
		if err != nil {
			log.Fatal("Failed to ensure database schema:", err)
		}
		store = database.NewStore(db)
	}

	app := server.New(cfg, store)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("Server shutdown failed: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("Server starting on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatal(err)
	}
}
