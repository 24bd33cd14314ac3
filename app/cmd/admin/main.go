package main

import (
	"context"
	"log"
	"os"

	"qr-attendance/app/config"
	"qr-attendance/app/database"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lshortfile)

	cfg, err := config.Load()
	errAndDie(err)
	if cfg.DB.Driver != config.DriverPostgres {
		logger.Fatalf("the admin CLI needs the postgres driver, got %q", cfg.DB.Driver)
	}

	db, err := config.OpenDB(cfg.DB)
	errAndDie(err)
	defer db.Close()
	errAndDie(database.EnsureSchema(context.Background(), db))

	cli := commandLine{
		repo: database.NewStore(db),
		out:  os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("error: %s", err)
		}
		db.Close()
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
