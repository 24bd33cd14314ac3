package database

import "github.com/jmoiron/sqlx"

// Store is the PostgreSQL implementation of the repositories used by the
// services and the admin CLI.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}
