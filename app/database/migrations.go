package database

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type schemaStep struct {
	name  string
	query string
}

// schemaSteps is ordered by foreign key dependency. The estudiante -> qr link
// is circular, so its constraint is added last.
var schemaSteps = []schemaStep{
	{
		name: "usuario table",
		query: `
		CREATE TABLE IF NOT EXISTS usuario (
			id SERIAL PRIMARY KEY,
			nombre VARCHAR(50) NOT NULL,
			email VARCHAR(120) NOT NULL UNIQUE,
			rol VARCHAR(20) NOT NULL,
			contrasena VARCHAR(128) NOT NULL
		)`,
	},
	{
		name: "curso table",
		query: `
		CREATE TABLE IF NOT EXISTS curso (
			id SERIAL PRIMARY KEY,
			nombre VARCHAR(50) NOT NULL,
			docente_id INTEGER REFERENCES usuario(id)
		)`,
	},
	{
		name: "estudiante table",
		query: `
		CREATE TABLE IF NOT EXISTS estudiante (
			id SERIAL PRIMARY KEY,
			nombre VARCHAR(50) NOT NULL,
			apellido VARCHAR(50) NOT NULL,
			curso_id INTEGER REFERENCES curso(id),
			qr_id INTEGER
		)`,
	},
	{
		name: "qr table",
		query: `
		CREATE TABLE IF NOT EXISTS qr (
			id SERIAL PRIMARY KEY,
			estudiante_id INTEGER REFERENCES estudiante(id),
			qr_code VARCHAR(255) NOT NULL UNIQUE
		)`,
	},
	{
		name: "asistencia table",
		query: `
		CREATE TABLE IF NOT EXISTS asistencia (
			id SERIAL PRIMARY KEY,
			fecha TIMESTAMP NOT NULL,
			estado VARCHAR(20) NOT NULL,
			estudiante_id INTEGER REFERENCES estudiante(id),
			curso_id INTEGER REFERENCES curso(id)
		)`,
	},
	{
		name: "estudiante.qr_id foreign key",
		query: `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.table_constraints
				WHERE table_name = 'estudiante'
				AND constraint_name = 'estudiante_qr_id_fkey'
			) THEN
				ALTER TABLE estudiante
					ADD CONSTRAINT estudiante_qr_id_fkey FOREIGN KEY (qr_id) REFERENCES qr(id);
				RAISE NOTICE 'Added estudiante_qr_id_fkey';
			END IF;
		END $$;`,
	},
}

// EnsureSchema creates any missing table. Every step is guarded, so running it
// against an existing database is a no-op.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	log.Println("Ensuring database schema...")

	for _, step := range schemaSteps {
		if _, err := db.ExecContext(ctx, step.query); err != nil {
			log.Printf("Failed to apply %s: %v", step.name, err)
			return errors.Wrapf(err, "ensure schema: %s", step.name)
		}
	}

	log.Println("Database schema is up to date")
	return nil
}
