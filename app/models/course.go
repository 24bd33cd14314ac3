package models

import "database/sql"

type Course struct {
	ID        int64         `json:"id" db:"id"`
	Name      string        `json:"nombre" db:"nombre" validate:"required,max=50"`
	TeacherID sql.NullInt64 `json:"docente_id" db:"docente_id"`
}
