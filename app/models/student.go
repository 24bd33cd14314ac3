package models

import "database/sql"

// Student is enrolled in one course and carries at most one QR tag.
type Student struct {
	ID        int64         `json:"id" db:"id"`
	FirstName string        `json:"nombre" db:"nombre" validate:"required,max=50"`
	LastName  string        `json:"apellido" db:"apellido" validate:"required,max=50"`
	CourseID  sql.NullInt64 `json:"curso_id" db:"curso_id"`
	QRID      sql.NullInt64 `json:"qr_id" db:"qr_id"`
}
