package models

import "database/sql"

// QRTag maps a unique scanned code to a student.
type QRTag struct {
	ID        int64         `json:"id" db:"id"`
	StudentID sql.NullInt64 `json:"estudiante_id" db:"estudiante_id"`
	Code      string        `json:"qr_code" db:"qr_code" validate:"required,max=255"`
}
