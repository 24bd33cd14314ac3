package models

import (
	"database/sql"
	"time"
)

// Attendance is one check-in of a student for a course.
type Attendance struct {
	ID        int64            `json:"id" db:"id"`
	Date      time.Time        `json:"fecha" db:"fecha"`
	Status    AttendanceStatus `json:"estado" db:"estado"`
	StudentID sql.NullInt64    `json:"estudiante_id" db:"estudiante_id"`
	CourseID  sql.NullInt64    `json:"curso_id" db:"curso_id"`
}
