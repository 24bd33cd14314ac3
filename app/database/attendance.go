package database

import (
	"context"

	"qr-attendance/app/models"
)

func (s *Store) CreateAttendance(ctx context.Context, attendance *models.Attendance) error {
	query := `INSERT INTO asistencia (fecha, estado, estudiante_id, curso_id) VALUES ($1, $2, $3, $4) RETURNING id`

	err := s.db.QueryRowxContext(ctx, query,
		attendance.Date, string(attendance.Status), attendance.StudentID, attendance.CourseID,
	).Scan(&attendance.ID)
	return mapError(err, "create attendance")
}
