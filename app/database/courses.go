package database

import (
	"context"

	"qr-attendance/app/models"
)

func (s *Store) CreateCourse(ctx context.Context, course *models.Course) error {
	query := `INSERT INTO curso (nombre, docente_id) VALUES ($1, $2) RETURNING id`

	err := s.db.QueryRowxContext(ctx, query, course.Name, course.TeacherID).Scan(&course.ID)
	return mapError(err, "create course")
}
