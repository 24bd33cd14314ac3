package database

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"qr-attendance/app/models"
)

// CreateStudentWithQR inserts the student and its QR tag and links both rows
// in one transaction. IDs are written back into student and tag.
func (s *Store) CreateStudentWithQR(ctx context.Context, student *models.Student, tag *models.QRTag) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin create student")
	}
	defer tx.Rollback()

	query := `INSERT INTO estudiante (nombre, apellido, curso_id) VALUES ($1, $2, $3) RETURNING id`
	if err := tx.QueryRowxContext(ctx, query, student.FirstName, student.LastName, student.CourseID).Scan(&student.ID); err != nil {
		return mapError(err, "create student")
	}

	tag.StudentID = sql.NullInt64{Int64: student.ID, Valid: true}
	query = `INSERT INTO qr (estudiante_id, qr_code) VALUES ($1, $2) RETURNING id`
	if err := tx.QueryRowxContext(ctx, query, tag.StudentID, tag.Code).Scan(&tag.ID); err != nil {
		return mapError(err, "create qr tag")
	}

	student.QRID = sql.NullInt64{Int64: tag.ID, Valid: true}
	query = `UPDATE estudiante SET qr_id = $1 WHERE id = $2`
	if _, err := tx.ExecContext(ctx, query, student.QRID, student.ID); err != nil {
		return mapError(err, "link student qr tag")
	}

	return errors.Wrap(tx.Commit(), "commit create student")
}
