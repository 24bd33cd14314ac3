package services

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/pkg/errors"

	"qr-attendance/app/database"
	"qr-attendance/app/models"
)

// DefaultCourseID is written on every scan regardless of the student's own
// course. This is a known placeholder: the intended course resolution is
// undecided, so the fixed id is kept rather than guessed.
const DefaultCourseID int64 = 1

var ErrInvalidCode = errors.New("invalid qr code")

type AttendanceRepository interface {
	GetQRTagByCode(ctx context.Context, code string) (*models.QRTag, error)
	CreateAttendance(ctx context.Context, attendance *models.Attendance) error
}

type AttendanceService struct {
	repo     AttendanceRepository
	courseID int64
	status   models.AttendanceStatus
	now      func() time.Time
}

// NewAttendanceService falls back to DefaultCourseID and models.Present when
// courseID or status are zero.
func NewAttendanceService(repo AttendanceRepository, courseID int64, status models.AttendanceStatus) *AttendanceService {
	if courseID <= 0 {
		courseID = DefaultCourseID
	}
	if status == "" {
		status = models.Present
	}
	return &AttendanceService{
		repo:     repo,
		courseID: courseID,
		status:   status,
		now:      time.Now,
	}
}

// Register appends one attendance row for the student owning code. Repeated
// scans are not deduplicated.
func (svc *AttendanceService) Register(ctx context.Context, code string) (*models.Attendance, error) {
	if err := validate.Var(code, "required,max=255"); err != nil || !storable(code) {
		return nil, ErrInvalidCode
	}

	tag, err := svc.repo.GetQRTagByCode(ctx, code)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrInvalidCode
		}
		return nil, errors.Wrap(err, "register attendance")
	}

	attendance := &models.Attendance{
		Date:      svc.now().UTC(),
		Status:    svc.status,
		StudentID: tag.StudentID,
		CourseID:  sql.NullInt64{Int64: svc.courseID, Valid: true},
	}
	if err := svc.repo.CreateAttendance(ctx, attendance); err != nil {
		return nil, errors.Wrap(err, "register attendance")
	}

	log.Printf("Attendance %d registered for student %d in course %d", attendance.ID, attendance.StudentID.Int64, svc.courseID)
	return attendance, nil
}
