// Package memory keeps every table in process memory. It satisfies the same
// repository contracts as database.Store and is used by tests and by the
// "memory" database driver.
package memory

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"qr-attendance/app/database"
	"qr-attendance/app/models"
)

type Store struct {
	mu sync.RWMutex

	users      map[int64]*models.User
	courses    map[int64]*models.Course
	students   map[int64]*models.Student
	tags       map[int64]*models.QRTag
	attendance map[int64]*models.Attendance

	userSeq, courseSeq, studentSeq, tagSeq, attendanceSeq int64
}

func New() *Store {
	return &Store{
		users:      make(map[int64]*models.User),
		courses:    make(map[int64]*models.Course),
		students:   make(map[int64]*models.Student),
		tags:       make(map[int64]*models.QRTag),
		attendance: make(map[int64]*models.Attendance),
	}
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			usr := *u
			return &usr, nil
		}
	}
	return nil, errors.Wrap(database.ErrNotFound, "get user by email")
}

func (s *Store) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return errors.Wrap(database.ErrDuplicate, "create user: usuario_email_key")
		}
	}
	s.userSeq++
	user.ID = s.userSeq
	usr := *user
	s.users[usr.ID] = &usr
	return nil
}

func (s *Store) UpdateUserPassword(_ context.Context, userID int64, hashedPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return errors.Wrap(database.ErrNotFound, "update user password")
	}
	u.Password = hashedPassword
	return nil
}

func (s *Store) CreateCourse(_ context.Context, course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.courseSeq++
	course.ID = s.courseSeq
	c := *course
	s.courses[c.ID] = &c
	return nil
}

func (s *Store) CreateStudentWithQR(_ context.Context, student *models.Student, tag *models.QRTag) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findTag(tag.Code) != nil {
		return errors.Wrap(database.ErrDuplicate, "create qr tag: qr_qr_code_key")
	}

	s.studentSeq++
	s.tagSeq++
	student.ID = s.studentSeq
	tag.ID = s.tagSeq
	tag.StudentID = sql.NullInt64{Int64: student.ID, Valid: true}
	student.QRID = sql.NullInt64{Int64: tag.ID, Valid: true}

	st, t := *student, *tag
	s.students[st.ID] = &st
	s.tags[t.ID] = &t
	return nil
}

// AddQRTag stores a tag without a student row, the way fixtures seed codes
// for arbitrary student ids.
func (s *Store) AddQRTag(_ context.Context, tag *models.QRTag) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findTag(tag.Code) != nil {
		return errors.Wrap(database.ErrDuplicate, "create qr tag: qr_qr_code_key")
	}
	s.tagSeq++
	tag.ID = s.tagSeq
	t := *tag
	s.tags[t.ID] = &t
	return nil
}

func (s *Store) GetQRTagByCode(_ context.Context, code string) (*models.QRTag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if t := s.findTag(code); t != nil {
		tag := *t
		return &tag, nil
	}
	return nil, errors.Wrap(database.ErrNotFound, "get qr tag by code")
}

func (s *Store) findTag(code string) *models.QRTag {
	for _, t := range s.tags {
		if t.Code == code {
			return t
		}
	}
	return nil
}

func (s *Store) CreateAttendance(_ context.Context, attendance *models.Attendance) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attendanceSeq++
	attendance.ID = s.attendanceSeq
	a := *attendance
	s.attendance[a.ID] = &a
	return nil
}

// Attendance returns every attendance row ordered by id.
func (s *Store) Attendance() []models.Attendance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]models.Attendance, 0, len(s.attendance))
	for _, a := range s.attendance {
		rows = append(rows, *a)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows
}

// Students returns every student row ordered by id.
func (s *Store) Students() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]models.Student, 0, len(s.students))
	for _, st := range s.students {
		rows = append(rows, *st)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows
}
