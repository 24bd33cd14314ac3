package memory

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qr-attendance/app/database"
	"qr-attendance/app/models"
)

func TestStore_users(t *testing.T) {
	ctx := context.Background()
	store := New()

	usr := &models.User{Name: "Ana", Email: "a@x.com", Role: models.RoleTeacher, Password: "hash"}
	require.NoError(t, store.CreateUser(ctx, usr))
	assert.Equal(t, int64(1), usr.ID)

	err := store.CreateUser(ctx, &models.User{Name: "Otra", Email: "a@x.com"})
	assert.True(t, errors.Is(err, database.ErrDuplicate))

	got, err := store.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, *usr, *got)

	_, err = store.GetUserByEmail(ctx, "A@X.COM")
	assert.True(t, errors.Is(err, database.ErrNotFound), "email match is exact")

	require.NoError(t, store.UpdateUserPassword(ctx, usr.ID, "other"))
	got, _ = store.GetUserByEmail(ctx, "a@x.com")
	assert.Equal(t, "other", got.Password)
	assert.True(t, errors.Is(store.UpdateUserPassword(ctx, 42, "x"), database.ErrNotFound))
}

func TestStore_students(t *testing.T) {
	ctx := context.Background()
	store := New()

	course := &models.Course{Name: "Matemáticas"}
	require.NoError(t, store.CreateCourse(ctx, course))

	student := &models.Student{FirstName: "Luis", LastName: "Pérez", CourseID: sql.NullInt64{Int64: course.ID, Valid: true}}
	tag := &models.QRTag{Code: "CODE-1"}
	require.NoError(t, store.CreateStudentWithQR(ctx, student, tag))
	assert.Equal(t, tag.ID, student.QRID.Int64)
	assert.Equal(t, student.ID, tag.StudentID.Int64)

	err := store.CreateStudentWithQR(ctx, &models.Student{FirstName: "X", LastName: "Y"}, &models.QRTag{Code: "CODE-1"})
	assert.True(t, errors.Is(err, database.ErrDuplicate))
	assert.Len(t, store.Students(), 1)

	got, err := store.GetQRTagByCode(ctx, "CODE-1")
	require.NoError(t, err)
	assert.Equal(t, *tag, *got)
}

func TestStore_attendance(t *testing.T) {
	ctx := context.Background()
	store := New()

	for i := 0; i < 2; i++ {
		a := &models.Attendance{Status: models.Present, StudentID: sql.NullInt64{Int64: 7, Valid: true}}
		require.NoError(t, store.CreateAttendance(ctx, a))
	}

	rows := store.Attendance()
	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0].ID)
	assert.Equal(t, int64(2), rows[1].ID)
}
