package services

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"qr-attendance/app/database/memory"
	"qr-attendance/app/models"
)

func TestMain(m *testing.M) {
	bcryptCost = bcrypt.MinCost
	os.Exit(m.Run())
}

func createUser(t *testing.T, store *memory.Store, name, email, pwd string) *models.User {
	hash, err := HashPassword(pwd)
	if err != nil {
		t.Fatalf("createUser() failed: %v", err)
	}
	usr := &models.User{Name: name, Email: email, Role: models.RoleTeacher, Password: hash}
	if err := store.CreateUser(context.Background(), usr); err != nil {
		t.Fatalf("createUser() failed: %v", err)
	}
	return usr
}

func createTag(t *testing.T, store *memory.Store, code string, studentID int64) {
	tag := &models.QRTag{Code: code, StudentID: sql.NullInt64{Int64: studentID, Valid: true}}
	if err := store.AddQRTag(context.Background(), tag); err != nil {
		t.Fatalf("createTag() failed: %v", err)
	}
}

type failingRepo struct{ err error }

func (r failingRepo) GetUserByEmail(context.Context, string) (*models.User, error) {
	return nil, r.err
}

func (r failingRepo) GetQRTagByCode(context.Context, string) (*models.QRTag, error) {
	return nil, r.err
}

func (r failingRepo) CreateAttendance(context.Context, *models.Attendance) error {
	return r.err
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)
	assert.True(t, CheckPasswordHash("secret", hash))
	assert.False(t, CheckPasswordHash("Secret", hash))
	assert.False(t, CheckPasswordHash("secret", "not-a-hash"))
}

func TestAuthService_Login(t *testing.T) {
	store := memory.New()
	usr := createUser(t, store, "Ana", "a@x.com", "secret")
	svc := NewAuthService(store)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid", email: "a@x.com", password: "secret"},
		{name: "wrong password", email: "a@x.com", password: "wrong", wantErr: ErrAuthenticationFailed},
		{name: "unknown email", email: "b@x.com", password: "secret", wantErr: ErrAuthenticationFailed},
		{name: "email is case sensitive", email: "A@X.COM", password: "secret", wantErr: ErrAuthenticationFailed},
		{name: "empty email", email: "", password: "secret", wantErr: ErrAuthenticationFailed},
		{name: "empty password", email: "a@x.com", password: "", wantErr: ErrAuthenticationFailed},
		{name: "nul byte in email", email: "a@x.com\x00", password: "secret", wantErr: ErrAuthenticationFailed},
		{name: "invalid utf-8 email", email: "\xff", password: "secret", wantErr: ErrAuthenticationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, usr.ID, got.ID)
			assert.Equal(t, usr.Name, got.Name)
		})
	}
}

func TestAuthService_Login_storageError(t *testing.T) {
	boom := errors.New("connection refused")
	svc := NewAuthService(failingRepo{err: boom})

	_, err := svc.Login(context.Background(), "a@x.com", "secret")
	assert.True(t, errors.Is(err, boom))
	assert.NotEqual(t, ErrAuthenticationFailed, err)
}

func TestAuthService_Login_unstorableEmail(t *testing.T) {
	svc := NewAuthService(failingRepo{err: errors.New("pq: invalid byte sequence for encoding \"UTF8\"")})

	for _, email := range []string{"a@x.com\x00", "\xff@x.com"} {
		_, err := svc.Login(context.Background(), email, "secret")
		assert.Equal(t, ErrAuthenticationFailed, err, "email %q", email)
	}
}

func TestAttendanceService_Register(t *testing.T) {
	store := memory.New()
	createTag(t, store, "ABC123", 7)
	svc := NewAttendanceService(store, 0, "")

	before := time.Now().UTC()
	a, err := svc.Register(context.Background(), "ABC123")
	after := time.Now().UTC()
	require.NoError(t, err)

	rows := store.Attendance()
	require.Len(t, rows, 1)
	assert.Equal(t, *a, rows[0])
	assert.Equal(t, models.Present, a.Status)
	assert.Equal(t, sql.NullInt64{Int64: 7, Valid: true}, a.StudentID)
	assert.Equal(t, sql.NullInt64{Int64: DefaultCourseID, Valid: true}, a.CourseID)
	assert.Equal(t, time.UTC, a.Date.Location())
	assert.False(t, a.Date.Before(before))
	assert.False(t, a.Date.After(after))
}

func TestAttendanceService_Register_notIdempotent(t *testing.T) {
	store := memory.New()
	createTag(t, store, "ABC123", 7)
	svc := NewAttendanceService(store, DefaultCourseID, models.Present)

	fixed := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	for i := 0; i < 3; i++ {
		_, err := svc.Register(context.Background(), "ABC123")
		require.NoError(t, err)
	}

	rows := store.Attendance()
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Equal(t, fixed, row.Date)
	}
}

func TestAttendanceService_Register_invalidCode(t *testing.T) {
	store := memory.New()
	createTag(t, store, "ABC123", 7)
	svc := NewAttendanceService(store, 0, "")

	long := make([]byte, 256)
	for i := range long {
		long[i] = 'A'
	}

	for _, code := range []string{"ZZZ", "", "abc123", " ABC123", string(long), "ABC\x00", "\xff"} {
		_, err := svc.Register(context.Background(), code)
		assert.Equal(t, ErrInvalidCode, err, "code %q", code)
	}
	assert.Empty(t, store.Attendance())
}

func TestAttendanceService_Register_unstorableCode(t *testing.T) {
	svc := NewAttendanceService(failingRepo{err: errors.New("pq: invalid byte sequence for encoding \"UTF8\"")}, 0, "")

	for _, code := range []string{"ABC\x00", "\xff", "ABC\xc3"} {
		_, err := svc.Register(context.Background(), code)
		assert.Equal(t, ErrInvalidCode, err, "code %q", code)
	}
}

func TestAttendanceService_Register_configuredCourse(t *testing.T) {
	store := memory.New()
	createTag(t, store, "ABC123", 7)
	svc := NewAttendanceService(store, 4, "Tarde")

	a, err := svc.Register(context.Background(), "ABC123")
	require.NoError(t, err)
	assert.Equal(t, int64(4), a.CourseID.Int64)
	assert.Equal(t, models.AttendanceStatus("Tarde"), a.Status)
}

func TestAttendanceService_Register_storageError(t *testing.T) {
	boom := errors.New("connection refused")
	svc := NewAttendanceService(failingRepo{err: boom}, 0, "")

	_, err := svc.Register(context.Background(), "ABC123")
	assert.True(t, errors.Is(err, boom))
}
