package main

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"

	"qr-attendance/app/database"
	"qr-attendance/app/models"
)

const qrImageSize = 256

func (cli *commandLine) addCourse(ctx context.Context, name string, teacherID int64) error {
	course := &models.Course{
		Name:      strings.TrimSpace(name),
		TeacherID: sql.NullInt64{Int64: teacherID, Valid: teacherID > 0},
	}
	if err := validate.Struct(course); err != nil {
		return err
	}
	if err := cli.repo.CreateCourse(ctx, course); err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "Course created successfully: %s, id %d\n", course.Name, course.ID)
	return nil
}

// addStudent creates the student together with its QR tag. The tag code is a
// random UUID unless one is given.
func (cli *commandLine) addStudent(ctx context.Context, first, last string, courseID int64, code, pngPath string) error {
	if code == "" {
		code = uuid.NewString()
	}

	student := &models.Student{
		FirstName: strings.TrimSpace(first),
		LastName:  strings.TrimSpace(last),
		CourseID:  sql.NullInt64{Int64: courseID, Valid: courseID > 0},
	}
	tag := &models.QRTag{Code: code}
	if err := validate.Struct(student); err != nil {
		return err
	}
	if err := validate.Struct(tag); err != nil {
		return err
	}

	if err := cli.repo.CreateStudentWithQR(ctx, student, tag); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return errors.Errorf("qr code %q is already assigned", code)
		}
		return err
	}
	fmt.Fprintf(cli.out, "Student created successfully: %s %s, id %d, qr code %s\n", student.FirstName, student.LastName, student.ID, tag.Code)

	if pngPath != "" {
		if err := qrcode.WriteFile(tag.Code, qrcode.Medium, qrImageSize, pngPath); err != nil {
			return errors.Wrap(err, "write qr image")
		}
		fmt.Fprintf(cli.out, "QR image written to %s\n", pngPath)
	}
	return nil
}
