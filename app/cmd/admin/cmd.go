package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"qr-attendance/app/models"
)

var (
	readPasswordFunc = func() ([]byte, error) { return term.ReadPassword(int(os.Stdin.Fd())) } // mockable

	validate = validator.New()

	errHelp          = errors.New("help provided")
	errEmptyPassword = errors.New("password must not be empty")
)

type repository interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUserPassword(ctx context.Context, userID int64, hashedPassword string) error
	CreateCourse(ctx context.Context, course *models.Course) error
	CreateStudentWithQR(ctx context.Context, student *models.Student, tag *models.QRTag) error
}

type commandLine struct {
	repo repository
	out  io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  adduser -email EMAIL -name NAME [-role ROLE]   - create a user; the password is prompted")
	fmt.Fprintln(cli.out, "  resetpassword -email EMAIL                     - reset a user's password; the password is prompted")
	fmt.Fprintln(cli.out, "  addcourse -name NAME [-teacher USER_ID]        - create a course")
	fmt.Fprintln(cli.out, "  addstudent -first NAME -last NAME [-course ID] [-code CODE] [-png FILE]")
	fmt.Fprintln(cli.out, "                                                 - create a student and its QR tag")
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}
	ctx := context.Background()

	switch args[1] {
	case "adduser":
		fs := cli.newFlagSet("adduser")
		email := fs.String("email", "", "The user's email, used to log in.")
		name := fs.String("name", "", "The user's display name.")
		role := fs.String("role", models.RoleTeacher, "The user's role.")
		if err := fs.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *email == "" || *name == "" {
			fs.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		return cli.addUser(ctx, *name, *email, *role, pwd)

	case "resetpassword":
		fs := cli.newFlagSet("resetpassword")
		email := fs.String("email", "", "The user's email. The password will be prompted next.")
		if err := fs.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *email == "" {
			fs.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		return cli.resetPassword(ctx, *email, pwd)

	case "addcourse":
		fs := cli.newFlagSet("addcourse")
		name := fs.String("name", "", "The course name.")
		teacherID := fs.Int64("teacher", 0, "Id of the user teaching the course.")
		if err := fs.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *name == "" {
			fs.Usage()
			return errHelp
		}
		return cli.addCourse(ctx, *name, *teacherID)

	case "addstudent":
		fs := cli.newFlagSet("addstudent")
		first := fs.String("first", "", "The student's first name.")
		last := fs.String("last", "", "The student's last name.")
		courseID := fs.Int64("course", 0, "Id of the student's course.")
		code := fs.String("code", "", "QR code value. A random one is generated when empty.")
		png := fs.String("png", "", "Write the QR code image to this PNG file.")
		if err := fs.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *first == "" || *last == "" {
			fs.Usage()
			return errHelp
		}
		return cli.addStudent(ctx, *first, *last, *courseID, *code, *png)

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) promptPassword() (string, error) {
	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc()
	fmt.Fprintln(cli.out)
	if err != nil {
		return "", err
	}
	if len(pwd) == 0 {
		return "", errEmptyPassword
	}
	return string(pwd), nil
}
