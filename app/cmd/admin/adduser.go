package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"qr-attendance/app/database"
	"qr-attendance/app/models"
	"qr-attendance/app/services"
)

func (cli *commandLine) addUser(ctx context.Context, name, email, role, pwd string) error {
	user := &models.User{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
		Role:  role,
	}
	if err := validate.Struct(user); err != nil {
		return err
	}

	hash, err := services.HashPassword(pwd)
	if err != nil {
		return err
	}
	user.Password = hash

	if err := cli.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return errors.Errorf("a user with email %s already exists", user.Email)
		}
		return err
	}

	fmt.Fprintf(cli.out, "User created successfully: %s (%s), id %d\n", user.Name, user.Email, user.ID)
	return nil
}

func (cli *commandLine) resetPassword(ctx context.Context, email, pwd string) error {
	user, err := cli.repo.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return err
	}

	hash, err := services.HashPassword(pwd)
	if err != nil {
		return err
	}
	if err := cli.repo.UpdateUserPassword(ctx, user.ID, hash); err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "Password updated for %s\n", user.Email)
	return nil
}
