package database

import (
	"context"
	"database/sql"

	"qr-attendance/app/models"
)

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, nombre, email, rol, contrasena FROM usuario WHERE email = $1`

	if err := s.db.GetContext(ctx, user, query, email); err != nil {
		return nil, mapError(err, "get user by email")
	}
	return user, nil
}

// CreateUser expects user.Password to already hold the hash.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	query := `INSERT INTO usuario (nombre, email, rol, contrasena) VALUES ($1, $2, $3, $4) RETURNING id`

	err := s.db.QueryRowxContext(ctx, query, user.Name, user.Email, user.Role, user.Password).Scan(&user.ID)
	return mapError(err, "create user")
}

func (s *Store) UpdateUserPassword(ctx context.Context, userID int64, hashedPassword string) error {
	query := `UPDATE usuario SET contrasena = $1 WHERE id = $2`

	res, err := s.db.ExecContext(ctx, query, hashedPassword, userID)
	if err != nil {
		return mapError(err, "update user password")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return mapError(sql.ErrNoRows, "update user password")
	}
	return nil
}
