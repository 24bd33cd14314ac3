package models

type User struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"nombre" db:"nombre" validate:"required,max=50"`
	Email    string `json:"email" db:"email" validate:"required,email,max=120"`
	Role     string `json:"rol" db:"rol" validate:"required,max=20"`
	Password string `json:"-" db:"contrasena"`
}
