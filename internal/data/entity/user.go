package entity

type User struct {
	Base
	Email        string  `db:"email"`
	PasswordHash string  `db:"password"`
	DisplayName  string  `db:"display_name"`
	Phone        *string `db:"phone"`
	IsActive     bool    `db:"is_active"`
}
