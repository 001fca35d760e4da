package domain

import "time"

// User описывает учетную запись покупателя.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	FullName     string
	IsStaff      bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

func NewUser(username, email, passwordHash, fullName string) *User {
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     fullName,
	}
}
