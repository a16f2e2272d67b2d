package entity

import "time"

type User struct {
	Id           uint
	Name         string
	LastName     *string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
