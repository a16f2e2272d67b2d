package dto

import "time"

type RegisterRequest struct {
	Name     string  `json:"name" validate:"required"`
	LastName *string `json:"last_name"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse is the external user shape. The password hash never leaves
// the service layer.
type UserResponse struct {
	Id        uint      `json:"id"`
	Name      string    `json:"name"`
	LastName  *string   `json:"last_name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
