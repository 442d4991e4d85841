package models

import "time"

// User is a registered account. PasswordHash is never serialized and never
// holds a plaintext password.
type User struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Status       string    `json:"status"`
	Gender       string    `json:"gender"`
	Phone        string    `json:"phone"`
	City         string    `json:"city"`
	Avatar       string    `json:"avatar"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
