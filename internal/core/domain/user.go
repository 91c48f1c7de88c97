package domain

import (
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrNotAdmin = errors.New("admin access required")
var ErrSessionRevoked = errors.New("session revoked")

// User models an authenticated actor. Accounts exist only to back the
// admin area; visitors submitting the intake form are never Users.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AdminProfile authorizes a user to access the admin area. Authentication
// alone is not enough: a session whose user has no matching profile row is
// forcibly terminated by the admin gate.
type AdminProfile struct {
	ID       string `json:"id"` // same identifier as the backing User
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role"`
}
