package domain

import (
	"errors"
	"time"
)

// RecordStatus is the lifecycle state of a stored record. Records are never
// physically removed; deletion flips the status and every query filters on it.
type RecordStatus string

const (
	StatusActive  RecordStatus = "active"
	StatusDeleted RecordStatus = "deleted"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")
var ErrTargetRequired = errors.New("either user id or email is required")

// User models an account owned by the user service. PasswordHash never leaves
// the service boundary.
type User struct {
	ID           int64        `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	IsAdmin      bool         `json:"is_admin"`
	Status       RecordStatus `json:"-"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
