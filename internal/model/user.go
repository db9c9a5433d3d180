// Package model defines domain entities for the application.
package model

import "time"

// User represents a registered account.
// The password hash is an opaque argon2id digest and never leaves the process.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
