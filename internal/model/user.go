// Package model defines the data structures used throughout the application.
package model

import "time"

// User represents a registered account.
//
// PasswordHash holds the bcrypt digest of the user's password. The `json:"-"`
// tag keeps it out of every API response — the plaintext only crosses the
// wire inbound, during register and login.
//
// Email and Username are each unique across all accounts (enforced by the
// database). A user record is never mutated after registration.
type User struct {
	ID           string    `json:"id"        db:"id"`
	Username     string    `json:"username"  db:"username"`
	Email        string    `json:"email"     db:"email"`
	PasswordHash string    `json:"-"         db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
