// Package auth provides password hashing, token issuance/validation, and the
// authentication middleware that gates job routes.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// defaultCost is the bcrypt work factor used in production.
const defaultCost = 12

// PasswordService provides bcrypt hashing and verification.
//
// The cost is injectable so tests can use bcrypt.MinCost and skip the
// ~250ms-per-hash overhead of the production setting.
type PasswordService struct {
	cost int
}

// NewPasswordService creates a PasswordService with the given cost.
// A cost of 0 (or anything below bcrypt.MinCost) selects the default.
func NewPasswordService(cost int) *PasswordService {
	if cost < bcrypt.MinCost {
		cost = defaultCost
	}
	return &PasswordService{cost: cost}
}

// Hash hashes the given plaintext password with bcrypt.
//
// The output embeds the salt and cost, so the same plaintext produces a
// different digest on every call and no separate salt column is needed.
// Plaintexts over 72 bytes are rejected rather than silently truncated
// (a bcrypt limit).
func (p *PasswordService) Hash(plaintext string) (string, error) {
	if len(plaintext) > 72 {
		return "", fmt.Errorf("auth: password must be 72 bytes or fewer")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hashing password: %w", err)
	}

	return string(hashed), nil
}

// Verify checks whether a plaintext password matches a stored bcrypt digest.
// Returns nil on a match. A wrong password and a malformed digest both come
// back as a verification failure; the comparison itself is constant-time
// inside bcrypt.
func (p *PasswordService) Verify(hash, plaintext string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return fmt.Errorf("auth: invalid password")
		}
		return fmt.Errorf("auth: comparing password hash: %w", err)
	}
	return nil
}
