// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that can log in with email and password.
type User struct {
	ID           int64     // Store-assigned identifier.
	Email        string    // Unique login identifier, compared case-sensitively.
	PasswordHash string    // bcrypt digest; the plaintext is never stored.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// UserChanges carries the optional fields of a partial user update.
// A nil field is left untouched.
type UserChanges struct {
	Email    *string
	Password *string
}

// IsEmpty reports whether no field was supplied.
func (c UserChanges) IsEmpty() bool {
	return c.Email == nil && c.Password == nil
}
