// Package service defines the stateless collaborators the use cases depend on.
package service

// PasswordHasher turns plaintext passwords into salted digests and compares them.
type PasswordHasher interface {
	// Hash returns a salted digest of password. Two calls never return the same digest.
	Hash(password string) (string, error)

	// Check reports whether password matches digest. A malformed digest never matches.
	Check(password, digest string) bool
}
