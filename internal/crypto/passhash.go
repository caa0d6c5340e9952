// Package crypto implements server-side password hashing and verification.
package crypto

import "golang.org/x/crypto/bcrypt"

// bcryptCost is tuned for server-side hashing; the per-password salt is
// generated by bcrypt and embedded in the resulting hash string.
const bcryptCost = bcrypt.DefaultCost

// HashPassword returns the bcrypt hash of password with a fresh random salt.
// Two calls for the same password produce different hashes.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword verifies password against a stored bcrypt hash.
// A malformed hash verifies as false, never as an error.
func VerifyPassword(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
