// Package shortid generates short opaque identifiers for persisted entities.
package shortid

import "crypto/rand"

// alphabet is URL-safe and case-sensitive.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Length of generated identifiers.
const Length = 10

// New returns a fresh random identifier of Length characters.
func New() (string, error) {
	b := make([]byte, Length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}
	return string(b), nil
}
