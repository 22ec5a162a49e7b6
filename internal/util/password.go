package util

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// VerifyPassword checks a login attempt against the stored credential.
// Rows written through the plain CRUD endpoints hold the password as given;
// rows migrated from systems that hashed carry a bcrypt digest. Both are
// accepted: bcrypt when the stored value looks like a bcrypt hash, constant
// time comparison otherwise.
func VerifyPassword(stored, given string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

// HashPassword produces a bcrypt digest, used when an operator opts in to
// hashed credentials.
func HashPassword(plain string) (string, error) {
	const cost = 12
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
