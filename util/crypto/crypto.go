// Package crypto provides password hashing and verification for account
// credentials.
package crypto

import (
	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt work factor used for new password hashes.
const hashCost = 10

// HashPassword generates a salted bcrypt hash of the given password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	return string(hash), err
}

// CheckPasswordHash verifies if the given password matches the bcrypt hash.
// A malformed stored hash yields false, never an error.
func CheckPasswordHash(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
