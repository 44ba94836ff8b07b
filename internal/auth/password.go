package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password signup accepts.
const MinPasswordLength = 5

// HashPassword creates a bcrypt hash of password.
func (c *Credentials) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), c.bcryptCost)
	return string(bytes), err
}

// CheckPasswordHash reports whether password matches hash.
func (c *Credentials) CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword checks the minimum password length.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return errors.New("password must be at least 5 characters long")
	}
	return nil
}
