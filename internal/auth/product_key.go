package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"realestate_backend/internal/models"
)

// productKeyInput builds the digest of "email-userType-secret". The digest keeps
// the bcrypt input under its 72 byte limit for any email length.
func (c *Credentials) productKeyInput(email string, userType models.UserType) []byte {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s-%s-%s", email, userType, c.productKeySecret)))
	return []byte(hex.EncodeToString(sum[:]))
}

// GenerateProductKey derives the key that lets email sign up as userType.
func (c *Credentials) GenerateProductKey(email string, userType models.UserType) (string, error) {
	key, err := bcrypt.GenerateFromPassword(c.productKeyInput(email, userType), c.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to derive product key: %w", err)
	}
	return string(key), nil
}

// CheckProductKey reports whether productKey was derived for email and userType.
func (c *Credentials) CheckProductKey(email string, userType models.UserType, productKey string) bool {
	if productKey == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(productKey), c.productKeyInput(email, userType))
	return err == nil
}
