package services

import "realestate_backend/internal/models"

// CredentialService is the subset of auth.Credentials the services rely on.
type CredentialService interface {
	HashPassword(password string) (string, error)
	CheckPasswordHash(password, hash string) bool
	GenerateToken(id uint, name string) (string, error)
	GenerateProductKey(email string, userType models.UserType) (string, error)
	CheckProductKey(email string, userType models.UserType, productKey string) bool
}
