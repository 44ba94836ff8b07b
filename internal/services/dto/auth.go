package dto

import "realestate_backend/internal/models"

type SignupRequest struct {
	Name       string `json:"name" validate:"required"`
	Phone      string `json:"phone" validate:"required,is-phone"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=5"`
	ProductKey string `json:"productKey,omitempty"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ProductKeyRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	UserType models.UserType `json:"userType" validate:"required,is-user-type"`
}

// TokenResponse is returned by signup and signin.
type TokenResponse struct {
	Token string `json:"token"`
}

type ProductKeyResponse struct {
	ProductKey string `json:"productKey"`
}
