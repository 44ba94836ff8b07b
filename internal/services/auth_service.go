package services

import (
	"realestate_backend/internal/auth"
	"realestate_backend/internal/models"
	"realestate_backend/internal/repositories"
	"realestate_backend/internal/services/dto"
	"realestate_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Signup(db *gorm.DB, userType models.UserType, req *dto.SignupRequest) (*dto.TokenResponse, error)
	Signin(db *gorm.DB, req *dto.SigninRequest) (*dto.TokenResponse, error)
	GenerateProductKey(req *dto.ProductKeyRequest) (*dto.ProductKeyResponse, error)
	Me(identity *auth.Identity) *auth.Identity
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	credentials CredentialService
}

func NewAuthService(userRepo repositories.UserRepository, credentials CredentialService) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		credentials: credentials,
	}
}

// Signup registers a user of userType. Every role but BUYER must present a
// product key derived for the same email and role; the key is checked before
// anything is written.
func (s *AuthServiceImpl) Signup(db *gorm.DB, userType models.UserType, req *dto.SignupRequest) (*dto.TokenResponse, error) {
	if !userType.IsValid() {
		return nil, apperrors.NewBadRequestError("Invalid user type")
	}

	_, err := s.userRepo.FindByEmail(db, req.Email)
	if err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}
	if !apperrors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	if userType != models.UserTypeBuyer {
		if req.ProductKey == "" || !s.credentials.CheckProductKey(req.Email, userType, req.ProductKey) {
			return nil, apperrors.ErrUnauthorized
		}
	}

	hashedPassword, err := s.credentials.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: hashedPassword,
		UserType: userType,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return s.issueToken(user)
}

// Signin answers ErrInvalidCredentials for both an unknown email and a wrong
// password.
func (s *AuthServiceImpl) Signin(db *gorm.DB, req *dto.SigninRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !s.credentials.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *AuthServiceImpl) GenerateProductKey(req *dto.ProductKeyRequest) (*dto.ProductKeyResponse, error) {
	if !req.UserType.IsValid() {
		return nil, apperrors.NewBadRequestError("Invalid user type")
	}

	key, err := s.credentials.GenerateProductKey(req.Email, req.UserType)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.ProductKeyResponse{ProductKey: key}, nil
}

// Me echoes the decoded token payload.
func (s *AuthServiceImpl) Me(identity *auth.Identity) *auth.Identity {
	return identity
}

func (s *AuthServiceImpl) issueToken(user *models.User) (*dto.TokenResponse, error) {
	token, err := s.credentials.GenerateToken(user.ID, user.Name)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.TokenResponse{Token: token}, nil
}
