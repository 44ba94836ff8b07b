package services

import (
	"context"

	"realestate_backend/internal/auth"
	"realestate_backend/internal/logger"
	"realestate_backend/internal/models"
	"realestate_backend/internal/repositories"
	"realestate_backend/internal/services/dto"
	"realestate_backend/internal/types"
	"realestate_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// InquiryNotifier tells a realtor about a new inquiry. Failures are logged by
// the caller and never fail the inquiry itself.
type InquiryNotifier interface {
	NotifyInquiry(ctx context.Context, n *dto.InquiryNotification) error
}

type HomeService interface {
	GetHomes(db *gorm.DB, filters types.HomeFilters) ([]*dto.HomeResponse, error)
	GetHome(db *gorm.DB, id uint) (*dto.HomeResponse, error)
	CreateHome(db *gorm.DB, req *dto.CreateHomeRequest, realtorID uint) (*dto.HomeResponse, error)
	UpdateHome(db *gorm.DB, id uint, req *dto.UpdateHomeRequest) (*dto.HomeResponse, error)
	DeleteHome(db *gorm.DB, id uint) error
	GetRealtorByHome(db *gorm.DB, id uint) (*dto.ContactResponse, error)
	Inquire(ctx context.Context, db *gorm.DB, buyer *auth.Identity, homeID uint, message string) (*dto.MessageResponse, error)
	GetHomeMessages(db *gorm.DB, homeID uint) ([]*dto.MessageResponse, error)
}

type homeService struct {
	homeRepo    repositories.HomeRepository
	imageRepo   repositories.ImageRepository
	messageRepo repositories.MessageRepository
	userRepo    repositories.UserRepository
	notifiers   []InquiryNotifier
}

func NewHomeService(
	homeRepo repositories.HomeRepository,
	imageRepo repositories.ImageRepository,
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	notifiers ...InquiryNotifier,
) HomeService {
	return &homeService{
		homeRepo:    homeRepo,
		imageRepo:   imageRepo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		notifiers:   notifiers,
	}
}

// GetHomes fails with ErrNoHomesFound rather than returning an empty list.
func (s *homeService) GetHomes(db *gorm.DB, filters types.HomeFilters) ([]*dto.HomeResponse, error) {
	homes, err := s.homeRepo.FindHomes(db, filters)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(homes) == 0 {
		return nil, apperrors.ErrNoHomesFound
	}

	result := make([]*dto.HomeResponse, 0, len(homes))
	for i := range homes {
		result = append(result, dto.NewHomeSummary(&homes[i]))
	}
	return result, nil
}

func (s *homeService) GetHome(db *gorm.DB, id uint) (*dto.HomeResponse, error) {
	home, err := s.homeRepo.FindHomeByID(db, id)
	if err != nil {
		return nil, mapHomeError(err)
	}
	return dto.NewHomeDetail(home), nil
}

// CreateHome writes the listing first to obtain its id, then its images in
// the order supplied. Both writes share one transaction.
func (s *homeService) CreateHome(db *gorm.DB, req *dto.CreateHomeRequest, realtorID uint) (*dto.HomeResponse, error) {
	home := &models.Home{
		Address:           req.Address,
		City:              req.City,
		Price:             req.Price,
		PropertyType:      req.PropertyType,
		NumberOfBedrooms:  req.NumberOfBedrooms,
		NumberOfBathrooms: req.NumberOfBathrooms,
		LandSize:          req.LandSize,
		RealtorID:         realtorID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := s.homeRepo.CreateHome(tx, home); err != nil {
			return err
		}

		images := make([]models.Image, 0, len(req.Images))
		for _, img := range req.Images {
			images = append(images, models.Image{URL: img.URL, HomeID: home.ID})
		}
		if err := s.imageRepo.CreateImages(tx, images); err != nil {
			return err
		}
		home.Images = images
		return nil
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return dto.NewHomeDetail(home), nil
}

func (s *homeService) UpdateHome(db *gorm.DB, id uint, req *dto.UpdateHomeRequest) (*dto.HomeResponse, error) {
	exists, err := s.homeRepo.ExistsHome(db, id)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !exists {
		return nil, apperrors.ErrHomeNotFound
	}

	if err := s.homeRepo.UpdateHome(db, id, req.ToUpdates()); err != nil {
		return nil, mapHomeError(err)
	}

	return s.GetHome(db, id)
}

// DeleteHome removes the images, then the inquiries, then the listing, so no
// row ever references a deleted listing.
func (s *homeService) DeleteHome(db *gorm.DB, id uint) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := s.imageRepo.DeleteByHomeID(tx, id); err != nil {
			return err
		}
		if err := s.messageRepo.DeleteByHomeID(tx, id); err != nil {
			return err
		}
		return s.homeRepo.DeleteHome(tx, id)
	})
	if err != nil {
		return mapHomeError(err)
	}
	return nil
}

func (s *homeService) GetRealtorByHome(db *gorm.DB, id uint) (*dto.ContactResponse, error) {
	realtor, err := s.homeRepo.FindRealtorByHomeID(db, id)
	if err != nil {
		return nil, mapHomeError(err)
	}
	return dto.NewContactResponse(realtor), nil
}

// Inquire stores a buyer's message for the listing's realtor and notifies them.
func (s *homeService) Inquire(ctx context.Context, db *gorm.DB, buyer *auth.Identity, homeID uint, message string) (*dto.MessageResponse, error) {
	home, err := s.homeRepo.FindHomeByID(db, homeID)
	if err != nil {
		return nil, mapHomeError(err)
	}

	msg := &models.Message{
		Message:   message,
		HomeID:    home.ID,
		RealtorID: home.RealtorID,
		BuyerID:   buyer.ID,
	}
	if err := s.messageRepo.CreateMessage(db, msg); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifyRealtor(ctx, db, home, buyer, msg)

	return dto.NewMessageResponse(msg), nil
}

func (s *homeService) GetHomeMessages(db *gorm.DB, homeID uint) ([]*dto.MessageResponse, error) {
	messages, err := s.messageRepo.FindByHomeID(db, homeID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]*dto.MessageResponse, 0, len(messages))
	for i := range messages {
		result = append(result, dto.NewMessageResponse(&messages[i]))
	}
	return result, nil
}

func (s *homeService) notifyRealtor(ctx context.Context, db *gorm.DB, home *models.Home, buyer *auth.Identity, msg *models.Message) {
	if len(s.notifiers) == 0 {
		return
	}

	buyerContact := &dto.ContactResponse{ID: buyer.ID, Name: buyer.Name}
	if user, err := s.userRepo.FindByID(db, buyer.ID); err == nil {
		buyerContact = dto.NewContactResponse(user)
	} else {
		logger.CtxWithError(ctx, "Failed to load buyer contact for inquiry notification", err, "buyer_id", buyer.ID)
	}

	n := &dto.InquiryNotification{
		Type:        dto.InquiryNotificationType,
		MessageID:   msg.ID,
		HomeID:      home.ID,
		HomeAddress: home.Address,
		HomeCity:    home.City,
		Message:     msg.Message,
		CreatedAt:   msg.CreatedAt,
		Realtor:     *dto.NewContactResponse(&home.Realtor),
		Buyer:       buyerContact,
	}

	for _, notifier := range s.notifiers {
		if err := notifier.NotifyInquiry(ctx, n); err != nil {
			logger.CtxWithError(ctx, "Inquiry notification failed", err,
				"home_id", home.ID,
				"realtor_id", home.RealtorID,
			)
		}
	}
}

func mapHomeError(err error) error {
	switch {
	case apperrors.Is(err, repositories.ErrHomeNotFound):
		return apperrors.ErrHomeNotFound
	default:
		if _, ok := apperrors.AsAppError(err); ok {
			return err
		}
		return apperrors.InternalError(err)
	}
}
