package repositories

import (
	"realestate_backend/internal/models"

	"gorm.io/gorm"
)

type MessageRepository interface {
	CreateMessage(db *gorm.DB, message *models.Message) error
	FindByHomeID(db *gorm.DB, homeID uint) ([]models.Message, error)
	DeleteByHomeID(db *gorm.DB, homeID uint) error
}

type MessageRepositoryImpl struct{}

func NewMessageRepository() MessageRepository {
	return &MessageRepositoryImpl{}
}

func (r *MessageRepositoryImpl) CreateMessage(db *gorm.DB, message *models.Message) error {
	return db.Omit("Home", "Realtor", "Buyer").Create(message).Error
}

// FindByHomeID returns the home's messages, oldest first, with their buyers.
func (r *MessageRepositoryImpl) FindByHomeID(db *gorm.DB, homeID uint) ([]models.Message, error) {
	var messages []models.Message
	err := db.Preload("Buyer").
		Where("home_id = ?", homeID).
		Order("id ASC").
		Find(&messages).Error
	return messages, err
}

func (r *MessageRepositoryImpl) DeleteByHomeID(db *gorm.DB, homeID uint) error {
	return db.Where("home_id = ?", homeID).Delete(&models.Message{}).Error
}
