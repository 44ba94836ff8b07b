package repositories

import (
	"realestate_backend/internal/models"

	"gorm.io/gorm"
)

type ImageRepository interface {
	CreateImages(db *gorm.DB, images []models.Image) error
	DeleteByHomeID(db *gorm.DB, homeID uint) error
}

type ImageRepositoryImpl struct{}

func NewImageRepository() ImageRepository {
	return &ImageRepositoryImpl{}
}

// CreateImages inserts images in slice order, so ids follow the order supplied.
func (r *ImageRepositoryImpl) CreateImages(db *gorm.DB, images []models.Image) error {
	if len(images) == 0 {
		return nil
	}
	return db.Create(&images).Error
}

func (r *ImageRepositoryImpl) DeleteByHomeID(db *gorm.DB, homeID uint) error {
	return db.Where("home_id = ?", homeID).Delete(&models.Image{}).Error
}
