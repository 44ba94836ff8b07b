package repositories

import (
	"errors"

	"realestate_backend/internal/models"
	"realestate_backend/internal/types"

	"gorm.io/gorm"
)

var ErrHomeNotFound = errors.New("home not found")

type HomeRepository interface {
	FindHomes(db *gorm.DB, filters types.HomeFilters) ([]models.Home, error)
	FindHomeByID(db *gorm.DB, id uint) (*models.Home, error)
	ExistsHome(db *gorm.DB, id uint) (bool, error)
	CreateHome(db *gorm.DB, home *models.Home) error
	UpdateHome(db *gorm.DB, id uint, updates map[string]interface{}) error
	DeleteHome(db *gorm.DB, id uint) error
	FindRealtorByHomeID(db *gorm.DB, homeID uint) (*models.User, error)
}

type HomeRepositoryImpl struct{}

func NewHomeRepository() HomeRepository {
	return &HomeRepositoryImpl{}
}

// ApplyHomeFilters adds one WHERE condition per supplied filter and nothing
// for the omitted ones.
func ApplyHomeFilters(q *gorm.DB, filters types.HomeFilters) *gorm.DB {
	if filters.City != "" {
		q = q.Where("city = ?", filters.City)
	}
	if filters.Price != nil {
		if filters.Price.Gte != nil {
			q = q.Where("price >= ?", *filters.Price.Gte)
		}
		if filters.Price.Lte != nil {
			q = q.Where("price <= ?", *filters.Price.Lte)
		}
	}
	if filters.PropertyType != "" {
		q = q.Where("property_type = ?", filters.PropertyType)
	}
	return q
}

// imagesInOrder preloads images in insertion order so that Images[0] is the
// display image.
func imagesInOrder(db *gorm.DB) *gorm.DB {
	return db.Order("images.id ASC")
}

func (r *HomeRepositoryImpl) FindHomes(db *gorm.DB, filters types.HomeFilters) ([]models.Home, error) {
	var homes []models.Home
	q := ApplyHomeFilters(db.Model(&models.Home{}), filters)
	err := q.Preload("Images", imagesInOrder).Order("homes.id ASC").Find(&homes).Error
	return homes, err
}

func (r *HomeRepositoryImpl) FindHomeByID(db *gorm.DB, id uint) (*models.Home, error) {
	var home models.Home
	err := db.Preload("Images", imagesInOrder).
		Preload("Realtor").
		First(&home, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHomeNotFound
		}
		return nil, err
	}
	return &home, nil
}

func (r *HomeRepositoryImpl) ExistsHome(db *gorm.DB, id uint) (bool, error) {
	var count int64
	err := db.Model(&models.Home{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *HomeRepositoryImpl) CreateHome(db *gorm.DB, home *models.Home) error {
	return db.Omit("Images", "Realtor").Create(home).Error
}

func (r *HomeRepositoryImpl) UpdateHome(db *gorm.DB, id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := db.Model(&models.Home{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHomeNotFound
	}
	return nil
}

func (r *HomeRepositoryImpl) DeleteHome(db *gorm.DB, id uint) error {
	result := db.Where("id = ?", id).Delete(&models.Home{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHomeNotFound
	}
	return nil
}

func (r *HomeRepositoryImpl) FindRealtorByHomeID(db *gorm.DB, homeID uint) (*models.User, error) {
	var realtor models.User
	err := db.Model(&models.User{}).
		Joins("JOIN homes ON homes.realtor_id = users.id").
		Where("homes.id = ?", homeID).
		First(&realtor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHomeNotFound
		}
		return nil, err
	}
	return &realtor, nil
}
