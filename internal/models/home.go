package models

import "time"

type Home struct {
	BaseModel
	Address           string       `gorm:"not null"`
	City              string       `gorm:"not null;index"`
	Price             float64      `gorm:"not null;index"`
	PropertyType      PropertyType `gorm:"type:varchar(20);not null"`
	NumberOfBedrooms  int          `gorm:"not null"`
	NumberOfBathrooms float64      `gorm:"not null"`
	LandSize          float64      `gorm:"not null"`
	ListedDate        time.Time    `gorm:"autoCreateTime"`
	RealtorID         uint         `gorm:"not null;index"`

	// Relations
	Realtor User    `gorm:"foreignKey:RealtorID"`
	Images  []Image `gorm:"foreignKey:HomeID"`
}

type Image struct {
	BaseModel
	URL    string `gorm:"not null"`
	HomeID uint   `gorm:"not null;index"`
}
