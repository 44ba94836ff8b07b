package models

// Message is a buyer's inquiry about a home, addressed to its realtor.
type Message struct {
	BaseModel
	Message   string `gorm:"not null"`
	HomeID    uint   `gorm:"not null;index"`
	RealtorID uint   `gorm:"not null;index"`
	BuyerID   uint   `gorm:"not null;index"`

	// Relations
	Home    Home `gorm:"foreignKey:HomeID"`
	Realtor User `gorm:"foreignKey:RealtorID"`
	Buyer   User `gorm:"foreignKey:BuyerID"`
}
