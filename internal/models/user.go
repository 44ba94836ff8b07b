package models

type User struct {
	BaseModel
	Name     string   `gorm:"not null"`
	Email    string   `gorm:"uniqueIndex;not null"`
	Phone    string   `gorm:"not null"`
	Password string   `gorm:"not null"`
	UserType UserType `gorm:"type:varchar(20);not null"`

	// Relations
	Homes []Home `gorm:"foreignKey:RealtorID"`
}
