package dto

import (
	"time"

	"realestate_backend/internal/models"
)

type ImageRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type CreateHomeRequest struct {
	Address           string              `json:"address" validate:"required"`
	NumberOfBedrooms  int                 `json:"numberOfBedrooms" validate:"gte=0"`
	NumberOfBathrooms float64             `json:"numberOfBathrooms" validate:"gte=0"`
	City              string              `json:"city" validate:"required"`
	Price             float64             `json:"price" validate:"gt=0"`
	LandSize          float64             `json:"landSize" validate:"gt=0"`
	PropertyType      models.PropertyType `json:"propertyType" validate:"required,is-property-type"`
	Images            []ImageRequest      `json:"images" validate:"required,min=1,dive"`
}

// UpdateHomeRequest is a partial update: nil fields are left unchanged.
type UpdateHomeRequest struct {
	Address           *string              `json:"address" validate:"omitempty,min=1"`
	NumberOfBedrooms  *int                 `json:"numberOfBedrooms" validate:"omitempty,gte=0"`
	NumberOfBathrooms *float64             `json:"numberOfBathrooms" validate:"omitempty,gte=0"`
	City              *string              `json:"city" validate:"omitempty,min=1"`
	Price             *float64             `json:"price" validate:"omitempty,gt=0"`
	LandSize          *float64             `json:"landSize" validate:"omitempty,gt=0"`
	PropertyType      *models.PropertyType `json:"propertyType" validate:"omitempty,is-property-type"`
}

// ToUpdates returns the column updates for the supplied fields only.
func (r *UpdateHomeRequest) ToUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Address != nil {
		updates["address"] = *r.Address
	}
	if r.NumberOfBedrooms != nil {
		updates["number_of_bedrooms"] = *r.NumberOfBedrooms
	}
	if r.NumberOfBathrooms != nil {
		updates["number_of_bathrooms"] = *r.NumberOfBathrooms
	}
	if r.City != nil {
		updates["city"] = *r.City
	}
	if r.Price != nil {
		updates["price"] = *r.Price
	}
	if r.LandSize != nil {
		updates["land_size"] = *r.LandSize
	}
	if r.PropertyType != nil {
		updates["property_type"] = *r.PropertyType
	}
	return updates
}

type InquireRequest struct {
	Message string `json:"message" validate:"required"`
}

type ImageResponse struct {
	URL string `json:"url"`
}

// ContactResponse holds the public contact fields of a user.
type ContactResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type HomeResponse struct {
	ID                uint                `json:"id"`
	Address           string              `json:"address"`
	City              string              `json:"city"`
	Price             float64             `json:"price"`
	PropertyType      models.PropertyType `json:"propertyType"`
	NumberOfBedrooms  int                 `json:"numberOfBedrooms"`
	NumberOfBathrooms float64             `json:"numberOfBathrooms"`
	LandSize          float64             `json:"landSize"`
	ListedDate        time.Time           `json:"listedDate"`
	RealtorID         uint                `json:"realtorId"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
	Image             string              `json:"image,omitempty"`
	Images            []ImageResponse     `json:"images,omitempty"`
	Realtor           *ContactResponse    `json:"realtor,omitempty"`
}

func newHomeResponse(home *models.Home) *HomeResponse {
	return &HomeResponse{
		ID:                home.ID,
		Address:           home.Address,
		City:              home.City,
		Price:             home.Price,
		PropertyType:      home.PropertyType,
		NumberOfBedrooms:  home.NumberOfBedrooms,
		NumberOfBathrooms: home.NumberOfBathrooms,
		LandSize:          home.LandSize,
		ListedDate:        home.ListedDate,
		RealtorID:         home.RealtorID,
		CreatedAt:         home.CreatedAt,
		UpdatedAt:         home.UpdatedAt,
	}
}

// NewHomeSummary is the list view: one display image, the first in stored order.
func NewHomeSummary(home *models.Home) *HomeResponse {
	resp := newHomeResponse(home)
	if len(home.Images) > 0 {
		resp.Image = home.Images[0].URL
	}
	return resp
}

// NewHomeDetail includes every image and, when loaded, the realtor's contact.
func NewHomeDetail(home *models.Home) *HomeResponse {
	resp := newHomeResponse(home)
	resp.Images = make([]ImageResponse, 0, len(home.Images))
	for _, img := range home.Images {
		resp.Images = append(resp.Images, ImageResponse{URL: img.URL})
	}
	if home.Realtor.ID != 0 {
		resp.Realtor = NewContactResponse(&home.Realtor)
	}
	return resp
}

func NewContactResponse(user *models.User) *ContactResponse {
	return &ContactResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
	}
}
