package dto

import (
	"time"

	"realestate_backend/internal/models"
)

type MessageResponse struct {
	ID        uint             `json:"id"`
	Message   string           `json:"message"`
	HomeID    uint             `json:"homeId"`
	RealtorID uint             `json:"realtorId"`
	BuyerID   uint             `json:"buyerId"`
	CreatedAt time.Time        `json:"createdAt"`
	Buyer     *ContactResponse `json:"buyer,omitempty"`
}

func NewMessageResponse(msg *models.Message) *MessageResponse {
	resp := &MessageResponse{
		ID:        msg.ID,
		Message:   msg.Message,
		HomeID:    msg.HomeID,
		RealtorID: msg.RealtorID,
		BuyerID:   msg.BuyerID,
		CreatedAt: msg.CreatedAt,
	}
	if msg.Buyer.ID != 0 {
		resp.Buyer = NewContactResponse(&msg.Buyer)
	}
	return resp
}

// InquiryNotification is what a realtor is told about a new inquiry.
type InquiryNotification struct {
	Type        string           `json:"type"`
	MessageID   uint             `json:"messageId"`
	HomeID      uint             `json:"homeId"`
	HomeAddress string           `json:"homeAddress"`
	HomeCity    string           `json:"homeCity"`
	Message     string           `json:"message"`
	CreatedAt   time.Time        `json:"createdAt"`
	Realtor     ContactResponse  `json:"-"`
	Buyer       *ContactResponse `json:"buyer"`
}

const InquiryNotificationType = "inquiry.created"
