package email

import (
	"context"
	"errors"
	"fmt"

	"realestate_backend/internal/logger"
	"realestate_backend/internal/services/dto"
)

// InquiryMailer e-mails a realtor when a buyer inquires about a listing.
type InquiryMailer struct {
	provider Provider
	renderer TemplateRenderer
}

func NewInquiryMailer(provider Provider, renderer TemplateRenderer) *InquiryMailer {
	return &InquiryMailer{
		provider: provider,
		renderer: renderer,
	}
}

func (m *InquiryMailer) NotifyInquiry(ctx context.Context, n *dto.InquiryNotification) error {
	if n.Realtor.Email == "" {
		return errors.New("realtor has no email address")
	}

	data := TemplateData{
		"RealtorName": n.Realtor.Name,
		"HomeAddress": n.HomeAddress,
		"HomeCity":    n.HomeCity,
		"Message":     n.Message,
		"BuyerName":   "",
		"BuyerEmail":  "",
		"BuyerPhone":  "",
	}
	if n.Buyer != nil {
		data["BuyerName"] = n.Buyer.Name
		data["BuyerEmail"] = n.Buyer.Email
		data["BuyerPhone"] = n.Buyer.Phone
	}

	body, err := m.renderer.Render(inquiryTemplateName, data)
	if err != nil {
		return err
	}

	err = m.provider.Send(&Email{
		To:       []string{n.Realtor.Email},
		Subject:  fmt.Sprintf("New inquiry about %s", n.HomeAddress),
		HTMLBody: body,
	})
	if err != nil {
		return err
	}

	logger.CtxInfo(ctx, "Inquiry email sent", "home_id", n.HomeID, "realtor_id", n.Realtor.ID)
	return nil
}
