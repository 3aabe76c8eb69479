package dto

import (
	"time"

	"github.com/sweetcrumb/bakehouse/internal/domain/model"
)

// SettingsRequest is the admin settings payload. Blank credential fields
// fall back to process defaults at payment time.
type SettingsRequest struct {
	StoreName     string                    `json:"storeName"`
	ContactEmail  string                    `json:"contactEmail,omitempty"`
	Phone         string                    `json:"phone,omitempty"`
	Address       string                    `json:"address,omitempty"`
	BusinessHours map[string]string         `json:"businessHours,omitempty"`
	SocialLinks   map[string]string         `json:"socialLinks,omitempty"`
	Payment       *model.PaymentCredentials `json:"payment,omitempty"`
}

// ToModel converts the payload into the domain settings record.
func (r SettingsRequest) ToModel() *model.Settings {
	s := &model.Settings{
		StoreName:     r.StoreName,
		ContactEmail:  r.ContactEmail,
		Phone:         r.Phone,
		Address:       r.Address,
		BusinessHours: r.BusinessHours,
		SocialLinks:   r.SocialLinks,
	}
	if r.Payment != nil {
		s.Payment = *r.Payment
	}
	return s
}

// SettingsResponse is the serialized settings record. Payment is nil on the
// public route.
type SettingsResponse struct {
	StoreName     string                    `json:"storeName"`
	ContactEmail  string                    `json:"contactEmail,omitempty"`
	Phone         string                    `json:"phone,omitempty"`
	Address       string                    `json:"address,omitempty"`
	BusinessHours map[string]string         `json:"businessHours,omitempty"`
	SocialLinks   map[string]string         `json:"socialLinks,omitempty"`
	Payment       *model.PaymentCredentials `json:"payment,omitempty"`
	UpdatedAt     time.Time                 `json:"updatedAt"`
}

// ToSettingsResponse maps domain settings for serialization, optionally
// including the stored payment credentials.
func ToSettingsResponse(s *model.Settings, includePayment bool) SettingsResponse {
	resp := SettingsResponse{
		StoreName:     s.StoreName,
		ContactEmail:  s.ContactEmail,
		Phone:         s.Phone,
		Address:       s.Address,
		BusinessHours: s.BusinessHours,
		SocialLinks:   s.SocialLinks,
		UpdatedAt:     s.UpdatedAt,
	}
	if includePayment {
		payment := s.Payment
		resp.Payment = &payment
	}
	return resp
}
