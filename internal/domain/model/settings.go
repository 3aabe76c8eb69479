package model

import "time"

// PaymentCredentials holds the mobile-money provider credentials stored with
// site settings. Blank fields fall back to process-wide defaults.
type PaymentCredentials struct {
	ConsumerKey    string `json:"mpesaConsumerKey,omitempty"`
	ConsumerSecret string `json:"mpesaConsumerSecret,omitempty"`
	Passkey        string `json:"mpesaPasskey,omitempty"`
	ShortCode      string `json:"businessShortCode,omitempty"`
}

// Settings is the singleton site configuration record.
type Settings struct {
	StoreName     string
	ContactEmail  string
	Phone         string
	Address       string
	BusinessHours map[string]string
	SocialLinks   map[string]string
	Payment       PaymentCredentials
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DefaultSettings returns the record created on first access.
func DefaultSettings() *Settings {
	return &Settings{
		StoreName: "Sweetcrumb Bakehouse",
		BusinessHours: map[string]string{
			"monday":    "9:00 AM - 5:00 PM",
			"tuesday":   "9:00 AM - 5:00 PM",
			"wednesday": "9:00 AM - 5:00 PM",
			"thursday":  "9:00 AM - 5:00 PM",
			"friday":    "9:00 AM - 5:00 PM",
			"saturday":  "10:00 AM - 3:00 PM",
			"sunday":    "Closed",
		},
		SocialLinks: map[string]string{
			"facebook":  "",
			"instagram": "",
			"twitter":   "",
		},
	}
}
