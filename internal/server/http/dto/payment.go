package dto

import (
	"github.com/sweetcrumb/bakehouse/internal/adapter/mpesa"
	"github.com/sweetcrumb/bakehouse/internal/domain/model"
	"github.com/sweetcrumb/bakehouse/internal/usecase"
)

// InitiatePaymentRequest asks the provider to prompt the customer's device.
type InitiatePaymentRequest struct {
	PhoneNumber string  `json:"phoneNumber"`
	Amount      float64 `json:"amount"`
	OrderID     int64   `json:"orderId"`
}

// InitiatePaymentResponse relays the provider's acknowledgement.
type InitiatePaymentResponse struct {
	MerchantRequestID   string `json:"merchantRequestId"`
	CheckoutRequestID   string `json:"checkoutRequestId"`
	ResponseCode        string `json:"responseCode"`
	ResponseDescription string `json:"responseDescription"`
	CustomerMessage     string `json:"customerMessage"`
}

// ToInitiatePaymentResponse maps the provider acknowledgement.
func ToInitiatePaymentResponse(ack *mpesa.PushResponse) InitiatePaymentResponse {
	return InitiatePaymentResponse{
		MerchantRequestID:   ack.MerchantRequestID,
		CheckoutRequestID:   ack.CheckoutRequestID,
		ResponseCode:        ack.ResponseCode,
		ResponseDescription: ack.ResponseDescription,
		CustomerMessage:     ack.CustomerMessage,
	}
}

// VerifyPaymentResponse is the locally stored payment state of an order.
type VerifyPaymentResponse struct {
	Verified       bool                 `json:"verified"`
	PaymentStatus  string               `json:"paymentStatus"`
	PaymentDetails model.PaymentDetails `json:"paymentDetails,omitempty"`
}

// ToVerifyPaymentResponse maps the verification result.
func ToVerifyPaymentResponse(r *usecase.VerifyResult) VerifyPaymentResponse {
	return VerifyPaymentResponse{
		Verified:       r.Verified,
		PaymentStatus:  string(r.Status),
		PaymentDetails: r.Details,
	}
}
