package test

import (
	"context"

	"github.com/sweetcrumb/bakehouse/internal/adapter/mpesa"
)

// MpesaClientStub simulates the push-payment provider.
type MpesaClientStub struct {
	PushFn func(context.Context, mpesa.Credentials, mpesa.PushRequest) (*mpesa.PushResponse, error)

	Pushes []mpesa.PushRequest
}

// Push records the request and delegates to the override when set.
func (s *MpesaClientStub) Push(ctx context.Context, creds mpesa.Credentials, req mpesa.PushRequest) (*mpesa.PushResponse, error) {
	s.Pushes = append(s.Pushes, req)
	if s.PushFn != nil {
		return s.PushFn(ctx, creds, req)
	}
	return &mpesa.PushResponse{
		MerchantRequestID:   "merchant-1",
		CheckoutRequestID:   "checkout-1",
		ResponseCode:        "0",
		ResponseDescription: "Success. Request accepted for processing",
		CustomerMessage:     "Success. Request accepted for processing",
	}, nil
}
