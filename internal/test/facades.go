package test

import (
	"context"

	"github.com/sweetcrumb/bakehouse/internal/adapter/mpesa"
	domainErrors "github.com/sweetcrumb/bakehouse/internal/domain/errors"
	"github.com/sweetcrumb/bakehouse/internal/domain/model"
	"github.com/sweetcrumb/bakehouse/internal/domain/repository"
	"github.com/sweetcrumb/bakehouse/internal/usecase"
)

// UserSourceStub implements the middleware token/account contract.
type UserSourceStub struct {
	ParseFn func(string) (int64, error)
	UserFn  func(context.Context, int64) (*model.User, error)
	User    *model.User
}

func (s UserSourceStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if s.User != nil {
		return s.User.ID, nil
	}
	return 1, nil
}

func (s UserSourceStub) UserByID(ctx context.Context, id int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	if s.User != nil {
		return s.User, nil
	}
	return nil, domainErrors.ErrNotFound
}

// PaymentFacadeStub provides controllable behaviour for payment endpoints.
type PaymentFacadeStub struct {
	InitiateFn  func(context.Context, string, float64, int64) (*mpesa.PushResponse, error)
	ReconcileFn func(context.Context, mpesa.STKCallback) error
	VerifyFn    func(context.Context, int64, *model.User) (*usecase.VerifyResult, error)

	Reconciled []mpesa.STKCallback
}

func (s *PaymentFacadeStub) InitiatePayment(ctx context.Context, phone string, amount float64, orderID int64) (*mpesa.PushResponse, error) {
	if s.InitiateFn != nil {
		return s.InitiateFn(ctx, phone, amount, orderID)
	}
	return &mpesa.PushResponse{CheckoutRequestID: "checkout-1"}, nil
}

func (s *PaymentFacadeStub) ReconcilePayment(ctx context.Context, callback mpesa.STKCallback) error {
	s.Reconciled = append(s.Reconciled, callback)
	if s.ReconcileFn != nil {
		return s.ReconcileFn(ctx, callback)
	}
	return nil
}

func (s *PaymentFacadeStub) VerifyPayment(ctx context.Context, orderID int64, requester *model.User) (*usecase.VerifyResult, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, orderID, requester)
	}
	return &usecase.VerifyResult{Status: model.PaymentStatusPending}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn        func(context.Context, usecase.CreateOrderInput) (*model.Order, error)
	MyOrdersFn      func(context.Context, int64) ([]model.Order, error)
	OrderFn         func(context.Context, int64, *model.User) (*model.Order, error)
	OrdersFn        func(context.Context, repository.ListQuery) ([]model.Order, int64, error)
	UpdateStatusFn  func(context.Context, int64, model.OrderStatus) (*model.Order, error)
	UpdateNotesFn   func(context.Context, int64, string) (*model.Order, error)
	UpdatePaymentFn func(context.Context, int64, model.PaymentStatus, model.PaymentDetails) (*model.Order, error)
	DeleteFn        func(context.Context, int64) error
}

func (s *OrderFacadeStub) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, input)
	}
	return &model.Order{ID: 1, OrderNumber: "BKH-250101-0001", Customer: input.Customer, Items: input.Items}, nil
}

func (s *OrderFacadeStub) MyOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.MyOrdersFn != nil {
		return s.MyOrdersFn(ctx, userID)
	}
	return nil, nil
}

func (s *OrderFacadeStub) Order(ctx context.Context, id int64, requester *model.User) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id, requester)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderFacadeStub) Orders(ctx context.Context, q repository.ListQuery) ([]model.Order, int64, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, q)
	}
	return nil, 0, nil
}

func (s *OrderFacadeStub) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	return &model.Order{ID: id, Status: status}, nil
}

func (s *OrderFacadeStub) UpdateOrderNotes(ctx context.Context, id int64, notes string) (*model.Order, error) {
	if s.UpdateNotesFn != nil {
		return s.UpdateNotesFn(ctx, id, notes)
	}
	return &model.Order{ID: id, Notes: notes}, nil
}

func (s *OrderFacadeStub) UpdateOrderPayment(ctx context.Context, id int64, status model.PaymentStatus, details model.PaymentDetails) (*model.Order, error) {
	if s.UpdatePaymentFn != nil {
		return s.UpdatePaymentFn(ctx, id, status, details)
	}
	return &model.Order{ID: id, PaymentStatus: status, PaymentDetails: details}, nil
}

func (s *OrderFacadeStub) DeleteOrder(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}
