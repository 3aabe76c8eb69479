package repository

import (
	"context"

	"github.com/sweetcrumb/bakehouse/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	GetByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	List(ctx context.Context, q ListQuery, expandOwner bool) ([]model.Order, int64, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
	UpdateNotes(ctx context.Context, id int64, notes string) (*model.Order, error)
	UpdatePayment(ctx context.Context, id int64, status model.PaymentStatus, details model.PaymentDetails) (*model.Order, error)
	SetPaymentInitiated(ctx context.Context, id int64, method string, details model.PaymentDetails) error
	Delete(ctx context.Context, id int64) error
}
