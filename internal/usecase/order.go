package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	domainErrors "github.com/sweetcrumb/bakehouse/internal/domain/errors"
	"github.com/sweetcrumb/bakehouse/internal/domain/model"
	"github.com/sweetcrumb/bakehouse/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
	prefix string
	now    func() time.Time
	randN  func(n int) int
}

// NewOrderUseCase constructs OrderUseCase with the given order-number prefix.
func NewOrderUseCase(orders repository.OrderRepository, prefix string) *OrderUseCase {
	return &OrderUseCase{
		orders: orders,
		prefix: prefix,
		now:    time.Now,
		randN:  rand.Intn,
	}
}

// CreateOrderInput is the customer-supplied order payload. Total is trusted
// as given and never recomputed from line items.
type CreateOrderInput struct {
	Customer             model.Customer
	Items                []model.OrderItem
	Total                float64
	DeliveryMethod       model.DeliveryMethod
	DeliveryDate         time.Time
	DeliveryAddress      string
	DeliveryInstructions string
}

func (in CreateOrderInput) validate() error {
	fields := map[string]string{}
	if in.Customer.Name == "" {
		fields["customer.name"] = "please add a customer name"
	}
	if in.Customer.Email == "" {
		fields["customer.email"] = "please add a customer email"
	}
	if in.Customer.Phone == "" {
		fields["customer.phone"] = "please add a customer phone"
	}
	if len(in.Items) == 0 {
		fields["items"] = "please add at least one item"
	}
	for i, item := range in.Items {
		if item.ProductID == 0 {
			fields[fmt.Sprintf("items[%d].productId", i)] = "please add a product"
		}
		if item.Name == "" {
			fields[fmt.Sprintf("items[%d].name", i)] = "please add an item name"
		}
		if item.Quantity < 1 {
			fields[fmt.Sprintf("items[%d].quantity", i)] = "quantity must be at least 1"
		}
		if item.Price < 0 {
			fields[fmt.Sprintf("items[%d].price", i)] = "please add an item price"
		}
	}
	if in.Total <= 0 {
		fields["total"] = "please add a total"
	}
	switch in.DeliveryMethod {
	case model.DeliveryMethodPickup:
	case model.DeliveryMethodDelivery:
		if in.DeliveryAddress == "" {
			fields["deliveryAddress"] = "please add a delivery address"
		}
	default:
		fields["deliveryMethod"] = "delivery method must be pickup or delivery"
	}
	if in.DeliveryDate.IsZero() {
		fields["deliveryDate"] = "please add a delivery date"
	}
	if len(fields) > 0 {
		return &domainErrors.ValidationError{Fields: fields}
	}
	return nil
}

// generateOrderNumber renders PREFIX-YYMMDD-NNNN.
func (u *OrderUseCase) generateOrderNumber() string {
	return fmt.Sprintf("%s-%s-%04d", u.prefix, u.now().Format("060102"), u.randN(10000))
}

// Create validates and stores a new order. The random suffix can collide
// within a day, so one retry with a fresh number covers the unique
// constraint firing.
func (u *OrderUseCase) Create(ctx context.Context, input CreateOrderInput) (*model.Order, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	order := &model.Order{
		Customer:             input.Customer,
		Items:                input.Items,
		Total:                input.Total,
		DeliveryMethod:       input.DeliveryMethod,
		DeliveryDate:         input.DeliveryDate,
		DeliveryAddress:      input.DeliveryAddress,
		DeliveryInstructions: input.DeliveryInstructions,
	}

	for attempt := 0; attempt < 2; attempt++ {
		order.OrderNumber = u.generateOrderNumber()
		created, err := u.orders.Create(ctx, order)
		if err != nil {
			if errors.Is(err, domainErrors.ErrAlreadyExists) && attempt == 0 {
				continue
			}
			return nil, err
		}
		return created, nil
	}
	return nil, domainErrors.ErrAlreadyExists
}

// ListByUser returns the requester's orders, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// Get returns one order, restricted to its owner or an admin.
func (u *OrderUseCase) Get(ctx context.Context, id int64, requester *model.User) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !requester.IsAdmin() {
		if order.Customer.UserID == nil || *order.Customer.UserID != requester.ID {
			return nil, domainErrors.ErrForbidden
		}
	}
	return order, nil
}

// List runs an admin list query with the owning user expanded.
func (u *OrderUseCase) List(ctx context.Context, q repository.ListQuery) ([]model.Order, int64, error) {
	return u.orders.List(ctx, q, true)
}

// UpdateStatus moves an order through the fulfilment lifecycle.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, domainErrors.NewValidation("status", "unknown order status")
	}
	return u.orders.UpdateStatus(ctx, id, status)
}

// UpdateNotes replaces the admin notes on an order.
func (u *OrderUseCase) UpdateNotes(ctx context.Context, id int64, notes string) (*model.Order, error) {
	return u.orders.UpdateNotes(ctx, id, notes)
}

// UpdatePayment lets an admin override payment status and details.
func (u *OrderUseCase) UpdatePayment(ctx context.Context, id int64, status model.PaymentStatus, details model.PaymentDetails) (*model.Order, error) {
	if !model.ValidPaymentStatus(status) {
		return nil, domainErrors.NewValidation("paymentStatus", "unknown payment status")
	}
	if details == nil {
		details = model.PaymentDetails{}
	}
	return u.orders.UpdatePayment(ctx, id, status, details)
}

// Delete removes an order permanently.
func (u *OrderUseCase) Delete(ctx context.Context, id int64) error {
	return u.orders.Delete(ctx, id)
}
