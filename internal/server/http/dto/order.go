package dto

import (
	"time"

	"github.com/sweetcrumb/bakehouse/internal/domain/model"
)

// OrderItemPayload is one line item as submitted by the storefront.
type OrderItemPayload struct {
	ProductID      int64          `json:"productId"`
	Name           string         `json:"name"`
	Quantity       int            `json:"quantity"`
	Price          float64        `json:"price"`
	Customizations map[string]any `json:"customizations,omitempty"`
}

// CustomerPayload is the contact block of an order submission.
type CustomerPayload struct {
	UserID  *int64 `json:"userId,omitempty"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

// CreateOrderRequest is the checkout payload. DeliveryDate accepts RFC 3339
// or a bare YYYY-MM-DD date.
type CreateOrderRequest struct {
	Customer             CustomerPayload    `json:"customer"`
	Items                []OrderItemPayload `json:"items"`
	Total                float64            `json:"total"`
	DeliveryMethod       string             `json:"deliveryMethod"`
	DeliveryDate         string             `json:"deliveryDate"`
	DeliveryAddress      string             `json:"deliveryAddress,omitempty"`
	DeliveryInstructions string             `json:"deliveryInstructions,omitempty"`
}

// ParseDeliveryDate parses the submitted delivery date. A zero time and
// false mean the value was unparseable.
func (r CreateOrderRequest) ParseDeliveryDate() (time.Time, bool) {
	if r.DeliveryDate == "" {
		return time.Time{}, true
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, r.DeliveryDate); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// UpdateOrderStatusRequest changes fulfilment state.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderNotesRequest replaces admin notes on an order.
type UpdateOrderNotesRequest struct {
	Notes string `json:"notes"`
}

// UpdateOrderPaymentRequest changes payment state by hand.
type UpdateOrderPaymentRequest struct {
	PaymentStatus  string         `json:"paymentStatus"`
	PaymentDetails map[string]any `json:"paymentDetails,omitempty"`
}

// OrderResponse is the serialized order.
type OrderResponse struct {
	ID                   int64                `json:"id"`
	OrderNumber          string               `json:"orderNumber"`
	Customer             CustomerPayload      `json:"customer"`
	Items                []OrderItemPayload   `json:"items"`
	Total                float64              `json:"total"`
	Status               string               `json:"status"`
	PaymentMethod        string               `json:"paymentMethod,omitempty"`
	PaymentStatus        string               `json:"paymentStatus"`
	PaymentDetails       model.PaymentDetails `json:"paymentDetails,omitempty"`
	OrderDate            time.Time            `json:"orderDate"`
	DeliveryMethod       string               `json:"deliveryMethod"`
	DeliveryDate         time.Time            `json:"deliveryDate"`
	DeliveryAddress      string               `json:"deliveryAddress,omitempty"`
	DeliveryInstructions string               `json:"deliveryInstructions,omitempty"`
	Notes                string               `json:"notes,omitempty"`
	CreatedAt            time.Time            `json:"createdAt"`
	UpdatedAt            time.Time            `json:"updatedAt"`
	User                 *UserResponse        `json:"user,omitempty"`
}

// ToOrderResponse maps a domain order for serialization.
func ToOrderResponse(order model.Order) OrderResponse {
	items := make([]OrderItemPayload, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemPayload{
			ProductID:      item.ProductID,
			Name:           item.Name,
			Quantity:       item.Quantity,
			Price:          item.Price,
			Customizations: item.Customizations,
		})
	}
	resp := OrderResponse{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		Customer: CustomerPayload{
			UserID:  order.Customer.UserID,
			Name:    order.Customer.Name,
			Email:   order.Customer.Email,
			Phone:   order.Customer.Phone,
			Address: order.Customer.Address,
		},
		Items:                items,
		Total:                order.Total,
		Status:               string(order.Status),
		PaymentMethod:        order.PaymentMethod,
		PaymentStatus:        string(order.PaymentStatus),
		PaymentDetails:       order.PaymentDetails,
		OrderDate:            order.OrderDate,
		DeliveryMethod:       string(order.DeliveryMethod),
		DeliveryDate:         order.DeliveryDate,
		DeliveryAddress:      order.DeliveryAddress,
		DeliveryInstructions: order.DeliveryInstructions,
		Notes:                order.Notes,
		CreatedAt:            order.CreatedAt,
		UpdatedAt:            order.UpdatedAt,
	}
	if order.Owner != nil {
		owner := ToUserResponse(*order.Owner)
		resp.User = &owner
	}
	return resp
}

// ToOrderResponses maps a slice of orders.
func ToOrderResponses(orders []model.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToOrderResponse(o))
	}
	return out
}
