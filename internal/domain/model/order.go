package model

import "time"

// OrderStatus describes fulfilment lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// ValidOrderStatus reports whether s is a known fulfilment status.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus describes the payment lifecycle of an order.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusFailed    PaymentStatus = "Failed"
)

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	}
	return false
}

// DeliveryMethod describes how an order reaches the customer.
type DeliveryMethod string

const (
	DeliveryMethodPickup   DeliveryMethod = "pickup"
	DeliveryMethodDelivery DeliveryMethod = "delivery"
)

// OrderItem is a line item snapshot. Name and Price are captured at order
// time and never re-read from the product catalog.
type OrderItem struct {
	ProductID      int64          `json:"productId"`
	Name           string         `json:"name"`
	Quantity       int            `json:"quantity"`
	Price          float64        `json:"price"`
	Customizations map[string]any `json:"customizations,omitempty"`
}

// Customer is the contact snapshot embedded in an order. UserID is a weak
// reference: the order survives deletion of the account.
type Customer struct {
	UserID  *int64 `json:"userId,omitempty"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

// PaymentDetails is an open map of provider correlation identifiers and
// timestamps. Its shape differs before and after the provider callback.
type PaymentDetails map[string]any

// Order is a placed storefront order.
type Order struct {
	ID                   int64
	OrderNumber          string
	Customer             Customer
	Items                []OrderItem
	Total                float64
	Status               OrderStatus
	PaymentMethod        string
	PaymentStatus        PaymentStatus
	PaymentDetails       PaymentDetails
	OrderDate            time.Time
	DeliveryMethod       DeliveryMethod
	DeliveryDate         time.Time
	DeliveryAddress      string
	DeliveryInstructions string
	Notes                string
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// Owner is filled only when a list request expands the owning user.
	Owner *User
}
