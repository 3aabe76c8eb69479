package handlers

import (
	"context"

	"github.com/sweetcrumb/bakehouse/internal/adapter/mpesa"
	"github.com/sweetcrumb/bakehouse/internal/domain/model"
	"github.com/sweetcrumb/bakehouse/internal/domain/repository"
	"github.com/sweetcrumb/bakehouse/internal/usecase"
)

// CatalogFacade encapsulates catalog operations exposed via HTTP.
type CatalogFacade interface {
	Products(ctx context.Context, q repository.ListQuery) ([]model.Product, int64, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
	FeaturedProducts(ctx context.Context) ([]model.Product, error)
	ProductsByCategory(ctx context.Context, categoryID int64) ([]model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	Categories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error)
	UpdateCategory(ctx context.Context, category *model.Category) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*model.Order, error)
	MyOrders(ctx context.Context, userID int64) ([]model.Order, error)
	Order(ctx context.Context, id int64, requester *model.User) (*model.Order, error)
	Orders(ctx context.Context, q repository.ListQuery) ([]model.Order, int64, error)
	UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
	UpdateOrderNotes(ctx context.Context, id int64, notes string) (*model.Order, error)
	UpdateOrderPayment(ctx context.Context, id int64, status model.PaymentStatus, details model.PaymentDetails) (*model.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

// PaymentFacade encapsulates push-payment operations.
type PaymentFacade interface {
	InitiatePayment(ctx context.Context, phone string, amount float64, orderID int64) (*mpesa.PushResponse, error)
	ReconcilePayment(ctx context.Context, callback mpesa.STKCallback) error
	VerifyPayment(ctx context.Context, orderID int64, requester *model.User) (*usecase.VerifyResult, error)
}

// SettingsFacade encapsulates site settings operations.
type SettingsFacade interface {
	Settings(ctx context.Context) (*model.Settings, error)
	PublicSettings(ctx context.Context) (*model.Settings, error)
	UpdateSettings(ctx context.Context, settings *model.Settings) (*model.Settings, error)
}

// ContentFacade encapsulates FAQ and testimonial operations.
type ContentFacade interface {
	FAQs(ctx context.Context) ([]model.FAQ, error)
	FAQCategories(ctx context.Context) ([]string, error)
	ListFAQs(ctx context.Context, q repository.ListQuery) ([]model.FAQ, int64, error)
	CreateFAQ(ctx context.Context, faq *model.FAQ) (*model.FAQ, error)
	UpdateFAQ(ctx context.Context, faq *model.FAQ) (*model.FAQ, error)
	DeleteFAQ(ctx context.Context, id int64) error
	ReorderFAQs(ctx context.Context, items []usecase.ReorderItem) error
	ApprovedTestimonials(ctx context.Context) ([]model.Testimonial, error)
	SubmitTestimonial(ctx context.Context, testimonial *model.Testimonial) (*model.Testimonial, error)
	Testimonials(ctx context.Context, q repository.ListQuery) ([]model.Testimonial, int64, error)
	UpdateTestimonial(ctx context.Context, testimonial *model.Testimonial) (*model.Testimonial, error)
	ApproveTestimonial(ctx context.Context, id int64, approved bool) (*model.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id int64) error
}

// UserFacade encapsulates account operations exposed via HTTP.
type UserFacade interface {
	Profile(ctx context.Context, userID int64) (*model.User, error)
	UpdateProfile(ctx context.Context, userID int64, update repository.UserUpdate) (*model.User, error)
	ChangePassword(ctx context.Context, userID int64, current, next string) error
	Wishlist(ctx context.Context, userID int64) ([]model.Product, error)
	AddToWishlist(ctx context.Context, userID, productID int64) ([]model.Product, error)
	RemoveFromWishlist(ctx context.Context, userID, productID int64) ([]model.Product, error)
	Users(ctx context.Context, q repository.ListQuery) ([]model.User, int64, error)
	User(ctx context.Context, id int64) (*model.User, error)
	UpdateUser(ctx context.Context, id int64, update repository.UserUpdate) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
	UpdateUserNotes(ctx context.Context, id int64, notes string) (*model.User, error)
	SetUserActive(ctx context.Context, id int64, active bool) (*model.User, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	CatalogFacade
	OrderFacade
	PaymentFacade
	SettingsFacade
	ContentFacade
	UserFacade

	ParseToken(token string) (int64, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
}
