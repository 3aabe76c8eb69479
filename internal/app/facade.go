package app

import (
	"context"

	"github.com/sweetcrumb/bakehouse/internal/adapter/mpesa"
	"github.com/sweetcrumb/bakehouse/internal/domain/model"
	"github.com/sweetcrumb/bakehouse/internal/domain/repository"
	"github.com/sweetcrumb/bakehouse/internal/pkg/auth"
	"github.com/sweetcrumb/bakehouse/internal/usecase"
)

// StorefrontFacade aggregates the storefront use cases behind the single
// surface the HTTP layer talks to.
type StorefrontFacade struct {
	tokens   auth.Strategy
	users    *usecase.UserUseCase
	catalog  *usecase.CatalogUseCase
	orders   *usecase.OrderUseCase
	payments *usecase.PaymentUseCase
	settings *usecase.SettingsUseCase
	content  *usecase.ContentUseCase
}

func NewStorefrontFacade(
	tokens auth.Strategy,
	users *usecase.UserUseCase,
	catalog *usecase.CatalogUseCase,
	orders *usecase.OrderUseCase,
	payments *usecase.PaymentUseCase,
	settings *usecase.SettingsUseCase,
	content *usecase.ContentUseCase,
) *StorefrontFacade {
	return &StorefrontFacade{
		tokens:   tokens,
		users:    users,
		catalog:  catalog,
		orders:   orders,
		payments: payments,
		settings: settings,
		content:  content,
	}
}

func (f *StorefrontFacade) ParseToken(token string) (int64, error) {
	return f.tokens.ParseToken(token)
}

func (f *StorefrontFacade) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return f.users.Profile(ctx, id)
}

func (f *StorefrontFacade) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return f.users.Profile(ctx, userID)
}

func (f *StorefrontFacade) UpdateProfile(ctx context.Context, userID int64, update repository.UserUpdate) (*model.User, error) {
	return f.users.UpdateProfile(ctx, userID, update)
}

func (f *StorefrontFacade) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	return f.users.ChangePassword(ctx, userID, current, next)
}

func (f *StorefrontFacade) Wishlist(ctx context.Context, userID int64) ([]model.Product, error) {
	return f.users.Wishlist(ctx, userID)
}

func (f *StorefrontFacade) AddToWishlist(ctx context.Context, userID, productID int64) ([]model.Product, error) {
	return f.users.AddToWishlist(ctx, userID, productID)
}

func (f *StorefrontFacade) RemoveFromWishlist(ctx context.Context, userID, productID int64) ([]model.Product, error) {
	return f.users.RemoveFromWishlist(ctx, userID, productID)
}

func (f *StorefrontFacade) Users(ctx context.Context, q repository.ListQuery) ([]model.User, int64, error) {
	return f.users.ListUsers(ctx, q)
}

func (f *StorefrontFacade) User(ctx context.Context, id int64) (*model.User, error) {
	return f.users.GetUser(ctx, id)
}

func (f *StorefrontFacade) UpdateUser(ctx context.Context, id int64, update repository.UserUpdate) (*model.User, error) {
	return f.users.UpdateUser(ctx, id, update)
}

func (f *StorefrontFacade) DeleteUser(ctx context.Context, id int64) error {
	return f.users.DeleteUser(ctx, id)
}

func (f *StorefrontFacade) UpdateUserNotes(ctx context.Context, id int64, notes string) (*model.User, error) {
	return f.users.UpdateUserNotes(ctx, id, notes)
}

func (f *StorefrontFacade) SetUserActive(ctx context.Context, id int64, active bool) (*model.User, error) {
	return f.users.SetUserActive(ctx, id, active)
}

func (f *StorefrontFacade) Products(ctx context.Context, q repository.ListQuery) ([]model.Product, int64, error) {
	return f.catalog.ListProducts(ctx, q)
}

func (f *StorefrontFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.catalog.GetProduct(ctx, id)
}

func (f *StorefrontFacade) FeaturedProducts(ctx context.Context) ([]model.Product, error) {
	return f.catalog.FeaturedProducts(ctx)
}

func (f *StorefrontFacade) ProductsByCategory(ctx context.Context, categoryID int64) ([]model.Product, error) {
	return f.catalog.ProductsByCategory(ctx, categoryID)
}

func (f *StorefrontFacade) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.catalog.CreateProduct(ctx, product)
}

func (f *StorefrontFacade) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.catalog.UpdateProduct(ctx, product)
}

func (f *StorefrontFacade) DeleteProduct(ctx context.Context, id int64) error {
	return f.catalog.DeleteProduct(ctx, id)
}

func (f *StorefrontFacade) Categories(ctx context.Context) ([]model.Category, error) {
	return f.catalog.Categories(ctx)
}

func (f *StorefrontFacade) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	return f.catalog.CreateCategory(ctx, category)
}

func (f *StorefrontFacade) UpdateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	return f.catalog.UpdateCategory(ctx, category)
}

func (f *StorefrontFacade) DeleteCategory(ctx context.Context, id int64) error {
	return f.catalog.DeleteCategory(ctx, id)
}

func (f *StorefrontFacade) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*model.Order, error) {
	return f.orders.Create(ctx, input)
}

func (f *StorefrontFacade) MyOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *StorefrontFacade) Order(ctx context.Context, id int64, requester *model.User) (*model.Order, error) {
	return f.orders.Get(ctx, id, requester)
}

func (f *StorefrontFacade) Orders(ctx context.Context, q repository.ListQuery) ([]model.Order, int64, error) {
	return f.orders.List(ctx, q)
}

func (f *StorefrontFacade) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, id, status)
}

func (f *StorefrontFacade) UpdateOrderNotes(ctx context.Context, id int64, notes string) (*model.Order, error) {
	return f.orders.UpdateNotes(ctx, id, notes)
}

func (f *StorefrontFacade) UpdateOrderPayment(ctx context.Context, id int64, status model.PaymentStatus, details model.PaymentDetails) (*model.Order, error) {
	return f.orders.UpdatePayment(ctx, id, status, details)
}

func (f *StorefrontFacade) DeleteOrder(ctx context.Context, id int64) error {
	return f.orders.Delete(ctx, id)
}

func (f *StorefrontFacade) InitiatePayment(ctx context.Context, phone string, amount float64, orderID int64) (*mpesa.PushResponse, error) {
	return f.payments.Initiate(ctx, phone, amount, orderID)
}

func (f *StorefrontFacade) ReconcilePayment(ctx context.Context, callback mpesa.STKCallback) error {
	return f.payments.Reconcile(ctx, callback)
}

func (f *StorefrontFacade) VerifyPayment(ctx context.Context, orderID int64, requester *model.User) (*usecase.VerifyResult, error) {
	return f.payments.Verify(ctx, orderID, requester)
}

func (f *StorefrontFacade) Settings(ctx context.Context) (*model.Settings, error) {
	return f.settings.Get(ctx)
}

func (f *StorefrontFacade) PublicSettings(ctx context.Context) (*model.Settings, error) {
	return f.settings.Public(ctx)
}

func (f *StorefrontFacade) UpdateSettings(ctx context.Context, settings *model.Settings) (*model.Settings, error) {
	return f.settings.Update(ctx, settings)
}

func (f *StorefrontFacade) FAQs(ctx context.Context) ([]model.FAQ, error) {
	return f.content.FAQs(ctx)
}

func (f *StorefrontFacade) FAQCategories(ctx context.Context) ([]string, error) {
	return f.content.FAQCategories(ctx)
}

func (f *StorefrontFacade) ListFAQs(ctx context.Context, q repository.ListQuery) ([]model.FAQ, int64, error) {
	return f.content.ListFAQs(ctx, q)
}

func (f *StorefrontFacade) CreateFAQ(ctx context.Context, faq *model.FAQ) (*model.FAQ, error) {
	return f.content.CreateFAQ(ctx, faq)
}

func (f *StorefrontFacade) UpdateFAQ(ctx context.Context, faq *model.FAQ) (*model.FAQ, error) {
	return f.content.UpdateFAQ(ctx, faq)
}

func (f *StorefrontFacade) DeleteFAQ(ctx context.Context, id int64) error {
	return f.content.DeleteFAQ(ctx, id)
}

func (f *StorefrontFacade) ReorderFAQs(ctx context.Context, items []usecase.ReorderItem) error {
	return f.content.ReorderFAQs(ctx, items)
}

func (f *StorefrontFacade) ApprovedTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	return f.content.ApprovedTestimonials(ctx)
}

func (f *StorefrontFacade) SubmitTestimonial(ctx context.Context, testimonial *model.Testimonial) (*model.Testimonial, error) {
	return f.content.SubmitTestimonial(ctx, testimonial)
}

func (f *StorefrontFacade) Testimonials(ctx context.Context, q repository.ListQuery) ([]model.Testimonial, int64, error) {
	return f.content.ListTestimonials(ctx, q)
}

func (f *StorefrontFacade) UpdateTestimonial(ctx context.Context, testimonial *model.Testimonial) (*model.Testimonial, error) {
	return f.content.UpdateTestimonial(ctx, testimonial)
}

func (f *StorefrontFacade) ApproveTestimonial(ctx context.Context, id int64, approved bool) (*model.Testimonial, error) {
	return f.content.ApproveTestimonial(ctx, id, approved)
}

func (f *StorefrontFacade) DeleteTestimonial(ctx context.Context, id int64) error {
	return f.content.DeleteTestimonial(ctx, id)
}
