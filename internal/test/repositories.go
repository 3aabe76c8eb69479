package test

import (
	"context"

	domainErrors "github.com/sweetcrumb/bakehouse/internal/domain/errors"
	"github.com/sweetcrumb/bakehouse/internal/domain/model"
	"github.com/sweetcrumb/bakehouse/internal/domain/repository"
)

// OrderRepositoryStub allows tests to customize order persistence behaviour.
type OrderRepositoryStub struct {
	CreateFn                 func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn                func(context.Context, int64) (*model.Order, error)
	GetByCheckoutRequestIDFn func(context.Context, string) (*model.Order, error)
	ListByUserFn             func(context.Context, int64) ([]model.Order, error)
	ListFn                   func(context.Context, repository.ListQuery, bool) ([]model.Order, int64, error)
	UpdateStatusFn           func(context.Context, int64, model.OrderStatus) (*model.Order, error)
	UpdateNotesFn            func(context.Context, int64, string) (*model.Order, error)
	UpdatePaymentFn          func(context.Context, int64, model.PaymentStatus, model.PaymentDetails) (*model.Order, error)
	SetPaymentInitiatedFn    func(context.Context, int64, string, model.PaymentDetails) error
	DeleteFn                 func(context.Context, int64) error

	Created []model.Order
}

func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	s.Created = append(s.Created, *order)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	created := *order
	created.ID = int64(len(s.Created))
	created.Status = model.OrderStatusPending
	created.PaymentStatus = model.PaymentStatusPending
	return &created, nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) GetByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (*model.Order, error) {
	if s.GetByCheckoutRequestIDFn != nil {
		return s.GetByCheckoutRequestIDFn(ctx, checkoutRequestID)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return nil, nil
}

func (s *OrderRepositoryStub) List(ctx context.Context, q repository.ListQuery, expandOwner bool) ([]model.Order, int64, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, q, expandOwner)
	}
	return nil, 0, nil
}

func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	return &model.Order{ID: id, Status: status}, nil
}

func (s *OrderRepositoryStub) UpdateNotes(ctx context.Context, id int64, notes string) (*model.Order, error) {
	if s.UpdateNotesFn != nil {
		return s.UpdateNotesFn(ctx, id, notes)
	}
	return &model.Order{ID: id, Notes: notes}, nil
}

func (s *OrderRepositoryStub) UpdatePayment(ctx context.Context, id int64, status model.PaymentStatus, details model.PaymentDetails) (*model.Order, error) {
	if s.UpdatePaymentFn != nil {
		return s.UpdatePaymentFn(ctx, id, status, details)
	}
	return &model.Order{ID: id, PaymentStatus: status, PaymentDetails: details}, nil
}

func (s *OrderRepositoryStub) SetPaymentInitiated(ctx context.Context, id int64, method string, details model.PaymentDetails) error {
	if s.SetPaymentInitiatedFn != nil {
		return s.SetPaymentInitiatedFn(ctx, id, method, details)
	}
	return nil
}

func (s *OrderRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// UserRepositoryStub allows tests to customize account persistence behaviour.
type UserRepositoryStub struct {
	GetByIDFn            func(context.Context, int64) (*model.User, error)
	ListFn               func(context.Context, repository.ListQuery) ([]model.User, int64, error)
	UpdateFn             func(context.Context, int64, repository.UserUpdate) (*model.User, error)
	UpdatePasswordFn     func(context.Context, int64, string) error
	UpdateNotesFn        func(context.Context, int64, string) (*model.User, error)
	SetActiveFn          func(context.Context, int64, bool) (*model.User, error)
	DeleteFn             func(context.Context, int64) error
	WishlistFn           func(context.Context, int64) ([]model.Product, error)
	WishlistContainsFn   func(context.Context, int64, int64) (bool, error)
	AddToWishlistFn      func(context.Context, int64, int64) error
	RemoveFromWishlistFn func(context.Context, int64, int64) error

	StoredPasswordUpdates map[int64]string
}

func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *UserRepositoryStub) List(ctx context.Context, q repository.ListQuery) ([]model.User, int64, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, q)
	}
	return nil, 0, nil
}

func (s *UserRepositoryStub) Update(ctx context.Context, id int64, update repository.UserUpdate) (*model.User, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, update)
	}
	return &model.User{ID: id}, nil
}

func (s *UserRepositoryStub) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	if s.StoredPasswordUpdates == nil {
		s.StoredPasswordUpdates = make(map[int64]string)
	}
	s.StoredPasswordUpdates[id] = passwordHash
	if s.UpdatePasswordFn != nil {
		return s.UpdatePasswordFn(ctx, id, passwordHash)
	}
	return nil
}

func (s *UserRepositoryStub) UpdateNotes(ctx context.Context, id int64, notes string) (*model.User, error) {
	if s.UpdateNotesFn != nil {
		return s.UpdateNotesFn(ctx, id, notes)
	}
	return &model.User{ID: id, Notes: notes}, nil
}

func (s *UserRepositoryStub) SetActive(ctx context.Context, id int64, active bool) (*model.User, error) {
	if s.SetActiveFn != nil {
		return s.SetActiveFn(ctx, id, active)
	}
	return &model.User{ID: id, IsActive: active}, nil
}

func (s *UserRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s *UserRepositoryStub) Wishlist(ctx context.Context, userID int64) ([]model.Product, error) {
	if s.WishlistFn != nil {
		return s.WishlistFn(ctx, userID)
	}
	return nil, nil
}

func (s *UserRepositoryStub) WishlistContains(ctx context.Context, userID, productID int64) (bool, error) {
	if s.WishlistContainsFn != nil {
		return s.WishlistContainsFn(ctx, userID, productID)
	}
	return false, nil
}

func (s *UserRepositoryStub) AddToWishlist(ctx context.Context, userID, productID int64) error {
	if s.AddToWishlistFn != nil {
		return s.AddToWishlistFn(ctx, userID, productID)
	}
	return nil
}

func (s *UserRepositoryStub) RemoveFromWishlist(ctx context.Context, userID, productID int64) error {
	if s.RemoveFromWishlistFn != nil {
		return s.RemoveFromWishlistFn(ctx, userID, productID)
	}
	return nil
}

// ProductRepositoryStub allows tests to customize catalog behaviour.
type ProductRepositoryStub struct {
	CreateFn          func(context.Context, *model.Product) (*model.Product, error)
	GetByIDFn         func(context.Context, int64) (*model.Product, error)
	ListFn            func(context.Context, repository.ListQuery) ([]model.Product, int64, error)
	ListFeaturedFn    func(context.Context) ([]model.Product, error)
	ListByCategoryFn  func(context.Context, int64) ([]model.Product, error)
	UpdateFn          func(context.Context, *model.Product) (*model.Product, error)
	DeleteFn          func(context.Context, int64) error
	CountByCategoryFn func(context.Context, int64) (int64, error)
}

func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	created := *product
	created.ID = 1
	return &created, nil
}

func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProductRepositoryStub) List(ctx context.Context, q repository.ListQuery) ([]model.Product, int64, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, q)
	}
	return nil, 0, nil
}

func (s *ProductRepositoryStub) ListFeatured(ctx context.Context) ([]model.Product, error) {
	if s.ListFeaturedFn != nil {
		return s.ListFeaturedFn(ctx)
	}
	return nil, nil
}

func (s *ProductRepositoryStub) ListByCategory(ctx context.Context, categoryID int64) ([]model.Product, error) {
	if s.ListByCategoryFn != nil {
		return s.ListByCategoryFn(ctx, categoryID)
	}
	return nil, nil
}

func (s *ProductRepositoryStub) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, product)
	}
	return product, nil
}

func (s *ProductRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s *ProductRepositoryStub) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	if s.CountByCategoryFn != nil {
		return s.CountByCategoryFn(ctx, categoryID)
	}
	return 0, nil
}

// CategoryRepositoryStub allows tests to customize category behaviour.
type CategoryRepositoryStub struct {
	CreateFn  func(context.Context, *model.Category) (*model.Category, error)
	GetByIDFn func(context.Context, int64) (*model.Category, error)
	ListFn    func(context.Context) ([]model.Category, error)
	UpdateFn  func(context.Context, *model.Category) (*model.Category, error)
	DeleteFn  func(context.Context, int64) error
}

func (s *CategoryRepositoryStub) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, category)
	}
	created := *category
	created.ID = 1
	return &created, nil
}

func (s *CategoryRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *CategoryRepositoryStub) List(ctx context.Context) ([]model.Category, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return nil, nil
}

func (s *CategoryRepositoryStub) Update(ctx context.Context, category *model.Category) (*model.Category, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, category)
	}
	return category, nil
}

func (s *CategoryRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// SettingsRepositoryStub allows tests to customize settings behaviour.
type SettingsRepositoryStub struct {
	GetFn    func(context.Context) (*model.Settings, error)
	UpsertFn func(context.Context, *model.Settings) (*model.Settings, error)

	Upserted []model.Settings
}

func (s *SettingsRepositoryStub) Get(ctx context.Context) (*model.Settings, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *SettingsRepositoryStub) Upsert(ctx context.Context, settings *model.Settings) (*model.Settings, error) {
	s.Upserted = append(s.Upserted, *settings)
	if s.UpsertFn != nil {
		return s.UpsertFn(ctx, settings)
	}
	return settings, nil
}

// FAQRepositoryStub allows tests to customize FAQ behaviour.
type FAQRepositoryStub struct {
	CreateFn              func(context.Context, *model.FAQ) (*model.FAQ, error)
	GetByIDFn             func(context.Context, int64) (*model.FAQ, error)
	ListOrderedFn         func(context.Context) ([]model.FAQ, error)
	CategoriesFn          func(context.Context) ([]string, error)
	ListFn                func(context.Context, repository.ListQuery) ([]model.FAQ, int64, error)
	UpdateFn              func(context.Context, *model.FAQ) (*model.FAQ, error)
	UpdateDisplayOrdersFn func(context.Context, []repository.FAQOrder) error
	DeleteFn              func(context.Context, int64) error

	DisplayOrders map[int64]int
}

func (s *FAQRepositoryStub) Create(ctx context.Context, faq *model.FAQ) (*model.FAQ, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, faq)
	}
	created := *faq
	created.ID = 1
	return &created, nil
}

func (s *FAQRepositoryStub) GetByID(ctx context.Context, id int64) (*model.FAQ, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return &model.FAQ{ID: id}, nil
}

func (s *FAQRepositoryStub) ListOrdered(ctx context.Context) ([]model.FAQ, error) {
	if s.ListOrderedFn != nil {
		return s.ListOrderedFn(ctx)
	}
	return nil, nil
}

func (s *FAQRepositoryStub) Categories(ctx context.Context) ([]string, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return nil, nil
}

func (s *FAQRepositoryStub) List(ctx context.Context, q repository.ListQuery) ([]model.FAQ, int64, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, q)
	}
	return nil, 0, nil
}

func (s *FAQRepositoryStub) Update(ctx context.Context, faq *model.FAQ) (*model.FAQ, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, faq)
	}
	return faq, nil
}

func (s *FAQRepositoryStub) UpdateDisplayOrders(ctx context.Context, orders []repository.FAQOrder) error {
	if s.UpdateDisplayOrdersFn != nil {
		return s.UpdateDisplayOrdersFn(ctx, orders)
	}
	if s.DisplayOrders == nil {
		s.DisplayOrders = make(map[int64]int)
	}
	for _, o := range orders {
		s.DisplayOrders[o.ID] = o.Order
	}
	return nil
}

func (s *FAQRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// TestimonialRepositoryStub allows tests to customize testimonial behaviour.
type TestimonialRepositoryStub struct {
	CreateFn       func(context.Context, *model.Testimonial) (*model.Testimonial, error)
	GetByIDFn      func(context.Context, int64) (*model.Testimonial, error)
	ListApprovedFn func(context.Context) ([]model.Testimonial, error)
	ListFn         func(context.Context, repository.ListQuery) ([]model.Testimonial, int64, error)
	UpdateFn       func(context.Context, *model.Testimonial) (*model.Testimonial, error)
	SetApprovedFn  func(context.Context, int64, bool) (*model.Testimonial, error)
	DeleteFn       func(context.Context, int64) error

	Created []model.Testimonial
}

func (s *TestimonialRepositoryStub) Create(ctx context.Context, testimonial *model.Testimonial) (*model.Testimonial, error) {
	s.Created = append(s.Created, *testimonial)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, testimonial)
	}
	created := *testimonial
	created.ID = int64(len(s.Created))
	return &created, nil
}

func (s *TestimonialRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Testimonial, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return &model.Testimonial{ID: id}, nil
}

func (s *TestimonialRepositoryStub) ListApproved(ctx context.Context) ([]model.Testimonial, error) {
	if s.ListApprovedFn != nil {
		return s.ListApprovedFn(ctx)
	}
	return nil, nil
}

func (s *TestimonialRepositoryStub) List(ctx context.Context, q repository.ListQuery) ([]model.Testimonial, int64, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, q)
	}
	return nil, 0, nil
}

func (s *TestimonialRepositoryStub) Update(ctx context.Context, testimonial *model.Testimonial) (*model.Testimonial, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, testimonial)
	}
	return testimonial, nil
}

func (s *TestimonialRepositoryStub) SetApproved(ctx context.Context, id int64, approved bool) (*model.Testimonial, error) {
	if s.SetApprovedFn != nil {
		return s.SetApprovedFn(ctx, id, approved)
	}
	return &model.Testimonial{ID: id, Approved: approved}, nil
}

func (s *TestimonialRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}
