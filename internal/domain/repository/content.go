package repository

import (
	"context"

	"github.com/sweetcrumb/bakehouse/internal/domain/model"
)

// FAQOrder assigns one FAQ its new display position.
type FAQOrder struct {
	ID    int64
	Order int
}

// FAQRepository describes persistence operations with FAQ entries.
type FAQRepository interface {
	Create(ctx context.Context, faq *model.FAQ) (*model.FAQ, error)
	GetByID(ctx context.Context, id int64) (*model.FAQ, error)
	ListOrdered(ctx context.Context) ([]model.FAQ, error)
	Categories(ctx context.Context) ([]string, error)
	List(ctx context.Context, q ListQuery) ([]model.FAQ, int64, error)
	Update(ctx context.Context, faq *model.FAQ) (*model.FAQ, error)
	// UpdateDisplayOrders applies the batch atomically: either every entry
	// moves or none do.
	UpdateDisplayOrders(ctx context.Context, orders []FAQOrder) error
	Delete(ctx context.Context, id int64) error
}

// TestimonialRepository describes persistence operations with testimonials.
type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *model.Testimonial) (*model.Testimonial, error)
	GetByID(ctx context.Context, id int64) (*model.Testimonial, error)
	ListApproved(ctx context.Context) ([]model.Testimonial, error)
	List(ctx context.Context, q ListQuery) ([]model.Testimonial, int64, error)
	Update(ctx context.Context, testimonial *model.Testimonial) (*model.Testimonial, error)
	SetApproved(ctx context.Context, id int64, approved bool) (*model.Testimonial, error)
	Delete(ctx context.Context, id int64) error
}
