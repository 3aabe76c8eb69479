package usecase

import (
	"context"

	domainErrors "github.com/sweetcrumb/bakehouse/internal/domain/errors"
	"github.com/sweetcrumb/bakehouse/internal/domain/model"
	"github.com/sweetcrumb/bakehouse/internal/domain/repository"
)

// ContentUseCase manages FAQs and testimonials.
type ContentUseCase struct {
	faqs         repository.FAQRepository
	testimonials repository.TestimonialRepository
}

// NewContentUseCase constructs ContentUseCase.
func NewContentUseCase(faqs repository.FAQRepository, testimonials repository.TestimonialRepository) *ContentUseCase {
	return &ContentUseCase{faqs: faqs, testimonials: testimonials}
}

// FAQs returns all entries in display order.
func (u *ContentUseCase) FAQs(ctx context.Context) ([]model.FAQ, error) {
	return u.faqs.ListOrdered(ctx)
}

// FAQCategories returns the distinct category names.
func (u *ContentUseCase) FAQCategories(ctx context.Context) ([]string, error) {
	return u.faqs.Categories(ctx)
}

// ListFAQs runs an admin list query.
func (u *ContentUseCase) ListFAQs(ctx context.Context, q repository.ListQuery) ([]model.FAQ, int64, error) {
	return u.faqs.List(ctx, q)
}

func validateFAQ(faq *model.FAQ) error {
	fields := map[string]string{}
	if faq.Question == "" {
		fields["question"] = "please add a question"
	}
	if faq.Answer == "" {
		fields["answer"] = "please add an answer"
	}
	if len(fields) > 0 {
		return &domainErrors.ValidationError{Fields: fields}
	}
	return nil
}

// CreateFAQ validates and stores a new entry.
func (u *ContentUseCase) CreateFAQ(ctx context.Context, faq *model.FAQ) (*model.FAQ, error) {
	if err := validateFAQ(faq); err != nil {
		return nil, err
	}
	return u.faqs.Create(ctx, faq)
}

// UpdateFAQ replaces an existing entry.
func (u *ContentUseCase) UpdateFAQ(ctx context.Context, faq *model.FAQ) (*model.FAQ, error) {
	if err := validateFAQ(faq); err != nil {
		return nil, err
	}
	if _, err := u.faqs.GetByID(ctx, faq.ID); err != nil {
		return nil, err
	}
	return u.faqs.Update(ctx, faq)
}

// DeleteFAQ removes an entry.
func (u *ContentUseCase) DeleteFAQ(ctx context.Context, id int64) error {
	if _, err := u.faqs.GetByID(ctx, id); err != nil {
		return err
	}
	return u.faqs.Delete(ctx, id)
}

// ReorderItem assigns one FAQ its new display position.
type ReorderItem struct {
	ID    int64
	Order int
}

// ReorderFAQs applies a batch of display-order assignments atomically.
func (u *ContentUseCase) ReorderFAQs(ctx context.Context, items []ReorderItem) error {
	if len(items) == 0 {
		return domainErrors.NewValidation("orders", "please provide an array of FAQ ids and orders")
	}
	orders := make([]repository.FAQOrder, 0, len(items))
	for _, item := range items {
		orders = append(orders, repository.FAQOrder{ID: item.ID, Order: item.Order})
	}
	return u.faqs.UpdateDisplayOrders(ctx, orders)
}

// ApprovedTestimonials returns the public review list, newest first.
func (u *ContentUseCase) ApprovedTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	return u.testimonials.ListApproved(ctx)
}

// SubmitTestimonial stores a public submission. Approval is always forced
// off: a visitor cannot publish their own review.
func (u *ContentUseCase) SubmitTestimonial(ctx context.Context, testimonial *model.Testimonial) (*model.Testimonial, error) {
	fields := map[string]string{}
	if testimonial.Name == "" {
		fields["name"] = "please add a name"
	}
	if testimonial.Text == "" {
		fields["text"] = "please add testimonial text"
	}
	if testimonial.Rating != nil && (*testimonial.Rating < 1 || *testimonial.Rating > 5) {
		fields["rating"] = "rating must be between 1 and 5"
	}
	if len(fields) > 0 {
		return nil, &domainErrors.ValidationError{Fields: fields}
	}
	testimonial.Approved = false
	return u.testimonials.Create(ctx, testimonial)
}

// ListTestimonials runs an admin list query including unapproved entries.
func (u *ContentUseCase) ListTestimonials(ctx context.Context, q repository.ListQuery) ([]model.Testimonial, int64, error) {
	return u.testimonials.List(ctx, q)
}

// UpdateTestimonial replaces an existing entry.
func (u *ContentUseCase) UpdateTestimonial(ctx context.Context, testimonial *model.Testimonial) (*model.Testimonial, error) {
	if _, err := u.testimonials.GetByID(ctx, testimonial.ID); err != nil {
		return nil, err
	}
	return u.testimonials.Update(ctx, testimonial)
}

// ApproveTestimonial toggles a testimonial's public visibility.
func (u *ContentUseCase) ApproveTestimonial(ctx context.Context, id int64, approved bool) (*model.Testimonial, error) {
	return u.testimonials.SetApproved(ctx, id, approved)
}

// DeleteTestimonial removes an entry.
func (u *ContentUseCase) DeleteTestimonial(ctx context.Context, id int64) error {
	if _, err := u.testimonials.GetByID(ctx, id); err != nil {
		return err
	}
	return u.testimonials.Delete(ctx, id)
}
