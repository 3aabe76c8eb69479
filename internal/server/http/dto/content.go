package dto

import (
	"time"

	"github.com/sweetcrumb/bakehouse/internal/domain/model"
	"github.com/sweetcrumb/bakehouse/internal/usecase"
)

// FAQRequest is the admin create/update payload for a help entry.
type FAQRequest struct {
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	Category     string `json:"category,omitempty"`
	DisplayOrder int    `json:"displayOrder,omitempty"`
}

// ToModel converts the payload into a domain FAQ.
func (r FAQRequest) ToModel() *model.FAQ {
	return &model.FAQ{
		Question:     r.Question,
		Answer:       r.Answer,
		Category:     r.Category,
		DisplayOrder: r.DisplayOrder,
	}
}

// FAQResponse is the serialized help entry.
type FAQResponse struct {
	ID           int64     `json:"id"`
	Question     string    `json:"question"`
	Answer       string    `json:"answer"`
	Category     string    `json:"category,omitempty"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToFAQResponse maps a domain FAQ for serialization.
func ToFAQResponse(f model.FAQ) FAQResponse {
	return FAQResponse{
		ID:           f.ID,
		Question:     f.Question,
		Answer:       f.Answer,
		Category:     f.Category,
		DisplayOrder: f.DisplayOrder,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

// ToFAQResponses maps a slice of FAQs.
func ToFAQResponses(faqs []model.FAQ) []FAQResponse {
	out := make([]FAQResponse, 0, len(faqs))
	for _, f := range faqs {
		out = append(out, ToFAQResponse(f))
	}
	return out
}

// ReorderFAQsRequest is the batch display-order assignment payload.
type ReorderFAQsRequest struct {
	Orders []struct {
		ID    int64 `json:"id"`
		Order int   `json:"order"`
	} `json:"orders"`
}

// ToItems converts the payload into use-case reorder items.
func (r ReorderFAQsRequest) ToItems() []usecase.ReorderItem {
	items := make([]usecase.ReorderItem, 0, len(r.Orders))
	for _, o := range r.Orders {
		items = append(items, usecase.ReorderItem{ID: o.ID, Order: o.Order})
	}
	return items
}

// TestimonialRequest is the submission/update payload for a review.
type TestimonialRequest struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Rating   *int   `json:"rating,omitempty"`
	Text     string `json:"text"`
	Image    string `json:"image,omitempty"`
	Approved *bool  `json:"approved,omitempty"`
}

// ToModel converts the payload into a domain testimonial. The approved flag
// is honoured only on admin routes; public submission overrides it.
func (r TestimonialRequest) ToModel() *model.Testimonial {
	t := &model.Testimonial{
		Name:     r.Name,
		Location: r.Location,
		Rating:   r.Rating,
		Text:     r.Text,
		Image:    r.Image,
	}
	if r.Approved != nil {
		t.Approved = *r.Approved
	}
	return t
}

// ApproveTestimonialRequest toggles a review's public visibility.
type ApproveTestimonialRequest struct {
	Approved bool `json:"approved"`
}

// TestimonialResponse is the serialized review.
type TestimonialResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	Rating    *int      `json:"rating,omitempty"`
	Text      string    `json:"text"`
	Image     string    `json:"image,omitempty"`
	Approved  bool      `json:"approved"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToTestimonialResponse maps a domain testimonial for serialization.
func ToTestimonialResponse(t model.Testimonial) TestimonialResponse {
	return TestimonialResponse{
		ID:        t.ID,
		Name:      t.Name,
		Location:  t.Location,
		Rating:    t.Rating,
		Text:      t.Text,
		Image:     t.Image,
		Approved:  t.Approved,
		Date:      t.Date,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// ToTestimonialResponses maps a slice of testimonials.
func ToTestimonialResponses(testimonials []model.Testimonial) []TestimonialResponse {
	out := make([]TestimonialResponse, 0, len(testimonials))
	for _, t := range testimonials {
		out = append(out, ToTestimonialResponse(t))
	}
	return out
}
