package usecase_test

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/sweetcrumb/bakehouse/internal/domain/errors"
	"github.com/sweetcrumb/bakehouse/internal/domain/model"
	"github.com/sweetcrumb/bakehouse/internal/domain/repository"
	"github.com/sweetcrumb/bakehouse/internal/test"
	. "github.com/sweetcrumb/bakehouse/internal/usecase"
)

func TestCreateFAQValidates(t *testing.T) {
	uc := NewContentUseCase(&test.FAQRepositoryStub{}, &test.TestimonialRepositoryStub{})

	_, err := uc.CreateFAQ(context.Background(), &model.FAQ{Category: "delivery"})
	var validation *domainErrors.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := validation.Fields["question"]; !ok {
		t.Fatalf("question error missing: %v", validation.Fields)
	}
	if _, ok := validation.Fields["answer"]; !ok {
		t.Fatalf("answer error missing: %v", validation.Fields)
	}
}

func TestReorderFAQsAppliesEveryItem(t *testing.T) {
	faqs := &test.FAQRepositoryStub{}
	uc := NewContentUseCase(faqs, &test.TestimonialRepositoryStub{})

	err := uc.ReorderFAQs(context.Background(), []ReorderItem{
		{ID: 3, Order: 1},
		{ID: 1, Order: 2},
		{ID: 2, Order: 3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[int64]int{3: 1, 1: 2, 2: 3}
	for id, order := range want {
		if faqs.DisplayOrders[id] != order {
			t.Fatalf("faq %d: expected order %d, got %d", id, order, faqs.DisplayOrders[id])
		}
	}
}

func TestReorderFAQsSubmitsOneBatch(t *testing.T) {
	calls := 0
	faqs := &test.FAQRepositoryStub{
		UpdateDisplayOrdersFn: func(_ context.Context, orders []repository.FAQOrder) error {
			calls++
			if len(orders) != 2 {
				t.Errorf("expected full batch, got %+v", orders)
			}
			return nil
		},
	}
	uc := NewContentUseCase(faqs, &test.TestimonialRepositoryStub{})

	err := uc.ReorderFAQs(context.Background(), []ReorderItem{{ID: 1, Order: 2}, {ID: 2, Order: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("the batch must go down in a single call, got %d", calls)
	}
}

func TestReorderFAQsRejectsEmptyBatch(t *testing.T) {
	uc := NewContentUseCase(&test.FAQRepositoryStub{}, &test.TestimonialRepositoryStub{})

	err := uc.ReorderFAQs(context.Background(), nil)
	var validation *domainErrors.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := validation.Fields["orders"]; !ok {
		t.Fatalf("orders error missing: %v", validation.Fields)
	}
}

func TestSubmitTestimonialForcesUnapproved(t *testing.T) {
	testimonials := &test.TestimonialRepositoryStub{}
	uc := NewContentUseCase(&test.FAQRepositoryStub{}, testimonials)

	created, err := uc.SubmitTestimonial(context.Background(), &model.Testimonial{
		Name:     "Wanjiku",
		Text:     "Best mandazi in town",
		Approved: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Approved {
		t.Fatal("public submissions must never be pre-approved")
	}
	if len(testimonials.Created) != 1 || testimonials.Created[0].Approved {
		t.Fatalf("unexpected stored testimonial: %+v", testimonials.Created)
	}
}

func TestSubmitTestimonialValidatesRating(t *testing.T) {
	uc := NewContentUseCase(&test.FAQRepositoryStub{}, &test.TestimonialRepositoryStub{})

	for _, rating := range []int{0, 6} {
		r := rating
		_, err := uc.SubmitTestimonial(context.Background(), &model.Testimonial{
			Name:   "Wanjiku",
			Text:   "Best mandazi in town",
			Rating: &r,
		})
		var validation *domainErrors.ValidationError
		if !errors.As(err, &validation) {
			t.Fatalf("rating %d: expected validation error, got %v", rating, err)
		}
		if _, ok := validation.Fields["rating"]; !ok {
			t.Fatalf("rating %d: rating error missing: %v", rating, validation.Fields)
		}
	}

	r := 5
	if _, err := uc.SubmitTestimonial(context.Background(), &model.Testimonial{
		Name:   "Wanjiku",
		Text:   "Best mandazi in town",
		Rating: &r,
	}); err != nil {
		t.Fatalf("rating 5 should pass, got %v", err)
	}
}

func TestUpdateFAQRequiresExistingEntry(t *testing.T) {
	faqs := &test.FAQRepositoryStub{
		GetByIDFn: func(context.Context, int64) (*model.FAQ, error) {
			return nil, domainErrors.ErrNotFound
		},
	}
	uc := NewContentUseCase(faqs, &test.TestimonialRepositoryStub{})

	_, err := uc.UpdateFAQ(context.Background(), &model.FAQ{ID: 9, Question: "q", Answer: "a"})
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
