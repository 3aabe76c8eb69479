package usecase_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	domainErrors "github.com/sweetcrumb/bakehouse/internal/domain/errors"
	"github.com/sweetcrumb/bakehouse/internal/domain/model"
	"github.com/sweetcrumb/bakehouse/internal/domain/repository"
	"github.com/sweetcrumb/bakehouse/internal/test"
	. "github.com/sweetcrumb/bakehouse/internal/usecase"
)

func validOrderInput() CreateOrderInput {
	return CreateOrderInput{
		Customer: model.Customer{Name: "Jane Doe", Email: "jane@example.com", Phone: "0712345678"},
		Items: []model.OrderItem{
			{ProductID: 3, Name: "Sourdough Loaf", Quantity: 2, Price: 450},
		},
		Total:          900,
		DeliveryMethod: model.DeliveryMethodPickup,
		DeliveryDate:   time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
	}
}

func TestOrderCreateGeneratesNumber(t *testing.T) {
	repo := &test.OrderRepositoryStub{}
	uc := NewOrderUseCase(repo, "BKH")
	SetOrderNow(uc, func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) })
	SetOrderRandN(uc, func(int) int { return 17 })

	order, err := uc.Create(context.Background(), validOrderInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.OrderNumber != "BKH-250601-0017" {
		t.Fatalf("unexpected order number %q", order.OrderNumber)
	}
	if matched := regexp.MustCompile(`^BKH-\d{6}-\d{4}$`).MatchString(order.OrderNumber); !matched {
		t.Fatalf("order number %q does not match pattern", order.OrderNumber)
	}
}

func TestOrderCreateRetriesOnNumberCollision(t *testing.T) {
	attempts := 0
	repo := &test.OrderRepositoryStub{
		CreateFn: func(_ context.Context, order *model.Order) (*model.Order, error) {
			attempts++
			if attempts == 1 {
				return nil, domainErrors.ErrAlreadyExists
			}
			created := *order
			created.ID = 1
			return &created, nil
		},
	}
	uc := NewOrderUseCase(repo, "BKH")

	if _, err := uc.Create(context.Background(), validOrderInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected one retry, got %d attempts", attempts)
	}
	if len(repo.Created) != 2 || repo.Created[0].OrderNumber == repo.Created[1].OrderNumber {
		t.Fatal("retry must use a fresh order number")
	}
}

func TestOrderCreateDeliveryAddressRule(t *testing.T) {
	repo := &test.OrderRepositoryStub{}
	uc := NewOrderUseCase(repo, "BKH")

	input := validOrderInput()
	input.DeliveryMethod = model.DeliveryMethodDelivery

	_, err := uc.Create(context.Background(), input)
	var validation *domainErrors.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := validation.Fields["deliveryAddress"]; !ok {
		t.Fatalf("expected the missing address to be named, got %v", validation.Fields)
	}

	input.DeliveryMethod = model.DeliveryMethodPickup
	if _, err := uc.Create(context.Background(), input); err != nil {
		t.Fatalf("pickup must not require an address: %v", err)
	}
}

func TestOrderCreateRejectsEmptyItems(t *testing.T) {
	uc := NewOrderUseCase(&test.OrderRepositoryStub{}, "BKH")

	input := validOrderInput()
	input.Items = nil

	_, err := uc.Create(context.Background(), input)
	var validation *domainErrors.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := validation.Fields["items"]; !ok {
		t.Fatalf("items error missing: %v", validation.Fields)
	}
}

func TestOrderGetRestrictedToOwnerOrAdmin(t *testing.T) {
	owner := int64(7)
	repo := &test.OrderRepositoryStub{
		GetByIDFn: func(context.Context, int64) (*model.Order, error) {
			return &model.Order{ID: 1, Customer: model.Customer{UserID: &owner}}, nil
		},
	}
	uc := NewOrderUseCase(repo, "BKH")

	if _, err := uc.Get(context.Background(), 1, &model.User{ID: 9, Role: model.RoleCustomer}); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := uc.Get(context.Background(), 1, &model.User{ID: 7, Role: model.RoleCustomer}); err != nil {
		t.Fatalf("owner must read own order: %v", err)
	}
	if _, err := uc.Get(context.Background(), 1, &model.User{ID: 2, Role: model.RoleAdmin}); err != nil {
		t.Fatalf("admin must read any order: %v", err)
	}
}

func TestOrderUpdateStatusValidatesEnum(t *testing.T) {
	uc := NewOrderUseCase(&test.OrderRepositoryStub{}, "BKH")

	if _, err := uc.UpdateStatus(context.Background(), 1, model.OrderStatus("Teleported")); err == nil {
		t.Fatal("expected validation error for unknown status")
	}
	if _, err := uc.UpdateStatus(context.Background(), 1, model.OrderStatusShipped); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrderListExpandsOwner(t *testing.T) {
	var expanded bool
	repo := &test.OrderRepositoryStub{
		ListFn: func(_ context.Context, _ repository.ListQuery, expandOwner bool) ([]model.Order, int64, error) {
			expanded = expandOwner
			return nil, 0, nil
		},
	}
	uc := NewOrderUseCase(repo, "BKH")
	if _, _, err := uc.List(context.Background(), repository.ListQuery{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !expanded {
		t.Fatal("admin list must expand the owning user")
	}
}
