package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/sweetcrumb/bakehouse/internal/domain/errors"
	"github.com/sweetcrumb/bakehouse/internal/domain/model"
	"github.com/sweetcrumb/bakehouse/internal/server/http/middleware"
	"github.com/sweetcrumb/bakehouse/internal/test"
	"github.com/sweetcrumb/bakehouse/internal/usecase"
)

const checkoutBody = `{
	"customer": {"name": "Wanjiku", "email": "wanjiku@example.com", "phone": "0712345678"},
	"items": [{"productId": 3, "name": "Sourdough Loaf", "quantity": 2, "price": 450}],
	"total": 900,
	"deliveryMethod": "pickup"
}`

func TestOrderCreateGuestCheckout(t *testing.T) {
	var got usecase.CreateOrderInput
	facade := &test.OrderFacadeStub{
		CreateFn: func(_ context.Context, input usecase.CreateOrderInput) (*model.Order, error) {
			got = input
			return &model.Order{ID: 1, OrderNumber: "BKH-250101-0001", Customer: input.Customer}, nil
		},
	}
	handler := NewOrderHandler(facade, discardLogger())
	engine := gin.New()
	engine.POST("/api/orders", handler.Create)

	w := postJSON(engine, "/api/orders", checkoutBody)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if got.Customer.UserID != nil {
		t.Fatal("guest checkout must not attach an owner")
	}
	if len(got.Items) != 1 || got.Items[0].ProductID != 3 {
		t.Fatalf("unexpected items: %+v", got.Items)
	}
}

func TestOrderCreateLinksSignedInCustomer(t *testing.T) {
	var got usecase.CreateOrderInput
	facade := &test.OrderFacadeStub{
		CreateFn: func(_ context.Context, input usecase.CreateOrderInput) (*model.Order, error) {
			got = input
			return &model.Order{ID: 1, Customer: input.Customer}, nil
		},
	}
	handler := NewOrderHandler(facade, discardLogger())
	engine := gin.New()
	engine.POST("/api/orders", func(c *gin.Context) {
		c.Set(middleware.UserContextKey, &model.User{ID: 7, IsActive: true})
	}, handler.Create)

	w := postJSON(engine, "/api/orders", checkoutBody)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if got.Customer.UserID == nil || *got.Customer.UserID != 7 {
		t.Fatalf("expected owner 7, got %+v", got.Customer.UserID)
	}
}

func TestOrderCreateValidationFields(t *testing.T) {
	facade := &test.OrderFacadeStub{
		CreateFn: func(context.Context, usecase.CreateOrderInput) (*model.Order, error) {
			return nil, &domainErrors.ValidationError{Fields: map[string]string{
				"items": "order must contain at least one item",
			}}
		},
	}
	handler := NewOrderHandler(facade, discardLogger())
	engine := gin.New()
	engine.POST("/api/orders", handler.Create)

	w := postJSON(engine, "/api/orders", `{"customer":{"name":"W"},"items":[],"total":0,"deliveryMethod":"pickup"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	body := decodeBody(t, w)
	fields, _ := body["fields"].(map[string]any)
	if fields["items"] == nil {
		t.Fatalf("expected field errors, got %v", body)
	}
}

func TestOrderCreateRejectsBadDeliveryDate(t *testing.T) {
	created := false
	facade := &test.OrderFacadeStub{
		CreateFn: func(context.Context, usecase.CreateOrderInput) (*model.Order, error) {
			created = true
			return nil, nil
		},
	}
	handler := NewOrderHandler(facade, discardLogger())
	engine := gin.New()
	engine.POST("/api/orders", handler.Create)

	w := postJSON(engine, "/api/orders", `{
		"customer": {"name": "W", "email": "w@example.com", "phone": "0712345678"},
		"items": [{"productId": 3, "name": "Loaf", "quantity": 1, "price": 450}],
		"total": 450,
		"deliveryMethod": "pickup",
		"deliveryDate": "next tuesday"
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if created {
		t.Fatal("unparseable date must not reach the facade")
	}
}

func TestOrderGetNotFound(t *testing.T) {
	handler := NewOrderHandler(&test.OrderFacadeStub{}, discardLogger())
	engine := gin.New()
	engine.GET("/api/orders/:id", handler.Get)

	w := getJSON(engine, "/api/orders/99")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
