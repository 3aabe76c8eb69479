package usecase_test

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/sweetcrumb/bakehouse/internal/domain/errors"
	"github.com/sweetcrumb/bakehouse/internal/domain/model"
	"github.com/sweetcrumb/bakehouse/internal/test"
	. "github.com/sweetcrumb/bakehouse/internal/usecase"
)

func validProduct() *model.Product {
	return &model.Product{
		Name:        "Chocolate Fudge Cake",
		CategoryID:  2,
		Price:       2500,
		Description: "Rich chocolate layers",
		Image:       "/uploads/products/cake.jpg",
	}
}

func TestCatalogCreateProductValidates(t *testing.T) {
	uc := NewCatalogUseCase(&test.ProductRepositoryStub{}, &test.CategoryRepositoryStub{})

	_, err := uc.CreateProduct(context.Background(), &model.Product{})
	var validation *domainErrors.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"name", "category", "price", "description", "image"} {
		if _, ok := validation.Fields[field]; !ok {
			t.Fatalf("%s error missing: %v", field, validation.Fields)
		}
	}
}

func TestCatalogCreateProductRequiresExistingCategory(t *testing.T) {
	categories := &test.CategoryRepositoryStub{
		GetByIDFn: func(context.Context, int64) (*model.Category, error) {
			return nil, domainErrors.ErrNotFound
		},
	}
	uc := NewCatalogUseCase(&test.ProductRepositoryStub{}, categories)

	if _, err := uc.CreateProduct(context.Background(), validProduct()); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogCreateProductDefaultsMinQuantity(t *testing.T) {
	categories := &test.CategoryRepositoryStub{
		GetByIDFn: func(_ context.Context, id int64) (*model.Category, error) {
			return &model.Category{ID: id}, nil
		},
	}
	var stored *model.Product
	products := &test.ProductRepositoryStub{
		CreateFn: func(_ context.Context, p *model.Product) (*model.Product, error) {
			stored = p
			return p, nil
		},
	}
	uc := NewCatalogUseCase(products, categories)

	if _, err := uc.CreateProduct(context.Background(), validProduct()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.MinQuantity != 1 {
		t.Fatalf("expected min quantity 1, got %d", stored.MinQuantity)
	}
}

func TestCatalogDeleteCategoryWithProductsConflicts(t *testing.T) {
	categories := &test.CategoryRepositoryStub{
		GetByIDFn: func(_ context.Context, id int64) (*model.Category, error) {
			return &model.Category{ID: id, Name: "Cakes"}, nil
		},
		DeleteFn: func(context.Context, int64) error {
			t.Fatal("a referenced category must not be deleted")
			return nil
		},
	}
	products := &test.ProductRepositoryStub{
		CountByCategoryFn: func(context.Context, int64) (int64, error) { return 3, nil },
	}
	uc := NewCatalogUseCase(products, categories)

	err := uc.DeleteCategory(context.Background(), 2)
	var conflict *domainErrors.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestCatalogDeleteEmptyCategory(t *testing.T) {
	deleted := false
	categories := &test.CategoryRepositoryStub{
		GetByIDFn: func(_ context.Context, id int64) (*model.Category, error) {
			return &model.Category{ID: id}, nil
		},
		DeleteFn: func(context.Context, int64) error {
			deleted = true
			return nil
		},
	}
	uc := NewCatalogUseCase(&test.ProductRepositoryStub{}, categories)

	if err := uc.DeleteCategory(context.Background(), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Fatal("empty category should be deleted")
	}
}
