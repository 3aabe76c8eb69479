package usecase

import (
	"context"

	domainErrors "github.com/sweetcrumb/bakehouse/internal/domain/errors"
	"github.com/sweetcrumb/bakehouse/internal/domain/model"
	"github.com/sweetcrumb/bakehouse/internal/domain/repository"
)

// CatalogUseCase manages products and categories.
type CatalogUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository, categories repository.CategoryRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, categories: categories}
}

func validateProduct(p *model.Product) error {
	fields := map[string]string{}
	if p.Name == "" {
		fields["name"] = "please add a product name"
	}
	if p.CategoryID == 0 {
		fields["category"] = "please add a category"
	}
	if p.Price <= 0 {
		fields["price"] = "please add a price"
	}
	if p.Description == "" {
		fields["description"] = "please add a description"
	}
	if p.Image == "" {
		fields["image"] = "please add an image URL"
	}
	if len(fields) > 0 {
		return &domainErrors.ValidationError{Fields: fields}
	}
	return nil
}

// CreateProduct validates and stores a new catalog product.
func (u *CatalogUseCase) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if product.MinQuantity < 1 {
		product.MinQuantity = 1
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	if _, err := u.categories.GetByID(ctx, product.CategoryID); err != nil {
		return nil, err
	}
	return u.products.Create(ctx, product)
}

// GetProduct returns one product.
func (u *CatalogUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// ListProducts runs a bounded list query against the catalog.
func (u *CatalogUseCase) ListProducts(ctx context.Context, q repository.ListQuery) ([]model.Product, int64, error) {
	return u.products.List(ctx, q)
}

// FeaturedProducts returns the storefront feature strip.
func (u *CatalogUseCase) FeaturedProducts(ctx context.Context) ([]model.Product, error) {
	return u.products.ListFeatured(ctx)
}

// ProductsByCategory returns all products in one category.
func (u *CatalogUseCase) ProductsByCategory(ctx context.Context, categoryID int64) ([]model.Product, error) {
	return u.products.ListByCategory(ctx, categoryID)
}

// UpdateProduct validates and replaces an existing product.
func (u *CatalogUseCase) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	if _, err := u.products.GetByID(ctx, product.ID); err != nil {
		return nil, err
	}
	return u.products.Update(ctx, product)
}

// DeleteProduct removes a product permanently.
func (u *CatalogUseCase) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := u.products.GetByID(ctx, id); err != nil {
		return err
	}
	return u.products.Delete(ctx, id)
}

// Categories lists all catalog categories.
func (u *CatalogUseCase) Categories(ctx context.Context) ([]model.Category, error) {
	return u.categories.List(ctx)
}

// CreateCategory validates and stores a new category.
func (u *CatalogUseCase) CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	fields := map[string]string{}
	if category.Name == "" {
		fields["name"] = "please add a category name"
	}
	if category.Image == "" {
		fields["image"] = "please add an image URL"
	}
	if len(fields) > 0 {
		return nil, &domainErrors.ValidationError{Fields: fields}
	}
	return u.categories.Create(ctx, category)
}

// UpdateCategory replaces an existing category.
func (u *CatalogUseCase) UpdateCategory(ctx context.Context, category *model.Category) (*model.Category, error) {
	if _, err := u.categories.GetByID(ctx, category.ID); err != nil {
		return nil, err
	}
	return u.categories.Update(ctx, category)
}

// DeleteCategory refuses to remove a category that products still reference.
func (u *CatalogUseCase) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := u.categories.GetByID(ctx, id); err != nil {
		return err
	}
	count, err := u.products.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &domainErrors.ConflictError{Message: "cannot delete category with associated products"}
	}
	return u.categories.Delete(ctx, id)
}
