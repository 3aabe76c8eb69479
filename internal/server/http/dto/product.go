package dto

import (
	"time"

	"github.com/sweetcrumb/bakehouse/internal/domain/model"
)

// ProductRequest is the admin create/update payload for a catalog product.
type ProductRequest struct {
	Name         string                `json:"name"`
	CategoryID   int64                 `json:"category"`
	Price        float64               `json:"price"`
	Description  string                `json:"description,omitempty"`
	Image        string                `json:"image,omitempty"`
	Allergens    []string              `json:"allergens,omitempty"`
	IsAvailable  *bool                 `json:"isAvailable,omitempty"`
	IsFeatured   bool                  `json:"isFeatured,omitempty"`
	Customizable bool                  `json:"customizable,omitempty"`
	Options      []model.ProductOption `json:"options,omitempty"`
	MinServings  *int                  `json:"minServings,omitempty"`
	MaxServings  *int                  `json:"maxServings,omitempty"`
	MinQuantity  int                   `json:"minQuantity,omitempty"`
	MaxQuantity  *int                  `json:"maxQuantity,omitempty"`
}

// ToModel converts the payload into a domain product. Availability defaults
// to true when omitted.
func (r ProductRequest) ToModel() *model.Product {
	available := true
	if r.IsAvailable != nil {
		available = *r.IsAvailable
	}
	return &model.Product{
		Name:         r.Name,
		CategoryID:   r.CategoryID,
		Price:        r.Price,
		Description:  r.Description,
		Image:        r.Image,
		Allergens:    r.Allergens,
		IsAvailable:  available,
		IsFeatured:   r.IsFeatured,
		Customizable: r.Customizable,
		Options:      r.Options,
		MinServings:  r.MinServings,
		MaxServings:  r.MaxServings,
		MinQuantity:  r.MinQuantity,
		MaxQuantity:  r.MaxQuantity,
	}
}

// ProductResponse is the serialized catalog product.
type ProductResponse struct {
	ID           int64                 `json:"id"`
	Name         string                `json:"name"`
	CategoryID   int64                 `json:"category"`
	Price        float64               `json:"price"`
	Description  string                `json:"description,omitempty"`
	Image        string                `json:"image,omitempty"`
	Allergens    []string              `json:"allergens,omitempty"`
	IsAvailable  bool                  `json:"isAvailable"`
	IsFeatured   bool                  `json:"isFeatured"`
	Customizable bool                  `json:"customizable"`
	Options      []model.ProductOption `json:"options,omitempty"`
	MinServings  *int                  `json:"minServings,omitempty"`
	MaxServings  *int                  `json:"maxServings,omitempty"`
	MinQuantity  int                   `json:"minQuantity"`
	MaxQuantity  *int                  `json:"maxQuantity,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// ToProductResponse maps a domain product for serialization.
func ToProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		CategoryID:   p.CategoryID,
		Price:        p.Price,
		Description:  p.Description,
		Image:        p.Image,
		Allergens:    p.Allergens,
		IsAvailable:  p.IsAvailable,
		IsFeatured:   p.IsFeatured,
		Customizable: p.Customizable,
		Options:      p.Options,
		MinServings:  p.MinServings,
		MaxServings:  p.MaxServings,
		MinQuantity:  p.MinQuantity,
		MaxQuantity:  p.MaxQuantity,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToProductResponses maps a slice of products.
func ToProductResponses(products []model.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out
}

// CategoryRequest is the admin create/update payload for a category.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// CategoryResponse is the serialized category.
type CategoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToCategoryResponse maps a domain category for serialization.
func ToCategoryResponse(c model.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Image:       c.Image,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCategoryResponses maps a slice of categories.
func ToCategoryResponses(categories []model.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, ToCategoryResponse(c))
	}
	return out
}
