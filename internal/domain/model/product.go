package model

import "time"

// ProductOption is a named customization with a fixed set of choices.
type ProductOption struct {
	Name    string   `json:"name"`
	Choices []string `json:"choices"`
}

// Product is a catalog entry.
type Product struct {
	ID           int64
	Name         string
	CategoryID   int64
	Price        float64
	Description  string
	Image        string
	Allergens    []string
	IsAvailable  bool
	IsFeatured   bool
	Customizable bool
	Options      []ProductOption
	MinServings  *int
	MaxServings  *int
	MinQuantity  int
	MaxQuantity  *int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Category groups catalog products.
type Category struct {
	ID          int64
	Name        string
	Description string
	Image       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
