package model

import "time"

// FAQ is a storefront help entry, ordered by DisplayOrder ascending.
type FAQ struct {
	ID           int64
	Question     string
	Answer       string
	Category     string
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Testimonial is a customer review. Public submissions start unapproved.
type Testimonial struct {
	ID        int64
	Name      string
	Location  string
	Rating    *int
	Text      string
	Image     string
	Approved  bool
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
