package repository

import (
	"context"

	"github.com/sweetcrumb/bakehouse/internal/domain/model"
)

// UserUpdate carries partial profile changes. Nil fields are left untouched.
type UserUpdate struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Phone      *string
	Address    *string
	Newsletter *bool
	Role       *model.Role
}

// UserRepository describes persistence operations with user accounts.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context, q ListQuery) ([]model.User, int64, error)
	Update(ctx context.Context, id int64, update UserUpdate) (*model.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateNotes(ctx context.Context, id int64, notes string) (*model.User, error)
	SetActive(ctx context.Context, id int64, active bool) (*model.User, error)
	Delete(ctx context.Context, id int64) error

	Wishlist(ctx context.Context, userID int64) ([]model.Product, error)
	WishlistContains(ctx context.Context, userID, productID int64) (bool, error)
	AddToWishlist(ctx context.Context, userID, productID int64) error
	RemoveFromWishlist(ctx context.Context, userID, productID int64) error
}
