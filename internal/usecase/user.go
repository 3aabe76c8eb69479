package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/sweetcrumb/bakehouse/internal/pkg/auth"

	domainErrors "github.com/sweetcrumb/bakehouse/internal/domain/errors"
	"github.com/sweetcrumb/bakehouse/internal/domain/model"
	"github.com/sweetcrumb/bakehouse/internal/domain/repository"
)

// UserUseCase covers self-service profile operations, the wishlist and
// admin account management. Registration and session issuance live outside
// this service.
type UserUseCase struct {
	users    repository.UserRepository
	products repository.ProductRepository
	hasher   auth.PasswordHasher
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository, products repository.ProductRepository, hasher auth.PasswordHasher) *UserUseCase {
	return &UserUseCase{users: users, products: products, hasher: hasher}
}

// Profile returns the account for the given id.
func (u *UserUseCase) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return u.users.GetByID(ctx, userID)
}

// UpdateProfile applies self-service changes. The role field is never
// touched here; only UpdateUser can change it.
func (u *UserUseCase) UpdateProfile(ctx context.Context, userID int64, update repository.UserUpdate) (*model.User, error) {
	update.Role = nil
	if update.Email != nil && *update.Email == "" {
		return nil, domainErrors.NewValidation("email", "email cannot be empty")
	}
	return u.users.Update(ctx, userID, update)
}

// ChangePassword verifies the current password and stores a new hash.
func (u *UserUseCase) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	if next == "" {
		return domainErrors.NewValidation("newPassword", "please provide a new password")
	}
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := u.hasher.Compare(user.PasswordHash, current); err != nil {
		return fmt.Errorf("current password is incorrect: %w", domainErrors.ErrUnauthorized)
	}
	hash, err := u.hasher.Hash(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return u.users.UpdatePassword(ctx, userID, hash)
}

// Wishlist returns the user's saved products.
func (u *UserUseCase) Wishlist(ctx context.Context, userID int64) ([]model.Product, error) {
	return u.users.Wishlist(ctx, userID)
}

// AddToWishlist saves a product for the user. A product already present is
// a conflict, whether the pre-check sees it or a concurrent add hits the
// unique index.
func (u *UserUseCase) AddToWishlist(ctx context.Context, userID, productID int64) ([]model.Product, error) {
	if _, err := u.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	exists, err := u.users.WishlistContains(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &domainErrors.ConflictError{Message: "product already in wishlist"}
	}
	if err := u.users.AddToWishlist(ctx, userID, productID); err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, &domainErrors.ConflictError{Message: "product already in wishlist"}
		}
		return nil, err
	}
	return u.users.Wishlist(ctx, userID)
}

// RemoveFromWishlist drops a product from the user's wishlist.
func (u *UserUseCase) RemoveFromWishlist(ctx context.Context, userID, productID int64) ([]model.Product, error) {
	if err := u.users.RemoveFromWishlist(ctx, userID, productID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, &domainErrors.ConflictError{Message: "product not in wishlist"}
		}
		return nil, err
	}
	return u.users.Wishlist(ctx, userID)
}

// ListUsers runs an admin list query.
func (u *UserUseCase) ListUsers(ctx context.Context, q repository.ListQuery) ([]model.User, int64, error) {
	return u.users.List(ctx, q)
}

// GetUser returns a single account for the admin panel.
func (u *UserUseCase) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// UpdateUser applies admin changes, including role reassignment.
func (u *UserUseCase) UpdateUser(ctx context.Context, id int64, update repository.UserUpdate) (*model.User, error) {
	if update.Role != nil && *update.Role != model.RoleCustomer && *update.Role != model.RoleAdmin {
		return nil, domainErrors.NewValidation("role", "invalid role")
	}
	return u.users.Update(ctx, id, update)
}

// DeleteUser removes an account. Orders keep their snapshot but lose the
// owner reference.
func (u *UserUseCase) DeleteUser(ctx context.Context, id int64) error {
	if _, err := u.users.GetByID(ctx, id); err != nil {
		return err
	}
	return u.users.Delete(ctx, id)
}

// UpdateUserNotes replaces the admin notes on an account.
func (u *UserUseCase) UpdateUserNotes(ctx context.Context, id int64, notes string) (*model.User, error) {
	return u.users.UpdateNotes(ctx, id, notes)
}

// SetUserActive toggles whether an account may act.
func (u *UserUseCase) SetUserActive(ctx context.Context, id int64, active bool) (*model.User, error) {
	return u.users.SetActive(ctx, id, active)
}
