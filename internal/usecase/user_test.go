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

func TestUpdateProfileNeverTouchesRole(t *testing.T) {
	var applied repository.UserUpdate
	users := &test.UserRepositoryStub{
		UpdateFn: func(_ context.Context, id int64, update repository.UserUpdate) (*model.User, error) {
			applied = update
			return &model.User{ID: id}, nil
		},
	}
	uc := NewUserUseCase(users, &test.ProductRepositoryStub{}, test.HasherStub{})

	role := model.RoleAdmin
	name := "Amina"
	if _, err := uc.UpdateProfile(context.Background(), 5, repository.UserUpdate{FirstName: &name, Role: &role}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if applied.Role != nil {
		t.Fatal("self-service update must not change role")
	}
	if applied.FirstName == nil || *applied.FirstName != "Amina" {
		t.Fatalf("name not applied: %+v", applied)
	}
}

func TestUpdateProfileRejectsEmptyEmail(t *testing.T) {
	uc := NewUserUseCase(&test.UserRepositoryStub{}, &test.ProductRepositoryStub{}, test.HasherStub{})

	empty := ""
	_, err := uc.UpdateProfile(context.Background(), 5, repository.UserUpdate{Email: &empty})
	var validation *domainErrors.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestChangePasswordVerifiesCurrent(t *testing.T) {
	users := &test.UserRepositoryStub{
		GetByIDFn: func(_ context.Context, id int64) (*model.User, error) {
			return &model.User{ID: id, PasswordHash: "hash:old-secret"}, nil
		},
	}
	uc := NewUserUseCase(users, &test.ProductRepositoryStub{}, test.HasherStub{})

	err := uc.ChangePassword(context.Background(), 5, "wrong-secret", "new-secret")
	if !errors.Is(err, domainErrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if len(users.StoredPasswordUpdates) != 0 {
		t.Fatal("password must not change on a failed check")
	}

	if err := uc.ChangePassword(context.Background(), 5, "old-secret", "new-secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if users.StoredPasswordUpdates[5] != "hash:new-secret" {
		t.Fatalf("unexpected stored hash %q", users.StoredPasswordUpdates[5])
	}
}

func TestChangePasswordRequiresNewPassword(t *testing.T) {
	uc := NewUserUseCase(&test.UserRepositoryStub{}, &test.ProductRepositoryStub{}, test.HasherStub{})

	err := uc.ChangePassword(context.Background(), 5, "old-secret", "")
	var validation *domainErrors.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAddToWishlistRequiresExistingProduct(t *testing.T) {
	uc := NewUserUseCase(&test.UserRepositoryStub{}, &test.ProductRepositoryStub{}, test.HasherStub{})

	_, err := uc.AddToWishlist(context.Background(), 5, 99)
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddToWishlistDuplicateConflicts(t *testing.T) {
	users := &test.UserRepositoryStub{
		WishlistContainsFn: func(context.Context, int64, int64) (bool, error) {
			return true, nil
		},
		AddToWishlistFn: func(context.Context, int64, int64) error {
			t.Fatal("a known duplicate must not reach the insert")
			return nil
		},
	}
	products := &test.ProductRepositoryStub{
		GetByIDFn: func(_ context.Context, id int64) (*model.Product, error) {
			return &model.Product{ID: id}, nil
		},
	}
	uc := NewUserUseCase(users, products, test.HasherStub{})

	_, err := uc.AddToWishlist(context.Background(), 5, 3)
	var conflict *domainErrors.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestAddToWishlistConcurrentDuplicateConflicts(t *testing.T) {
	users := &test.UserRepositoryStub{
		AddToWishlistFn: func(context.Context, int64, int64) error {
			return domainErrors.ErrAlreadyExists
		},
	}
	products := &test.ProductRepositoryStub{
		GetByIDFn: func(_ context.Context, id int64) (*model.Product, error) {
			return &model.Product{ID: id}, nil
		},
	}
	uc := NewUserUseCase(users, products, test.HasherStub{})

	_, err := uc.AddToWishlist(context.Background(), 5, 3)
	var conflict *domainErrors.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestRemoveFromWishlistMissingConflicts(t *testing.T) {
	users := &test.UserRepositoryStub{
		RemoveFromWishlistFn: func(context.Context, int64, int64) error {
			return domainErrors.ErrNotFound
		},
	}
	uc := NewUserUseCase(users, &test.ProductRepositoryStub{}, test.HasherStub{})

	_, err := uc.RemoveFromWishlist(context.Background(), 5, 3)
	var conflict *domainErrors.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestAdminUpdateUserValidatesRole(t *testing.T) {
	uc := NewUserUseCase(&test.UserRepositoryStub{}, &test.ProductRepositoryStub{}, test.HasherStub{})

	bogus := model.Role("superuser")
	_, err := uc.UpdateUser(context.Background(), 5, repository.UserUpdate{Role: &bogus})
	var validation *domainErrors.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	admin := model.RoleAdmin
	if _, err := uc.UpdateUser(context.Background(), 5, repository.UserUpdate{Role: &admin}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
