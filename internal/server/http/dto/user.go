package dto

import (
	"time"

	"github.com/sweetcrumb/bakehouse/internal/domain/model"
	"github.com/sweetcrumb/bakehouse/internal/domain/repository"
)

// UpdateProfileRequest carries self-service profile changes. Omitted fields
// are left untouched.
type UpdateProfileRequest struct {
	FirstName  *string `json:"firstName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	Newsletter *bool   `json:"newsletter,omitempty"`
}

// ToUpdate converts the payload into a repository partial update.
func (r UpdateProfileRequest) ToUpdate() repository.UserUpdate {
	return repository.UserUpdate{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Phone:      r.Phone,
		Address:    r.Address,
		Newsletter: r.Newsletter,
	}
}

// AdminUpdateUserRequest extends profile changes with role reassignment.
type AdminUpdateUserRequest struct {
	UpdateProfileRequest
	Role *string `json:"role,omitempty"`
}

// ToUpdate converts the payload into a repository partial update.
func (r AdminUpdateUserRequest) ToUpdate() repository.UserUpdate {
	update := r.UpdateProfileRequest.ToUpdate()
	if r.Role != nil {
		role := model.Role(*r.Role)
		update.Role = &role
	}
	return update
}

// ChangePasswordRequest is the self-service password change payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UpdateUserNotesRequest replaces admin notes on an account.
type UpdateUserNotesRequest struct {
	Notes string `json:"notes"`
}

// WishlistRequest names the product to add or remove.
type WishlistRequest struct {
	ProductID int64 `json:"productId"`
}

// UserResponse is the serialized account. The password hash never leaves
// the service.
type UserResponse struct {
	ID         int64     `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Address    string    `json:"address,omitempty"`
	Role       string    `json:"role"`
	Newsletter bool      `json:"newsletter"`
	IsActive   bool      `json:"isActive"`
	Notes      string    `json:"notes,omitempty"`
	JoinDate   time.Time `json:"joinDate"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ToUserResponse maps a domain user for serialization.
func ToUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Phone:      u.Phone,
		Address:    u.Address,
		Role:       string(u.Role),
		Newsletter: u.Newsletter,
		IsActive:   u.IsActive,
		Notes:      u.Notes,
		JoinDate:   u.JoinDate,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// ToUserResponses maps a slice of users.
func ToUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}
