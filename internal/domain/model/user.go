package model

import "time"

// Role determines which part of the HTTP surface a user may reach.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User represents a storefront account.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Phone        string
	Address      string
	Role         Role
	Newsletter   bool
	IsActive     bool
	Notes        string
	JoinDate     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user holds elevated privilege.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
