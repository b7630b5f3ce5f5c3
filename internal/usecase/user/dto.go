package user

import domain "glamour-lush-server/internal/domain/user"

// RegisterUserRequest represents the payload for registering a user.
// Registration is idempotent on email.
type RegisterUserRequest struct {
	Name   string `validate:"omitempty,max=100"`
	Email  string `validate:"required,email"`
	Role   string `validate:"omitempty,oneof=seller admin"`
	Status string `validate:"omitempty,max=50"`
}

// RegisterUserResponse represents the outcome of a registration call.
type RegisterUserResponse struct {
	ID            int64
	AlreadyExists bool
}

// UpdateUserRequest represents an admin role/status update. Empty fields
// are left untouched.
type UpdateUserRequest struct {
	ID     int64  `validate:"required"`
	Name   string `validate:"omitempty,max=100"`
	Role   string `validate:"omitempty,oneof=seller admin"`
	Status string `validate:"omitempty,max=50"`
}

// DeleteUserResponse reports the two cascade steps of an admin user
// deletion: the user row first, then every product the user owned.
type DeleteUserResponse struct {
	UserDeletionCount    int64
	ProductDeletionCount int64
}

// ItemRequest identifies one wishlist or cart mutation.
type ItemRequest struct {
	UserEmail string `validate:"required,email"`
	ProductID int64  `validate:"required,gt=0"`
}

// User re-exports the domain entity for transport mapping.
type User = domain.User
