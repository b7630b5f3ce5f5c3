package user

import (
	"context"

	"glamour-lush-server/internal/domain/product"
	domain "glamour-lush-server/internal/domain/user"
)

// Usecase defines the interface for user account and wishlist/cart logic.
type Usecase interface {
	Register(ctx context.Context, in RegisterUserRequest) (*RegisterUserResponse, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Resolve(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, in UpdateUserRequest) (int64, error)
	DeleteWithProducts(ctx context.Context, id int64) (*DeleteUserResponse, error)

	AddWishlistItem(ctx context.Context, in ItemRequest) error
	RemoveWishlistItem(ctx context.Context, in ItemRequest) error
	WishlistProducts(ctx context.Context, userID int64) ([]product.Product, error)
	AddCartItem(ctx context.Context, in ItemRequest) error
	RemoveCartItem(ctx context.Context, in ItemRequest) error
	CartProducts(ctx context.Context, userID int64) ([]product.Product, error)
}
