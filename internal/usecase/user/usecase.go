package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"glamour-lush-server/internal/domain/product"
	domain "glamour-lush-server/internal/domain/user"
	apperrors "glamour-lush-server/pkg/errors"
)

// Repository defines the interface for user data access operations,
// including the wishlist and cart membership rows keyed by user email.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error) // (nil, nil) when unknown
	GetByID(ctx context.Context, id int64) (*domain.User, error)        // (nil, nil) when unknown
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id int64, email string) (int64, error)

	AddWishlistItem(ctx context.Context, email string, productID int64) error
	RemoveWishlistItem(ctx context.Context, email string, productID int64) error
	WishlistProductIDs(ctx context.Context, email string) ([]int64, error)
	AddCartItem(ctx context.Context, email string, productID int64) error
	RemoveCartItem(ctx context.Context, email string, productID int64) error
	CartProductIDs(ctx context.Context, email string) ([]int64, error)
}

// ProductStore is the slice of the product store the user flows need:
// resolving wishlist/cart references and the ownership cascade on delete.
type ProductStore interface {
	FindByIDs(ctx context.Context, ids []int64) ([]product.Product, error)
	DeleteBySeller(ctx context.Context, sellerEmail string) (int64, error)
}

// Service implements the user account, wishlist and cart business logic.
type Service struct {
	repo     Repository
	products ProductStore
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a user service backed by the given stores.
func New(r Repository, p ProductStore, log *zap.Logger) *Service {
	return &Service{repo: r, products: p, log: log, validate: validator.New()}
}

// formatValidationError converts validator.ValidationErrors into a
// human-readable validation error.
func formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrors {
			switch e.Tag() {
			case "required":
				messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
			case "email":
				messages = append(messages, fmt.Sprintf("%s must be a valid email", e.Field()))
			case "oneof":
				messages = append(messages, fmt.Sprintf("%s must be one of [%s]", e.Field(), e.Param()))
			case "max":
				messages = append(messages, fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param()))
			default:
				messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
			}
		}
		return apperrors.NewValidationError("", strings.Join(messages, ", "))
	}
	return err
}

// Register creates a user record unless the email is already registered,
// in which case the call is a no-op reporting the existing record.
func (s *Service) Register(ctx context.Context, in RegisterUserRequest) (*RegisterUserResponse, error) {
	s.log.Info("registering user", zap.String("email", in.Email))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("register validation failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	existing, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		s.log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}
	if existing != nil {
		s.log.Debug("user already exists", zap.String("email", in.Email))
		return &RegisterUserResponse{ID: existing.ID, AlreadyExists: true}, nil
	}

	id, err := s.repo.Create(ctx, &domain.User{
		Name:   in.Name,
		Email:  in.Email,
		Role:   domain.Role(in.Role),
		Status: in.Status,
	})
	if err != nil {
		s.log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	return &RegisterUserResponse{ID: id}, nil
}

// GetByEmail retrieves a user record, failing with NotFound when the email
// is unknown.
func (s *Service) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.NewNotFoundError("user", "User Not Found")
	}
	return u, nil
}

// Resolve is the identity-resolver contract used by the access control
// gate: unknown emails yield (nil, nil), never an error, and every call
// re-reads the store.
func (s *Service) Resolve(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

// List retrieves every user record for the admin view.
func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// Update applies an admin role/status/name change to a user record.
func (s *Service) Update(ctx context.Context, in UpdateUserRequest) (int64, error) {
	s.log.Info("updating user", zap.Int64("id", in.ID), zap.String("role", in.Role), zap.String("status", in.Status))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("update validation failed", zap.Error(err))
		return 0, formatValidationError(err)
	}

	updates := map[string]interface{}{}
	if in.Name != "" {
		updates["name"] = in.Name
	}
	if in.Role != "" {
		updates["role"] = in.Role
	}
	if in.Status != "" {
		updates["status"] = in.Status
	}
	if len(updates) == 0 {
		return 0, apperrors.NewValidationError("", "no fields to update")
	}

	rows, err := s.repo.Update(ctx, in.ID, updates)
	if err != nil {
		s.log.Error("failed to update user", zap.Int64("id", in.ID), zap.Error(err))
		return 0, err
	}
	if rows == 0 {
		return 0, apperrors.NewNotFoundError("user", "User not found")
	}
	return rows, nil
}

// DeleteWithProducts removes a user and then every product owned by that
// user's email. The two steps run in that order and the product step is
// best-effort: its failure does not undo the completed user deletion.
func (s *Service) DeleteWithProducts(ctx context.Context, id int64) (*DeleteUserResponse, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.NewNotFoundError("user", "User not found")
	}

	userCount, err := s.repo.Delete(ctx, id, u.Email)
	if err != nil {
		return nil, err
	}
	if userCount == 0 {
		return nil, apperrors.NewStoreError("failed to delete user", nil)
	}

	productCount, err := s.products.DeleteBySeller(ctx, u.Email)
	if err != nil {
		// The user is already gone; report what completed.
		s.log.Warn("product cascade failed after user deletion",
			zap.Int64("user_id", id), zap.String("email", u.Email), zap.Error(err))
		productCount = 0
	}

	s.log.Info("user deleted with products",
		zap.Int64("user_id", id),
		zap.Int64("users_deleted", userCount),
		zap.Int64("products_deleted", productCount),
	)

	return &DeleteUserResponse{
		UserDeletionCount:    userCount,
		ProductDeletionCount: productCount,
	}, nil
}

// AddWishlistItem adds a product reference to the wishlist set.
func (s *Service) AddWishlistItem(ctx context.Context, in ItemRequest) error {
	if err := s.validate.Struct(in); err != nil {
		return formatValidationError(err)
	}
	return s.repo.AddWishlistItem(ctx, in.UserEmail, in.ProductID)
}

// RemoveWishlistItem removes a product reference from the wishlist set.
func (s *Service) RemoveWishlistItem(ctx context.Context, in ItemRequest) error {
	if err := s.validate.Struct(in); err != nil {
		return formatValidationError(err)
	}
	return s.repo.RemoveWishlistItem(ctx, in.UserEmail, in.ProductID)
}

// WishlistProducts resolves the wishlist references of the given user into
// full product records.
func (s *Service) WishlistProducts(ctx context.Context, userID int64) ([]product.Product, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.NewNotFoundError("user", "User Not Found")
	}

	ids, err := s.repo.WishlistProductIDs(ctx, u.Email)
	if err != nil {
		return nil, err
	}
	return s.products.FindByIDs(ctx, ids)
}

// AddCartItem adds a product reference to the cart set.
func (s *Service) AddCartItem(ctx context.Context, in ItemRequest) error {
	if err := s.validate.Struct(in); err != nil {
		return formatValidationError(err)
	}
	return s.repo.AddCartItem(ctx, in.UserEmail, in.ProductID)
}

// RemoveCartItem removes a product reference from the cart set.
func (s *Service) RemoveCartItem(ctx context.Context, in ItemRequest) error {
	if err := s.validate.Struct(in); err != nil {
		return formatValidationError(err)
	}
	return s.repo.RemoveCartItem(ctx, in.UserEmail, in.ProductID)
}

// CartProducts resolves the cart references of the given user into full
// product records.
func (s *Service) CartProducts(ctx context.Context, userID int64) ([]product.Product, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.NewNotFoundError("user", "User Not Found")
	}

	ids, err := s.repo.CartProductIDs(ctx, u.Email)
	if err != nil {
		return nil, err
	}
	return s.products.FindByIDs(ctx, ids)
}
