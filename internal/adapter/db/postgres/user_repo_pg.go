package postgres

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"glamour-lush-server/internal/domain/user"
)

// UserRepoPG implements the user store using PostgreSQL and GORM. The
// wishlist and cart sets live in join tables keyed by the user's email,
// mirroring how the rest of the system joins on email rather than ID.
type UserRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewUserRepoPG creates a new instance of UserRepoPG.
func NewUserRepoPG(db *gorm.DB, log *zap.Logger) *UserRepoPG {
	return &UserRepoPG{db: db, log: log}
}

// UserSchema represents the database schema for the users table.
type UserSchema struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Name   string
	Email  string `gorm:"not null;unique"`
	Role   string `gorm:"index"`
	Status string
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

// WishlistItemSchema is one wishlist membership row. The composite unique
// index gives the set its no-duplicates invariant.
type WishlistItemSchema struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserEmail string `gorm:"not null;uniqueIndex:idx_wishlist_user_product"`
	ProductID int64  `gorm:"not null;uniqueIndex:idx_wishlist_user_product"`
}

// TableName specifies the table name for the WishlistItemSchema model.
func (WishlistItemSchema) TableName() string {
	return "wishlist_items"
}

// CartItemSchema is one cart membership row, with the same set invariant
// as the wishlist.
type CartItemSchema struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserEmail string `gorm:"not null;uniqueIndex:idx_cart_user_product"`
	ProductID int64  `gorm:"not null;uniqueIndex:idx_cart_user_product"`
}

// TableName specifies the table name for the CartItemSchema model.
func (CartItemSchema) TableName() string {
	return "cart_items"
}

func (m *UserSchema) toDomain() *user.User {
	return &user.User{
		ID:     m.ID,
		Name:   m.Name,
		Email:  m.Email,
		Role:   user.Role(m.Role),
		Status: m.Status,
	}
}

// Create inserts a new user into the database.
func (r *UserRepoPG) Create(ctx context.Context, u *user.User) (int64, error) {
	if u == nil {
		return 0, errors.New("user cannot be nil")
	}

	model := UserSchema{
		Name:   u.Name,
		Email:  u.Email,
		Role:   string(u.Role),
		Status: u.Status,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create user in db", zap.Error(err), zap.String("email", u.Email))
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	r.log.Info("user created in db", zap.Int64("id", model.ID))
	return model.ID, nil
}

// GetByEmail retrieves a user by email. Returns (nil, nil) when the email
// is unknown, so callers can treat "no user" as an access decision rather
// than a failure.
func (r *UserRepoPG) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("user not found by email", zap.String("email", email))
			return nil, nil
		}
		r.log.Error("failed to get user by email from db", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return model.toDomain(), nil
}

// GetByID retrieves a user by ID. Returns (nil, nil) when absent.
func (r *UserRepoPG) GetByID(ctx context.Context, id int64) (*user.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("user not found", zap.Int64("id", id))
			return nil, nil
		}
		r.log.Error("failed to get user from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return model.toDomain(), nil
}

// List retrieves every user record.
func (r *UserRepoPG) List(ctx context.Context) ([]user.User, error) {
	var models []UserSchema
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		r.log.Error("failed to list users from db", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]user.User, len(models))
	for i, m := range models {
		users[i] = *m.toDomain()
	}
	return users, nil
}

// Update applies the given column changes to a user record and reports
// the number of affected rows.
func (r *UserRepoPG) Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error) {
	if len(updates) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).Model(&UserSchema{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		r.log.Error("failed to update user in db", zap.Error(res.Error), zap.Int64("id", id))
		return 0, fmt.Errorf("failed to update user: %w", res.Error)
	}

	r.log.Info("user updated in db", zap.Int64("id", id), zap.Int64("rows", res.RowsAffected))
	return res.RowsAffected, nil
}

// Delete removes a user row along with its wishlist and cart rows, and
// reports the number of deleted user rows. Product cleanup is a separate
// cascade step owned by the caller.
func (r *UserRepoPG) Delete(ctx context.Context, id int64, email string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&UserSchema{}, id)
	if res.Error != nil {
		r.log.Error("failed to delete user in db", zap.Error(res.Error), zap.Int64("id", id))
		return 0, fmt.Errorf("failed to delete user: %w", res.Error)
	}

	if err := r.db.WithContext(ctx).Where("user_email = ?", email).Delete(&WishlistItemSchema{}).Error; err != nil {
		r.log.Warn("failed to clear wishlist rows for deleted user", zap.Error(err), zap.String("email", email))
	}
	if err := r.db.WithContext(ctx).Where("user_email = ?", email).Delete(&CartItemSchema{}).Error; err != nil {
		r.log.Warn("failed to clear cart rows for deleted user", zap.Error(err), zap.String("email", email))
	}

	r.log.Info("user deleted in db", zap.Int64("id", id), zap.Int64("rows", res.RowsAffected))
	return res.RowsAffected, nil
}

// AddWishlistItem adds a product reference to a user's wishlist. Adding an
// already-present reference is a no-op, preserving set semantics.
func (r *UserRepoPG) AddWishlistItem(ctx context.Context, email string, productID int64) error {
	item := WishlistItemSchema{UserEmail: email, ProductID: productID}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&item).Error
	if err != nil {
		r.log.Error("failed to add wishlist item", zap.Error(err), zap.String("email", email), zap.Int64("product_id", productID))
		return fmt.Errorf("failed to add wishlist item: %w", err)
	}
	return nil
}

// RemoveWishlistItem removes a product reference from a user's wishlist.
// Removing an absent reference is a no-op.
func (r *UserRepoPG) RemoveWishlistItem(ctx context.Context, email string, productID int64) error {
	err := r.db.WithContext(ctx).
		Where("user_email = ? AND product_id = ?", email, productID).
		Delete(&WishlistItemSchema{}).Error
	if err != nil {
		r.log.Error("failed to remove wishlist item", zap.Error(err), zap.String("email", email), zap.Int64("product_id", productID))
		return fmt.Errorf("failed to remove wishlist item: %w", err)
	}
	return nil
}

// WishlistProductIDs returns the product references in a user's wishlist.
func (r *UserRepoPG) WishlistProductIDs(ctx context.Context, email string) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&WishlistItemSchema{}).
		Where("user_email = ?", email).
		Pluck("product_id", &ids).Error
	if err != nil {
		r.log.Error("failed to load wishlist", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to load wishlist: %w", err)
	}
	return ids, nil
}

// AddCartItem adds a product reference to a user's cart with the same set
// semantics as the wishlist.
func (r *UserRepoPG) AddCartItem(ctx context.Context, email string, productID int64) error {
	item := CartItemSchema{UserEmail: email, ProductID: productID}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&item).Error
	if err != nil {
		r.log.Error("failed to add cart item", zap.Error(err), zap.String("email", email), zap.Int64("product_id", productID))
		return fmt.Errorf("failed to add cart item: %w", err)
	}
	return nil
}

// RemoveCartItem removes a product reference from a user's cart.
func (r *UserRepoPG) RemoveCartItem(ctx context.Context, email string, productID int64) error {
	err := r.db.WithContext(ctx).
		Where("user_email = ? AND product_id = ?", email, productID).
		Delete(&CartItemSchema{}).Error
	if err != nil {
		r.log.Error("failed to remove cart item", zap.Error(err), zap.String("email", email), zap.Int64("product_id", productID))
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

// CartProductIDs returns the product references in a user's cart.
func (r *UserRepoPG) CartProductIDs(ctx context.Context, email string) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&CartItemSchema{}).
		Where("user_email = ?", email).
		Pluck("product_id", &ids).Error
	if err != nil {
		r.log.Error("failed to load cart", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return ids, nil
}
