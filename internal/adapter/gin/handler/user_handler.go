package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"glamour-lush-server/internal/domain/product"
	domain "glamour-lush-server/internal/domain/user"
	"glamour-lush-server/internal/usecase/user"
)

// UserHandler handles HTTP requests for accounts, wishlists and carts.
type UserHandler struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(uc user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

// RegisterUserRequest represents the HTTP request body for registration.
type RegisterUserRequest struct {
	Name   string `json:"name" binding:"omitempty,max=100"`
	Email  string `json:"email" binding:"required,email"`
	Role   string `json:"role" binding:"omitempty,oneof=seller admin"`
	Status string `json:"status" binding:"omitempty,max=50"`
}

// UpdateUserRequest represents the HTTP request body for an admin update.
type UpdateUserRequest struct {
	Name   string `json:"name" binding:"omitempty,max=100"`
	Role   string `json:"role" binding:"omitempty,oneof=seller admin"`
	Status string `json:"status" binding:"omitempty,max=50"`
}

// ItemRequest represents the HTTP request body for wishlist/cart changes.
type ItemRequest struct {
	UserEmail string `json:"userEmail" binding:"required,email"`
	ProductID int64  `json:"productId" binding:"required,gt=0"`
}

// UserResponse represents the HTTP response for user data.
type UserResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role,omitempty"`
	Status string `json:"status,omitempty"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   string(u.Role),
		Status: u.Status,
	}
}

// Register handles POST /users
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid register request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	resp, err := h.uc.Register(c.Request.Context(), user.RegisterUserRequest{
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Status: req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	if resp.AlreadyExists {
		c.JSON(http.StatusOK, gin.H{"message": "User already exists"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": resp.ID})
}

// GetByEmail handles GET /user/:email
func (h *UserHandler) GetByEmail(c *gin.Context) {
	u, err := h.uc.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(u))
}

// List handles GET /all-users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.uc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = toUserResponse(&users[i])
	}
	c.JSON(http.StatusOK, out)
}

// Update handles PATCH /all-users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid user update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	rows, err := h.uc.Update(c.Request.Context(), user.UpdateUserRequest{
		ID:     id,
		Name:   req.Name,
		Role:   req.Role,
		Status: req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": rows})
}

// Delete handles DELETE /all-users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.uc.DeleteWithProducts(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":              "User and associated products deleted successfully",
		"userDeletionCount":    resp.UserDeletionCount,
		"productDeletionCount": resp.ProductDeletionCount,
	})
}

// AddWishlistItem handles PATCH /wishlist/add
func (h *UserHandler) AddWishlistItem(c *gin.Context) {
	h.mutateItems(c, h.uc.AddWishlistItem)
}

// RemoveWishlistItem handles PATCH /wishlist/remove
func (h *UserHandler) RemoveWishlistItem(c *gin.Context) {
	h.mutateItems(c, h.uc.RemoveWishlistItem)
}

// AddCartItem handles PATCH /cart/add
func (h *UserHandler) AddCartItem(c *gin.Context) {
	h.mutateItems(c, h.uc.AddCartItem)
}

// RemoveCartItem handles PATCH /cart/remove
func (h *UserHandler) RemoveCartItem(c *gin.Context) {
	h.mutateItems(c, h.uc.RemoveCartItem)
}

// Wishlist handles GET /wishlist/:userId
func (h *UserHandler) Wishlist(c *gin.Context) {
	h.listItems(c, h.uc.WishlistProducts)
}

// Cart handles GET /cart/:userId
func (h *UserHandler) Cart(c *gin.Context) {
	h.listItems(c, h.uc.CartProducts)
}

func (h *UserHandler) mutateItems(c *gin.Context, op func(ctx context.Context, in user.ItemRequest) error) {
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid item request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	err := op(c.Request.Context(), user.ItemRequest{
		UserEmail: req.UserEmail,
		ProductID: req.ProductID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

func (h *UserHandler) listItems(c *gin.Context, op func(ctx context.Context, userID int64) ([]product.Product, error)) {
	idStr := c.Param("userId")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.log.Warn("invalid user id", zap.String("id", idStr), zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "User ID must be a valid number"})
		return
	}

	products, err := op(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = toProductResponse(&products[i])
	}
	c.JSON(http.StatusOK, out)
}

// pathID parses the :id path parameter, responding with 400 on failure.
func (h *UserHandler) pathID(c *gin.Context) (int64, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.log.Warn("invalid id parameter", zap.String("id", idStr), zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "ID must be a valid number"})
		return 0, false
	}
	return id, true
}
