package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"glamour-lush-server/internal/domain/product"
	domain "glamour-lush-server/internal/domain/user"
	"glamour-lush-server/internal/usecase/user"
)

// MockUserUsecase is a mock implementation of user.Usecase
type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) Register(ctx context.Context, in user.RegisterUserRequest) (*user.RegisterUserResponse, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.RegisterUserResponse), args.Error(1)
}

func (m *MockUserUsecase) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUsecase) Resolve(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUsecase) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserUsecase) Update(ctx context.Context, in user.UpdateUserRequest) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserUsecase) DeleteWithProducts(ctx context.Context, id int64) (*user.DeleteUserResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.DeleteUserResponse), args.Error(1)
}

func (m *MockUserUsecase) AddWishlistItem(ctx context.Context, in user.ItemRequest) error {
	return m.Called(ctx, in).Error(0)
}

func (m *MockUserUsecase) RemoveWishlistItem(ctx context.Context, in user.ItemRequest) error {
	return m.Called(ctx, in).Error(0)
}

func (m *MockUserUsecase) WishlistProducts(ctx context.Context, userID int64) ([]product.Product, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockUserUsecase) AddCartItem(ctx context.Context, in user.ItemRequest) error {
	return m.Called(ctx, in).Error(0)
}

func (m *MockUserUsecase) RemoveCartItem(ctx context.Context, in user.ItemRequest) error {
	return m.Called(ctx, in).Error(0)
}

func (m *MockUserUsecase) CartProducts(ctx context.Context, userID int64) ([]product.Product, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func setupUserRouter(t *testing.T, uc user.Usecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(uc, zaptest.NewLogger(t))

	r := gin.New()
	r.POST("/users", h.Register)
	r.GET("/user/:email", h.GetByEmail)
	r.GET("/all-users", h.List)
	r.PATCH("/all-users/:id", h.Update)
	r.DELETE("/all-users/:id", h.Delete)
	r.PATCH("/wishlist/add", h.AddWishlistItem)
	r.GET("/wishlist/:userId", h.Wishlist)
	r.PATCH("/cart/remove", h.RemoveCartItem)
	return r
}

func TestRegister_NewUserResponds201(t *testing.T) {
	uc := new(MockUserUsecase)
	r := setupUserRouter(t, uc)

	uc.On("Register", mock.Anything, user.RegisterUserRequest{
		Name:  "Shopper",
		Email: "shopper@example.com",
	}).Return(&user.RegisterUserResponse{ID: 12}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"name":"Shopper","email":"shopper@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"insertedId":12`)
}

func TestRegister_ExistingUserResponds200(t *testing.T) {
	uc := new(MockUserUsecase)
	r := setupUserRouter(t, uc)

	uc.On("Register", mock.Anything, mock.Anything).
		Return(&user.RegisterUserResponse{ID: 3, AlreadyExists: true}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"email":"dup@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "User already exists")
	assert.NotContains(t, w.Body.String(), "insertedId")
}

func TestRegister_MissingEmail(t *testing.T) {
	uc := new(MockUserUsecase)
	r := setupUserRouter(t, uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"No Email"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestGetByEmail_MapsUser(t *testing.T) {
	uc := new(MockUserUsecase)
	r := setupUserRouter(t, uc)

	uc.On("GetByEmail", mock.Anything, "shopper@example.com").
		Return(&domain.User{ID: 1, Name: "Shopper", Email: "shopper@example.com", Role: domain.RoleSeller, Status: "pending"}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/shopper@example.com", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "seller", resp.Role)
	assert.Equal(t, "pending", resp.Status)
}

func TestUpdateUser_InvalidID(t *testing.T) {
	uc := new(MockUserUsecase)
	r := setupUserRouter(t, uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/all-users/abc", strings.NewReader(`{"role":"admin"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	uc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteUser_ReportsCascadeCounts(t *testing.T) {
	uc := new(MockUserUsecase)
	r := setupUserRouter(t, uc)

	uc.On("DeleteWithProducts", mock.Anything, int64(4)).
		Return(&user.DeleteUserResponse{UserDeletionCount: 1, ProductDeletionCount: 3}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/all-users/4", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"userDeletionCount":1`)
	assert.Contains(t, body, `"productDeletionCount":3`)
}

func TestAddWishlistItem_Acknowledges(t *testing.T) {
	uc := new(MockUserUsecase)
	r := setupUserRouter(t, uc)

	uc.On("AddWishlistItem", mock.Anything, user.ItemRequest{
		UserEmail: "shopper@example.com",
		ProductID: 10,
	}).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/wishlist/add",
		strings.NewReader(`{"userEmail":"shopper@example.com","productId":10}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"acknowledged":true`)
}

func TestWishlist_ResolvesProducts(t *testing.T) {
	uc := new(MockUserUsecase)
	r := setupUserRouter(t, uc)

	uc.On("WishlistProducts", mock.Anything, int64(2)).
		Return([]product.Product{{ID: 10, Title: "Serum"}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/wishlist/2", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp []ProductResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Serum", resp[0].Title)
}

func TestRemoveCartItem_StoreErrorIsMasked(t *testing.T) {
	uc := new(MockUserUsecase)
	r := setupUserRouter(t, uc)

	uc.On("RemoveCartItem", mock.Anything, mock.Anything).
		Return(assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/cart/remove",
		strings.NewReader(`{"userEmail":"shopper@example.com","productId":10}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
