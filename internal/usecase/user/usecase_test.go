package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"glamour-lush-server/internal/domain/product"
	domain "glamour-lush-server/internal/domain/user"
	apperrors "glamour-lush-server/pkg/errors"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *domain.User) (int64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error) {
	args := m.Called(ctx, id, updates)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64, email string) (int64, error) {
	args := m.Called(ctx, id, email)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) AddWishlistItem(ctx context.Context, email string, productID int64) error {
	return m.Called(ctx, email, productID).Error(0)
}

func (m *MockRepository) RemoveWishlistItem(ctx context.Context, email string, productID int64) error {
	return m.Called(ctx, email, productID).Error(0)
}

func (m *MockRepository) WishlistProductIDs(ctx context.Context, email string) ([]int64, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockRepository) AddCartItem(ctx context.Context, email string, productID int64) error {
	return m.Called(ctx, email, productID).Error(0)
}

func (m *MockRepository) RemoveCartItem(ctx context.Context, email string, productID int64) error {
	return m.Called(ctx, email, productID).Error(0)
}

func (m *MockRepository) CartProductIDs(ctx context.Context, email string) ([]int64, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// MockProductStore is a mock implementation of ProductStore
type MockProductStore struct {
	mock.Mock
}

func (m *MockProductStore) FindByIDs(ctx context.Context, ids []int64) ([]product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockProductStore) DeleteBySeller(ctx context.Context, sellerEmail string) (int64, error) {
	args := m.Called(ctx, sellerEmail)
	return args.Get(0).(int64), args.Error(1)
}

func newService(t *testing.T) (*Service, *MockRepository, *MockProductStore) {
	repo := new(MockRepository)
	store := new(MockProductStore)
	return New(repo, store, zaptest.NewLogger(t)), repo, store
}

func TestRegister_NewUser(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "new@example.com" && u.Role == domain.RoleSeller
	})).Return(int64(7), nil)

	resp, err := svc.Register(context.Background(), RegisterUserRequest{
		Name:  "New User",
		Email: "new@example.com",
		Role:  "seller",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.False(t, resp.AlreadyExists)
}

func TestRegister_ExistingEmailIsNoOp(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.On("GetByEmail", mock.Anything, "dup@example.com").
		Return(&domain.User{ID: 3, Email: "dup@example.com", Name: "Original"}, nil)

	resp, err := svc.Register(context.Background(), RegisterUserRequest{
		Name:  "Imposter",
		Email: "dup@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
	assert.True(t, resp.AlreadyExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_InvalidEmail(t *testing.T) {
	svc, repo, _ := newService(t)

	_, err := svc.Register(context.Background(), RegisterUserRequest{Email: "not-an-email"})
	require.Error(t, err)
	var vErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &vErr)
	repo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestGetByEmail_Unknown(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	_, err := svc.GetByEmail(context.Background(), "ghost@example.com")
	require.Error(t, err)
	var nfErr *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestResolve_UnknownIsNilNotError(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	u, err := svc.Resolve(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUpdate_SparseFields(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.On("Update", mock.Anything, int64(4), map[string]interface{}{
		"role": "admin",
	}).Return(int64(1), nil)

	rows, err := svc.Update(context.Background(), UpdateUserRequest{ID: 4, Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	repo.AssertExpectations(t)
}

func TestUpdate_UnknownUser(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.On("Update", mock.Anything, int64(99), mock.Anything).Return(int64(0), nil)

	_, err := svc.Update(context.Background(), UpdateUserRequest{ID: 99, Status: "verified"})
	require.Error(t, err)
	var nfErr *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestDeleteWithProducts_CascadeCounts(t *testing.T) {
	svc, repo, store := newService(t)

	repo.On("GetByID", mock.Anything, int64(4)).
		Return(&domain.User{ID: 4, Email: "seller@example.com", Role: domain.RoleSeller}, nil)
	repo.On("Delete", mock.Anything, int64(4), "seller@example.com").Return(int64(1), nil)
	store.On("DeleteBySeller", mock.Anything, "seller@example.com").Return(int64(3), nil)

	resp, err := svc.DeleteWithProducts(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.UserDeletionCount)
	assert.Equal(t, int64(3), resp.ProductDeletionCount)
}

func TestDeleteWithProducts_ProductStepBestEffort(t *testing.T) {
	svc, repo, store := newService(t)

	repo.On("GetByID", mock.Anything, int64(4)).
		Return(&domain.User{ID: 4, Email: "seller@example.com"}, nil)
	repo.On("Delete", mock.Anything, int64(4), "seller@example.com").Return(int64(1), nil)
	store.On("DeleteBySeller", mock.Anything, "seller@example.com").
		Return(int64(0), errors.New("store unavailable"))

	// The user deletion already completed, so the call still succeeds and
	// reports zero products removed.
	resp, err := svc.DeleteWithProducts(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.UserDeletionCount)
	assert.Zero(t, resp.ProductDeletionCount)
}

func TestDeleteWithProducts_UnknownUser(t *testing.T) {
	svc, repo, store := newService(t)

	repo.On("GetByID", mock.Anything, int64(77)).Return(nil, nil)

	_, err := svc.DeleteWithProducts(context.Background(), 77)
	require.Error(t, err)
	var nfErr *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "DeleteBySeller", mock.Anything, mock.Anything)
}

func TestWishlistProducts_ResolvesReferences(t *testing.T) {
	svc, repo, store := newService(t)

	repo.On("GetByID", mock.Anything, int64(2)).
		Return(&domain.User{ID: 2, Email: "shopper@example.com"}, nil)
	repo.On("WishlistProductIDs", mock.Anything, "shopper@example.com").
		Return([]int64{10, 11}, nil)
	store.On("FindByIDs", mock.Anything, []int64{10, 11}).
		Return([]product.Product{{ID: 10, Title: "Serum"}, {ID: 11, Title: "Balm"}}, nil)

	products, err := svc.WishlistProducts(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Serum", products[0].Title)
}

func TestCartProducts_UnknownUser(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.On("GetByID", mock.Anything, int64(8)).Return(nil, nil)

	_, err := svc.CartProducts(context.Background(), 8)
	require.Error(t, err)
	var nfErr *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestAddCartItem_Validation(t *testing.T) {
	svc, repo, _ := newService(t)

	err := svc.AddCartItem(context.Background(), ItemRequest{UserEmail: "shopper@example.com", ProductID: 0})
	require.Error(t, err)
	var vErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &vErr)
	repo.AssertNotCalled(t, "AddCartItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestRemoveWishlistItem(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.On("RemoveWishlistItem", mock.Anything, "shopper@example.com", int64(10)).Return(nil)

	err := svc.RemoveWishlistItem(context.Background(), ItemRequest{UserEmail: "shopper@example.com", ProductID: 10})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
