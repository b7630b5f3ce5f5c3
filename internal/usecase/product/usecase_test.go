package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "glamour-lush-server/internal/domain/product"
	apperrors "glamour-lush-server/pkg/errors"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, p *domain.Product) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockRepository) Search(ctx context.Context, f domain.SearchFilter) ([]domain.Product, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) DistinctFacets(ctx context.Context, f domain.SearchFilter) ([]string, []string, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]string), args.Get(1).([]string), args.Error(2)
}

func (m *MockRepository) ListBySeller(ctx context.Context, sellerEmail string) ([]domain.Product, error) {
	args := m.Called(ctx, sellerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error) {
	args := m.Called(ctx, id, updates)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestSearch_FacetsFromPageOnly(t *testing.T) {
	repo := new(MockRepository)
	svc := New(repo, Config{}, zaptest.NewLogger(t))

	page := []domain.Product{
		{Title: "A", Brand: "Glow", Category: "skincare", Price: 3},
		{Title: "B", Brand: "Lush", Category: "skincare", Price: 2},
		{Title: "C", Brand: "Glow", Category: "makeup", Price: 1},
	}
	repo.On("Search", mock.Anything, mock.Anything).Return(page, int64(9), nil)

	result, err := svc.Search(context.Background(), SearchFilter{})
	require.NoError(t, err)

	// Distinct values of the returned page in first appearance order; the
	// rest of the filtered set contributes nothing.
	assert.Equal(t, []string{"Glow", "Lush"}, result.Brands)
	assert.Equal(t, []string{"skincare", "makeup"}, result.Categories)
	assert.Equal(t, int64(9), result.Total)
	repo.AssertNotCalled(t, "DistinctFacets", mock.Anything, mock.Anything)
}

func TestSearch_FacetsDifferAcrossPages(t *testing.T) {
	repo := new(MockRepository)
	svc := New(repo, Config{}, zaptest.NewLogger(t))

	pages := map[int][]domain.Product{
		1: {
			{Title: "A", Brand: "Glow", Category: "skincare", Price: 9},
			{Title: "B", Brand: "Glow", Category: "skincare", Price: 8},
		},
		2: {
			{Title: "C", Brand: "Lush", Category: "makeup", Price: 7},
			{Title: "D", Brand: "Lush", Category: "haircare", Price: 6},
		},
	}
	repo.On("Search", mock.Anything, mock.MatchedBy(func(f domain.SearchFilter) bool { return f.Page == 1 })).
		Return(pages[1], int64(4), nil)
	repo.On("Search", mock.Anything, mock.MatchedBy(func(f domain.SearchFilter) bool { return f.Page == 2 })).
		Return(pages[2], int64(4), nil)

	first, err := svc.Search(context.Background(), SearchFilter{Page: 1, Limit: 2})
	require.NoError(t, err)
	second, err := svc.Search(context.Background(), SearchFilter{Page: 2, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, []string{"Glow"}, first.Brands)
	assert.Equal(t, []string{"Lush"}, second.Brands)
	assert.NotEqual(t, first.Categories, second.Categories)
}

func TestSearch_FullSetFacetsBehindFlag(t *testing.T) {
	repo := new(MockRepository)
	svc := New(repo, Config{FacetsFromFullSet: true}, zaptest.NewLogger(t))

	page := []domain.Product{{Title: "A", Brand: "Glow", Category: "skincare", Price: 1}}
	repo.On("Search", mock.Anything, mock.Anything).Return(page, int64(5), nil)
	repo.On("DistinctFacets", mock.Anything, mock.Anything).
		Return([]string{"Glow", "Lush", "Nope"}, []string{"makeup", "skincare"}, nil)

	result, err := svc.Search(context.Background(), SearchFilter{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Glow", "Lush", "Nope"}, result.Brands)
	assert.Equal(t, []string{"makeup", "skincare"}, result.Categories)
}

func TestSearch_AppliesDefaults(t *testing.T) {
	repo := new(MockRepository)
	svc := New(repo, Config{}, zaptest.NewLogger(t))

	repo.On("Search", mock.Anything, mock.MatchedBy(func(f domain.SearchFilter) bool {
		return f.Page == 1 && f.Limit == 6
	})).Return([]domain.Product{}, int64(0), nil)

	result, err := svc.Search(context.Background(), SearchFilter{Page: 0, Limit: -3})
	require.NoError(t, err)

	assert.Empty(t, result.Products)
	assert.Empty(t, result.Brands)
	assert.Empty(t, result.Categories)
	assert.Zero(t, result.Total)
	repo.AssertExpectations(t)
}

func TestCreate_ForcesSellerEmail(t *testing.T) {
	repo := new(MockRepository)
	svc := New(repo, Config{}, zaptest.NewLogger(t))

	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
		return p.SellerEmail == "seller@example.com" && p.Title == "Serum"
	})).Return(int64(11), nil)

	resp, err := svc.Create(context.Background(), CreateProductRequest{Title: "Serum", Price: 10}, "seller@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.ID)
}

func TestCreate_ValidationFailure(t *testing.T) {
	repo := new(MockRepository)
	svc := New(repo, Config{}, zaptest.NewLogger(t))

	_, err := svc.Create(context.Background(), CreateProductRequest{Title: ""}, "seller@example.com")
	require.Error(t, err)
	var vErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &vErr)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateOwned_OwnershipEnforced(t *testing.T) {
	repo := new(MockRepository)
	svc := New(repo, Config{}, zaptest.NewLogger(t))

	repo.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Product{ID: 5, SellerEmail: "owner@example.com"}, nil)

	_, err := svc.UpdateOwned(context.Background(), 5, "intruder@example.com", UpdateProductRequest{Title: "X"})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateOwned_BuildsSparseUpdate(t *testing.T) {
	repo := new(MockRepository)
	svc := New(repo, Config{}, zaptest.NewLogger(t))

	repo.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Product{ID: 5, SellerEmail: "owner@example.com"}, nil)
	repo.On("Update", mock.Anything, int64(5), map[string]interface{}{
		"title": "New Title",
		"price": 0.0,
	}).Return(int64(1), nil)

	rows, err := svc.UpdateOwned(context.Background(), 5, "owner@example.com", UpdateProductRequest{
		Title:    "New Title",
		Price:    0,
		PriceSet: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	repo.AssertExpectations(t)
}

func TestDeleteOwned(t *testing.T) {
	repo := new(MockRepository)
	svc := New(repo, Config{}, zaptest.NewLogger(t))

	repo.On("GetByID", mock.Anything, int64(9)).
		Return(&domain.Product{ID: 9, SellerEmail: "owner@example.com"}, nil)
	repo.On("Delete", mock.Anything, int64(9)).Return(int64(1), nil)

	rows, err := svc.DeleteOwned(context.Background(), 9, "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
}

func TestDeleteOwned_NotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := New(repo, Config{}, zaptest.NewLogger(t))

	repo.On("GetByID", mock.Anything, int64(9)).Return(nil, nil)

	_, err := svc.DeleteOwned(context.Background(), 9, "owner@example.com")
	require.Error(t, err)
	var nfErr *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}
