package product

import "context"

// Usecase defines the interface for catalog and seller product logic.
type Usecase interface {
	Search(ctx context.Context, f SearchFilter) (*SearchResult, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	Create(ctx context.Context, in CreateProductRequest, sellerEmail string) (*CreateProductResponse, error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]Product, error)
	UpdateOwned(ctx context.Context, id int64, sellerEmail string, in UpdateProductRequest) (int64, error)
	DeleteOwned(ctx context.Context, id int64, sellerEmail string) (int64, error)
}
