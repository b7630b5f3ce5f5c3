package product

import domain "glamour-lush-server/internal/domain/product"

// CreateProductRequest represents a seller's new catalog item. The owning
// seller email always comes from the authenticated claim, never the body.
type CreateProductRequest struct {
	Title       string  `validate:"required,max=200"`
	Brand       string  `validate:"omitempty,max=100"`
	Category    string  `validate:"omitempty,max=100"`
	Description string  `validate:"omitempty,max=2000"`
	Image       string  `validate:"omitempty,max=500"`
	Price       float64 `validate:"gte=0"`
}

// CreateProductResponse represents the insert acknowledgment.
type CreateProductResponse struct {
	ID int64
}

// UpdateProductRequest carries the mutable product fields. Zero-value
// fields are left untouched; PriceSet distinguishes "set price to 0" from
// "leave price alone".
type UpdateProductRequest struct {
	Title       string
	Brand       string
	Category    string
	Description string
	Image       string
	Price       float64
	PriceSet    bool
}

// SearchFilter and SearchResult re-export the domain types for callers.
type (
	SearchFilter = domain.SearchFilter
	SearchResult = domain.SearchResult
	Product      = domain.Product
)
