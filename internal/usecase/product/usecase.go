package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "glamour-lush-server/internal/domain/product"
	apperrors "glamour-lush-server/pkg/errors"
)

// Repository defines the interface for product data access operations.
type Repository interface {
	Create(ctx context.Context, p *domain.Product) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error) // (nil, nil) when unknown
	Search(ctx context.Context, f domain.SearchFilter) ([]domain.Product, int64, error)
	DistinctFacets(ctx context.Context, f domain.SearchFilter) (brands, categories []string, err error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]domain.Product, error)
	Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// Config carries catalog behavior switches.
type Config struct {
	// FacetsFromFullSet derives the brand/category facets from the whole
	// filtered set instead of the returned page. Off by default so the
	// response stays byte-compatible with the legacy storefront, which
	// always faceted the current page only.
	FacetsFromFullSet bool
}

// Service implements the catalog search and seller product management
// logic.
type Service struct {
	repo     Repository
	cfg      Config
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a product service backed by the given store.
func New(r Repository, cfg Config, log *zap.Logger) *Service {
	return &Service{repo: r, cfg: cfg, log: log, validate: validator.New()}
}

func formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrors {
			switch e.Tag() {
			case "required":
				messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
			case "max":
				messages = append(messages, fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param()))
			case "gte":
				messages = append(messages, fmt.Sprintf("%s must be at least %s", e.Field(), e.Param()))
			default:
				messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
			}
		}
		return apperrors.NewValidationError("", strings.Join(messages, ", "))
	}
	return err
}

// Search runs the catalog query: optional AND-combined filters, price
// sort, pagination, total match count and the brand/category facets.
func (s *Service) Search(ctx context.Context, f SearchFilter) (*SearchResult, error) {
	f = f.Normalize()

	s.log.Debug("searching products",
		zap.String("title", f.Title),
		zap.String("category", f.Category),
		zap.String("brand", f.Brand),
		zap.String("sort", f.Sort),
		zap.Int("page", f.Page),
		zap.Int("limit", f.Limit),
	)

	products, total, err := s.repo.Search(ctx, f)
	if err != nil {
		s.log.Error("product search failed", zap.Error(err))
		return nil, err
	}

	result := &SearchResult{
		Products: products,
		Total:    total,
	}

	if s.cfg.FacetsFromFullSet {
		brands, categories, err := s.repo.DistinctFacets(ctx, f)
		if err != nil {
			s.log.Error("facet query failed", zap.Error(err))
			return nil, err
		}
		result.Brands = brands
		result.Categories = categories
		return result, nil
	}

	result.Brands = pageFacet(products, func(p Product) string { return p.Brand })
	result.Categories = pageFacet(products, func(p Product) string { return p.Category })
	return result, nil
}

// pageFacet collects the distinct non-empty values of one field across the
// returned page, in first appearance order.
func pageFacet(products []Product, field func(Product) string) []string {
	seen := make(map[string]struct{}, len(products))
	values := make([]string, 0, len(products))
	for _, p := range products {
		v := field(p)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}

// GetByID retrieves a single catalog item.
func (s *Service) GetByID(ctx context.Context, id int64) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NewNotFoundError("product", "Product not found")
	}
	return p, nil
}

// Create inserts a new product owned by the authenticated seller.
func (s *Service) Create(ctx context.Context, in CreateProductRequest, sellerEmail string) (*CreateProductResponse, error) {
	s.log.Info("creating product", zap.String("title", in.Title), zap.String("seller", sellerEmail))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("create product validation failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	id, err := s.repo.Create(ctx, &domain.Product{
		Title:       in.Title,
		Brand:       in.Brand,
		Category:    in.Category,
		Description: in.Description,
		Image:       in.Image,
		Price:       in.Price,
		SellerEmail: sellerEmail,
	})
	if err != nil {
		s.log.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	return &CreateProductResponse{ID: id}, nil
}

// ListBySeller lists the products owned by the authenticated seller.
func (s *Service) ListBySeller(ctx context.Context, sellerEmail string) ([]Product, error) {
	return s.repo.ListBySeller(ctx, sellerEmail)
}

// ownedProduct loads a product and checks it belongs to the seller.
func (s *Service) ownedProduct(ctx context.Context, id int64, sellerEmail string) (*domain.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NewNotFoundError("product", "Product not found")
	}
	if p.SellerEmail != sellerEmail {
		s.log.Warn("product ownership check failed",
			zap.Int64("id", id), zap.String("owner", p.SellerEmail), zap.String("caller", sellerEmail))
		return nil, apperrors.ErrForbidden
	}
	return p, nil
}

// UpdateOwned applies field changes to a product after verifying the
// caller owns it, and reports the number of affected rows.
func (s *Service) UpdateOwned(ctx context.Context, id int64, sellerEmail string, in UpdateProductRequest) (int64, error) {
	if _, err := s.ownedProduct(ctx, id, sellerEmail); err != nil {
		return 0, err
	}

	updates := map[string]interface{}{}
	if in.Title != "" {
		updates["title"] = in.Title
	}
	if in.Brand != "" {
		updates["brand"] = in.Brand
	}
	if in.Category != "" {
		updates["category"] = in.Category
	}
	if in.Description != "" {
		updates["description"] = in.Description
	}
	if in.Image != "" {
		updates["image"] = in.Image
	}
	if in.PriceSet {
		updates["price"] = in.Price
	}
	if len(updates) == 0 {
		return 0, apperrors.NewValidationError("", "no fields to update")
	}

	return s.repo.Update(ctx, id, updates)
}

// DeleteOwned removes a product after verifying the caller owns it, and
// reports the number of deleted rows.
func (s *Service) DeleteOwned(ctx context.Context, id int64, sellerEmail string) (int64, error) {
	if _, err := s.ownedProduct(ctx, id, sellerEmail); err != nil {
		return 0, err
	}
	return s.repo.Delete(ctx, id)
}
