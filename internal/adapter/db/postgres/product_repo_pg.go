package postgres

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"glamour-lush-server/internal/domain/product"
	"glamour-lush-server/pkg/security"
)

// ProductRepoPG implements the product store using PostgreSQL and GORM.
type ProductRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewProductRepoPG creates a new instance of ProductRepoPG.
func NewProductRepoPG(db *gorm.DB, log *zap.Logger) *ProductRepoPG {
	return &ProductRepoPG{db: db, log: log}
}

// ProductSchema represents the database schema for the products table.
type ProductSchema struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Title       string  `gorm:"not null;index"`
	Brand       string  `gorm:"index"`
	Category    string  `gorm:"index"`
	Description string
	Image       string
	Price       float64 `gorm:"not null;index"`
	SellerEmail string  `gorm:"not null;index"` // owning user's email
}

// TableName specifies the table name for the ProductSchema model.
func (ProductSchema) TableName() string {
	return "products"
}

func (m *ProductSchema) toDomain() product.Product {
	return product.Product{
		ID:          m.ID,
		Title:       m.Title,
		Brand:       m.Brand,
		Category:    m.Category,
		Description: m.Description,
		Image:       m.Image,
		Price:       m.Price,
		SellerEmail: m.SellerEmail,
	}
}

// Create inserts a new product into the database.
func (r *ProductRepoPG) Create(ctx context.Context, p *product.Product) (int64, error) {
	if p == nil {
		return 0, errors.New("product cannot be nil")
	}

	model := ProductSchema{
		Title:       p.Title,
		Brand:       p.Brand,
		Category:    p.Category,
		Description: p.Description,
		Image:       p.Image,
		Price:       p.Price,
		SellerEmail: p.SellerEmail,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create product in db", zap.Error(err), zap.String("title", p.Title))
		return 0, fmt.Errorf("failed to create product: %w", err)
	}

	r.log.Info("product created in db", zap.Int64("id", model.ID), zap.String("seller", p.SellerEmail))
	return model.ID, nil
}

// GetByID retrieves a product by its identifier. Returns (nil, nil) when
// the product does not exist.
func (r *ProductRepoPG) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	var model ProductSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("product not found", zap.Int64("id", id))
			return nil, nil
		}
		r.log.Error("failed to get product from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	p := model.toDomain()
	return &p, nil
}

// applyFilter translates the optional search parameters into WHERE
// clauses: title and category are case-insensitive substring matches,
// brand is exact, all combined with AND.
func (r *ProductRepoPG) applyFilter(q *gorm.DB, f product.SearchFilter) *gorm.DB {
	if f.Title != "" {
		q = q.Where(`LOWER(title) LIKE ? ESCAPE '\'`, security.ContainsPattern(f.Title))
	}
	if f.Category != "" {
		q = q.Where(`LOWER(category) LIKE ? ESCAPE '\'`, security.ContainsPattern(f.Category))
	}
	if f.Brand != "" {
		q = q.Where("brand = ?", f.Brand)
	}
	return q
}

// Search returns the requested page of the filtered catalog sorted by
// price, plus the total number of matches before pagination.
func (r *ProductRepoPG) Search(ctx context.Context, f product.SearchFilter) ([]product.Product, int64, error) {
	var total int64
	countQuery := r.applyFilter(r.db.WithContext(ctx).Model(&ProductSchema{}), f)
	if err := countQuery.Count(&total).Error; err != nil {
		r.log.Error("failed to count products", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	order := "price DESC"
	if f.Ascending() {
		order = "price ASC"
	}

	var models []ProductSchema
	pageQuery := r.applyFilter(r.db.WithContext(ctx).Model(&ProductSchema{}), f)
	if err := pageQuery.Order(order).Offset(f.Offset()).Limit(f.Limit).Find(&models).Error; err != nil {
		r.log.Error("failed to search products", zap.Error(err), zap.Int("page", f.Page), zap.Int("limit", f.Limit))
		return nil, 0, fmt.Errorf("failed to search products: %w", err)
	}

	products := make([]product.Product, len(models))
	for i, m := range models {
		products[i] = m.toDomain()
	}

	return products, total, nil
}

// DistinctFacets returns the distinct brand and category values across the
// whole filtered set, not just one page.
func (r *ProductRepoPG) DistinctFacets(ctx context.Context, f product.SearchFilter) ([]string, []string, error) {
	var brands []string
	q := r.applyFilter(r.db.WithContext(ctx).Model(&ProductSchema{}), f)
	if err := q.Distinct().Order("brand").Pluck("brand", &brands).Error; err != nil {
		r.log.Error("failed to load brand facets", zap.Error(err))
		return nil, nil, fmt.Errorf("failed to load brand facets: %w", err)
	}

	var categories []string
	q = r.applyFilter(r.db.WithContext(ctx).Model(&ProductSchema{}), f)
	if err := q.Distinct().Order("category").Pluck("category", &categories).Error; err != nil {
		r.log.Error("failed to load category facets", zap.Error(err))
		return nil, nil, fmt.Errorf("failed to load category facets: %w", err)
	}

	return brands, categories, nil
}

// ListBySeller retrieves every product owned by the given seller email.
func (r *ProductRepoPG) ListBySeller(ctx context.Context, sellerEmail string) ([]product.Product, error) {
	var models []ProductSchema
	if err := r.db.WithContext(ctx).Where("seller_email = ?", sellerEmail).Find(&models).Error; err != nil {
		r.log.Error("failed to list seller products", zap.Error(err), zap.String("seller", sellerEmail))
		return nil, fmt.Errorf("failed to list seller products: %w", err)
	}

	products := make([]product.Product, len(models))
	for i, m := range models {
		products[i] = m.toDomain()
	}
	return products, nil
}

// FindByIDs retrieves the products whose IDs appear in the given set.
// Missing IDs are silently skipped.
func (r *ProductRepoPG) FindByIDs(ctx context.Context, ids []int64) ([]product.Product, error) {
	if len(ids) == 0 {
		return []product.Product{}, nil
	}

	var models []ProductSchema
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		r.log.Error("failed to find products by ids", zap.Error(err), zap.Int("count", len(ids)))
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	products := make([]product.Product, len(models))
	for i, m := range models {
		products[i] = m.toDomain()
	}
	return products, nil
}

// Update applies the given column changes to a product and reports the
// number of affected rows.
func (r *ProductRepoPG) Update(ctx context.Context, id int64, updates map[string]interface{}) (int64, error) {
	if len(updates) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).Model(&ProductSchema{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		r.log.Error("failed to update product in db", zap.Error(res.Error), zap.Int64("id", id))
		return 0, fmt.Errorf("failed to update product: %w", res.Error)
	}

	r.log.Info("product updated in db", zap.Int64("id", id), zap.Int64("rows", res.RowsAffected))
	return res.RowsAffected, nil
}

// Delete removes a product by ID and reports the number of deleted rows.
func (r *ProductRepoPG) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&ProductSchema{}, id)
	if res.Error != nil {
		r.log.Error("failed to delete product in db", zap.Error(res.Error), zap.Int64("id", id))
		return 0, fmt.Errorf("failed to delete product: %w", res.Error)
	}

	r.log.Info("product deleted in db", zap.Int64("id", id), zap.Int64("rows", res.RowsAffected))
	return res.RowsAffected, nil
}

// DeleteBySeller removes every product owned by the given seller email and
// reports the number of deleted rows.
func (r *ProductRepoPG) DeleteBySeller(ctx context.Context, sellerEmail string) (int64, error) {
	res := r.db.WithContext(ctx).Where("seller_email = ?", sellerEmail).Delete(&ProductSchema{})
	if res.Error != nil {
		r.log.Error("failed to delete seller products", zap.Error(res.Error), zap.String("seller", sellerEmail))
		return 0, fmt.Errorf("failed to delete seller products: %w", res.Error)
	}

	r.log.Info("seller products deleted in db", zap.String("seller", sellerEmail), zap.Int64("rows", res.RowsAffected))
	return res.RowsAffected, nil
}
