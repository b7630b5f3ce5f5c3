package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"glamour-lush-server/internal/adapter/gin/middleware"
	domain "glamour-lush-server/internal/domain/product"
	"glamour-lush-server/internal/usecase/product"
	apperrors "glamour-lush-server/pkg/errors"
)

// ProductHandler handles HTTP requests for catalog browsing and seller
// product management.
type ProductHandler struct {
	uc  product.Usecase
	log *zap.Logger
}

// NewProductHandler creates a new ProductHandler instance.
func NewProductHandler(uc product.Usecase, log *zap.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// CreateProductRequest represents the HTTP request body for a new product.
type CreateProductRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Brand       string  `json:"brand" binding:"omitempty,max=100"`
	Category    string  `json:"category" binding:"omitempty,max=100"`
	Description string  `json:"description" binding:"omitempty,max=2000"`
	Image       string  `json:"image" binding:"omitempty,max=500"`
	Price       float64 `json:"price" binding:"gte=0"`
}

// UpdateProductRequest represents the HTTP request body for a product
// update. A nil price means "leave the price alone".
type UpdateProductRequest struct {
	Title       string   `json:"title" binding:"omitempty,max=200"`
	Brand       string   `json:"brand" binding:"omitempty,max=100"`
	Category    string   `json:"category" binding:"omitempty,max=100"`
	Description string   `json:"description" binding:"omitempty,max=2000"`
	Image       string   `json:"image" binding:"omitempty,max=500"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
}

// ProductResponse represents the HTTP response for product data.
type ProductResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	Price       float64 `json:"price"`
	SellerEmail string  `json:"sellerEmail"`
}

// SearchResponse represents the HTTP response for the catalog search.
type SearchResponse struct {
	Products      []ProductResponse `json:"products"`
	Brands        []string          `json:"brands"`
	Categories    []string          `json:"categories"`
	TotalProducts int64             `json:"totalProducts"`
}

func toProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Brand:       p.Brand,
		Category:    p.Category,
		Description: p.Description,
		Image:       p.Image,
		Price:       p.Price,
		SellerEmail: p.SellerEmail,
	}
}

// Search handles GET /all-products
func (h *ProductHandler) Search(c *gin.Context) {
	filter := domain.SearchFilter{
		Title:    c.Query("title"),
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
		Sort:     c.Query("sort"),
		Page:     intQuery(c, "page", domain.DefaultPage),
		Limit:    intQuery(c, "limit", domain.DefaultLimit),
	}

	result, err := h.uc.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	products := make([]ProductResponse, len(result.Products))
	for i := range result.Products {
		products[i] = toProductResponse(&result.Products[i])
	}

	brands := result.Brands
	if brands == nil {
		brands = []string{}
	}
	categories := result.Categories
	if categories == nil {
		categories = []string{}
	}

	c.JSON(http.StatusOK, SearchResponse{
		Products:      products,
		Brands:        brands,
		Categories:    categories,
		TotalProducts: result.Total,
	})
}

// GetByID handles GET /products?id=
func (h *ProductHandler) GetByID(c *gin.Context) {
	idStr := c.Query("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.log.Warn("invalid product id", zap.String("id", idStr), zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Product ID must be a valid number"})
		return
	}

	p, err := h.uc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": toProductResponse(p)})
}

// Create handles POST /add-products
func (h *ProductHandler) Create(c *gin.Context) {
	email, ok := h.sellerEmail(c)
	if !ok {
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid create product request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	resp, err := h.uc.Create(c.Request.Context(), product.CreateProductRequest{
		Title:       req.Title,
		Brand:       req.Brand,
		Category:    req.Category,
		Description: req.Description,
		Image:       req.Image,
		Price:       req.Price,
	}, email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedId": resp.ID})
}

// ListMine handles GET /my-products
func (h *ProductHandler) ListMine(c *gin.Context) {
	email, ok := h.sellerEmail(c)
	if !ok {
		return
	}

	products, err := h.uc.ListBySeller(c.Request.Context(), email)
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

// UpdateMine handles PATCH /my-products/:id
func (h *ProductHandler) UpdateMine(c *gin.Context) {
	email, ok := h.sellerEmail(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid update product request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	update := product.UpdateProductRequest{
		Title:       req.Title,
		Brand:       req.Brand,
		Category:    req.Category,
		Description: req.Description,
		Image:       req.Image,
	}
	if req.Price != nil {
		update.Price = *req.Price
		update.PriceSet = true
	}

	rows, err := h.uc.UpdateOwned(c.Request.Context(), id, email, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": rows})
}

// DeleteMine handles DELETE /my-products/:id
func (h *ProductHandler) DeleteMine(c *gin.Context) {
	email, ok := h.sellerEmail(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	rows, err := h.uc.DeleteOwned(c.Request.Context(), id, email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": rows})
}

// sellerEmail pulls the authenticated email off the request. The auth
// middleware guarantees it for protected routes; a missing claim means the
// route was wired without authentication.
func (h *ProductHandler) sellerEmail(c *gin.Context) (string, bool) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		respondError(c, apperrors.ErrNoToken)
		return "", false
	}
	return claims.Email, true
}

// pathID parses the :id path parameter, responding with 400 on failure.
func (h *ProductHandler) pathID(c *gin.Context) (int64, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.log.Warn("invalid id parameter", zap.String("id", idStr), zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "ID must be a valid number"})
		return 0, false
	}
	return id, true
}

// intQuery parses an integer query parameter with a fallback default.
func intQuery(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(def)))
	if err != nil || v < 1 {
		return def
	}
	return v
}
