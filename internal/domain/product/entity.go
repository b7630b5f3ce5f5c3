package product

// Product represents a catalog item owned by a seller account.
type Product struct {
	ID          int64   // ID is the store-assigned identifier
	Title       string  // Title is the display name, substring-searchable
	Brand       string  // Brand is exact-match filterable
	Category    string  // Category is substring-searchable
	Description string  // Description is free-form marketing copy
	Image       string  // Image is a URL to the product picture
	Price       float64 // Price is the unit price, sortable
	SellerEmail string  // SellerEmail links the product to its owning user
}

// SortAscending is the only sort value that yields ascending price order;
// every other value, including absence, sorts descending.
const SortAscending = "asc"

const (
	DefaultPage  = 1
	DefaultLimit = 6
)

// SearchFilter carries the optional catalog search parameters. Zero-value
// string fields impose no constraint; Page and Limit are normalized by
// Normalize before the query runs.
type SearchFilter struct {
	Title    string // case-insensitive substring match on Title
	Category string // case-insensitive substring match on Category
	Brand    string // exact match on Brand
	Sort     string // "asc" for ascending price, anything else descending
	Page     int
	Limit    int
}

// Normalize clamps pagination to sane values and returns the filter.
func (f SearchFilter) Normalize() SearchFilter {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	return f
}

// Ascending reports whether the filter requests ascending price order.
func (f SearchFilter) Ascending() bool {
	return f.Sort == SortAscending
}

// Offset returns the number of rows to skip for the requested page.
func (f SearchFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// SearchResult is one page of the filtered, sorted catalog together with
// the pre-pagination match count and the brand/category facets.
type SearchResult struct {
	Products   []Product
	Total      int64
	Brands     []string
	Categories []string
}
