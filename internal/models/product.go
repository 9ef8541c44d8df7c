package models

// SortKey selects the ordering applied by the catalog filter pipeline
type SortKey string

const (
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

// DefaultProductImage is assigned when a product is created without images
const DefaultProductImage = "https://placehold.co/800x600.png"

// ProductReview represents a single customer review. Reviews are immutable
// once created.
type ProductReview struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Rating  int    `json:"rating"` // 1-5
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// Product represents a catalog product
type Product struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Brand           string          `json:"brand"`
	Description     string          `json:"description"`
	Price           float64         `json:"price"`
	Images          []string        `json:"images"`
	Sizes           []string        `json:"sizes"`
	AvailableColors []string        `json:"availableColors"`
	Category        string          `json:"category"`
	Reviews         []ProductReview `json:"reviews"`
	Slug            string          `json:"slug"`
	Stock           int             `json:"stock"`
	Tags            []string        `json:"tags,omitempty"`
	DataAiHint      string          `json:"dataAiHint,omitempty"`
}

// CreateProductRequest is the admin create payload. Name, price, category
// and brand are required; everything else defaults to empty/zero.
type CreateProductRequest struct {
	Name            string   `json:"name" binding:"required"`
	Brand           string   `json:"brand" binding:"required"`
	Description     string   `json:"description"`
	Price           *float64 `json:"price" binding:"required"`
	Images          []string `json:"images"`
	Sizes           []string `json:"sizes"`
	AvailableColors []string `json:"availableColors"`
	Category        string   `json:"category" binding:"required"`
	Stock           int      `json:"stock"`
	Tags            []string `json:"tags"`
	DataAiHint      string   `json:"dataAiHint"`
}

// UpdateProductRequest is the admin update payload. Only non-nil fields are
// merged onto the existing record.
type UpdateProductRequest struct {
	Name            *string   `json:"name,omitempty"`
	Brand           *string   `json:"brand,omitempty"`
	Description     *string   `json:"description,omitempty"`
	Price           *float64  `json:"price,omitempty"`
	Images          *[]string `json:"images,omitempty"`
	Sizes           *[]string `json:"sizes,omitempty"`
	AvailableColors *[]string `json:"availableColors,omitempty"`
	Category        *string   `json:"category,omitempty"`
	Stock           *int      `json:"stock,omitempty"`
	Tags            *[]string `json:"tags,omitempty"`
	DataAiHint      *string   `json:"dataAiHint,omitempty"`
}

// CreateReviewRequest is the payload for appending a review to a product
type CreateReviewRequest struct {
	Author  string `json:"author" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

// FilterQuery carries the storefront list criteria. Empty facet slices are
// pass-through; MaxPrice 0 disables the price criterion.
type FilterQuery struct {
	Term       string   `json:"term"`
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
	Sizes      []string `json:"sizes"`
	Colors     []string `json:"colors"`
	MaxPrice   float64  `json:"maxPrice"`
	SortBy     SortKey  `json:"sortBy"`
	Page       int      `json:"page"` // 1-based
}

// ActiveFilterCount reports how many criteria are currently narrowing the
// result set. Used for the display/reset affordance only.
func (q FilterQuery) ActiveFilterCount() int {
	count := len(q.Categories) + len(q.Brands) + len(q.Sizes) + len(q.Colors)
	if q.Term != "" {
		count++
	}
	if q.MaxPrice > 0 {
		count++
	}
	return count
}

// FilterOptions is a derived snapshot of the distinct facet values across
// the catalog, recomputed on demand.
type FilterOptions struct {
	Sizes      []string `json:"sizes"`
	Colors     []string `json:"colors"`
	Brands     []string `json:"brands"`
	Categories []string `json:"categories"`
	MaxPrice   float64  `json:"maxPrice"` // rounded up to the nearest 100
}

// ProductPage is one page of filtered results
type ProductPage struct {
	Items       []Product `json:"items"`
	TotalCount  int       `json:"totalCount"`
	TotalPages  int       `json:"totalPages"`
	Page        int       `json:"page"`
	ActiveCount int       `json:"activeFilterCount"`
}

type ErrorResponse struct {
	Success bool  `json:"success"`
	Error   Error `json:"error"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message *string     `json:"message,omitempty"`
}
