package repository

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"solemate-service/internal/models"
)

var (
	// ErrNotFound is returned when no product matches the given id or slug
	ErrNotFound = errors.New("product not found")
	// ErrValidation is returned when a create request is missing required fields
	ErrValidation = errors.New("missing required product fields")
)

var (
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugNonWord    = regexp.MustCompile(`[^\w-]+`)
)

// CatalogRepository owns the in-memory product collection. The collection is
// seeded at startup and lost on restart; there is no backing store.
// All access goes through the mutex so concurrent requests observe whole
// mutations only.
type CatalogRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewCatalogRepository(seed []models.Product) *CatalogRepository {
	products := make([]models.Product, len(seed))
	copy(products, seed)
	return &CatalogRepository{products: products}
}

// GetAll returns the collection in storage order
func (r *CatalogRepository) GetAll() []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out
}

// GetByID returns the product with the exact identifier
func (r *CatalogRepository) GetByID(id string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// GetBySlug returns the product with the exact slug
func (r *CatalogRepository) GetBySlug(slug string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// Create assigns the next numeric id, builds the slug from the name and id,
// applies defaults for absent optional fields and appends the product.
func (r *CatalogRepository) Create(req models.CreateProductRequest) (models.Product, error) {
	if req.Name == "" || req.Price == nil || req.Category == "" || req.Brand == "" {
		return models.Product{}, ErrValidation
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := strconv.Itoa(r.nextID())

	product := models.Product{
		ID:              id,
		Name:            req.Name,
		Brand:           req.Brand,
		Description:     req.Description,
		Price:           *req.Price,
		Images:          req.Images,
		Sizes:           req.Sizes,
		AvailableColors: req.AvailableColors,
		Category:        req.Category,
		Reviews:         []models.ProductReview{},
		Slug:            buildSlug(req.Name, id),
		Stock:           req.Stock,
		Tags:            req.Tags,
		DataAiHint:      req.DataAiHint,
	}
	if len(product.Images) == 0 {
		product.Images = []string{models.DefaultProductImage}
	}
	if product.Sizes == nil {
		product.Sizes = []string{}
	}
	if product.AvailableColors == nil {
		product.AvailableColors = []string{}
	}
	if product.Tags == nil {
		product.Tags = []string{}
	}

	r.products = append(r.products, product)
	return product, nil
}

// Update merges the non-nil fields of the request onto the stored record.
// A name change regenerates the slug with the same algorithm as Create.
func (r *CatalogRepository) Update(id string, req models.UpdateProductRequest) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return models.Product{}, ErrNotFound
	}

	p := r.products[idx]
	if req.Name != nil && *req.Name != p.Name {
		p.Name = *req.Name
		p.Slug = buildSlug(p.Name, p.ID)
	}
	if req.Brand != nil {
		p.Brand = *req.Brand
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Images != nil {
		p.Images = *req.Images
	}
	if req.Sizes != nil {
		p.Sizes = *req.Sizes
	}
	if req.AvailableColors != nil {
		p.AvailableColors = *req.AvailableColors
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.Tags != nil {
		p.Tags = *req.Tags
	}
	if req.DataAiHint != nil {
		p.DataAiHint = *req.DataAiHint
	}

	r.products[idx] = p
	return p, nil
}

// Delete removes the record with the given id
func (r *CatalogRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}
	r.products = append(r.products[:idx], r.products[idx+1:]...)
	return nil
}

// AddReview appends an immutable review to the product
func (r *CatalogRepository) AddReview(id string, review models.ProductReview) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return models.Product{}, ErrNotFound
	}
	r.products[idx].Reviews = append(r.products[idx].Reviews, review)
	return r.products[idx], nil
}

// GetFilterOptions derives the distinct sorted facet values and the maximum
// price rounded up to the nearest 100. Scans the full collection each call;
// fine at the catalog sizes this service holds.
func (r *CatalogRepository) GetFilterOptions() models.FilterOptions {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sizes := map[string]struct{}{}
	colors := map[string]struct{}{}
	brands := map[string]struct{}{}
	categories := map[string]struct{}{}
	maxPrice := 0.0

	for _, p := range r.products {
		for _, s := range p.Sizes {
			sizes[s] = struct{}{}
		}
		for _, c := range p.AvailableColors {
			colors[c] = struct{}{}
		}
		brands[p.Brand] = struct{}{}
		categories[p.Category] = struct{}{}
		if p.Price > maxPrice {
			maxPrice = p.Price
		}
	}

	return models.FilterOptions{
		Sizes:      sortedKeys(sizes),
		Colors:     sortedKeys(colors),
		Brands:     sortedKeys(brands),
		Categories: sortedKeys(categories),
		MaxPrice:   math.Ceil(maxPrice/100) * 100,
	}
}

// nextID is one greater than the maximum numeric id, or 1 when empty.
// Caller holds the lock.
func (r *CatalogRepository) nextID() int {
	max := 0
	for _, p := range r.products {
		if n, err := strconv.Atoi(p.ID); err == nil && n > max {
			max = n
		}
	}
	return max + 1
}

// indexOf returns the position of the product with the given id, -1 when
// absent. Caller holds the lock.
func (r *CatalogRepository) indexOf(id string) int {
	for i, p := range r.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// buildSlug lowercases the name, collapses whitespace to hyphens, strips
// non-word characters and appends the id for uniqueness
func buildSlug(name, id string) string {
	slug := strings.ToLower(name)
	slug = slugWhitespace.ReplaceAllString(slug, "-")
	slug = slugNonWord.ReplaceAllString(slug, "")
	return fmt.Sprintf("%s-%s", slug, id)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
