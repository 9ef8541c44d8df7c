package repository

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"solemate-service/internal/models"
)

// nameCollator gives locale-aware name ordering, matching what a browser's
// localeCompare would produce for the storefront locale.
var nameCollator = collate.New(language.English, collate.IgnoreCase)

// ApplyFilter runs the full filter/sort/paginate pipeline over a catalog
// snapshot. It never mutates its input. Filters apply in order: text term,
// category/brand membership, size/color intersection, optional max price.
// Sorting is stable so equal-key products keep their catalog order.
// A page outside [1, totalPages] yields an empty page, not an error.
func ApplyFilter(catalog []models.Product, query models.FilterQuery, pageSize int) models.ProductPage {
	filtered := make([]models.Product, 0, len(catalog))

	term := strings.ToLower(query.Term)
	for _, p := range catalog {
		if term != "" && !matchesTerm(p, term) {
			continue
		}
		if len(query.Categories) > 0 && !contains(query.Categories, p.Category) {
			continue
		}
		if len(query.Brands) > 0 && !contains(query.Brands, p.Brand) {
			continue
		}
		if len(query.Sizes) > 0 && !intersects(p.Sizes, query.Sizes) {
			continue
		}
		if len(query.Colors) > 0 && !intersects(p.AvailableColors, query.Colors) {
			continue
		}
		if query.MaxPrice > 0 && p.Price > query.MaxPrice {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, query.SortBy)

	totalCount := len(filtered)
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}

	page := query.Page
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	items := []models.Product{}
	if start < totalCount {
		if end > totalCount {
			end = totalCount
		}
		items = filtered[start:end]
	}

	return models.ProductPage{
		Items:       items,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		Page:        page,
		ActiveCount: query.ActiveFilterCount(),
	}
}

// matchesTerm reports whether the lowercased term is a substring of the
// product name, brand, category or any tag
func matchesTerm(p models.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Brand), term) ||
		strings.Contains(strings.ToLower(p.Category), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func sortProducts(products []models.Product, key models.SortKey) {
	switch key {
	case models.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case models.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case models.SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return nameCollator.CompareString(products[i].Name, products[j].Name) > 0
		})
	case models.SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return nameCollator.CompareString(products[i].Name, products[j].Name) < 0
		})
	}
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, x := range a {
		if contains(b, x) {
			return true
		}
	}
	return false
}
