package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solemate-service/internal/models"
)

func TestFilterTermMatchesNameBrandCategoryAndTags(t *testing.T) {
	catalog := SeedCatalog()

	// "boot" matches TrailBlazer Pro Boots via both name and category;
	// no category selection needed
	page := ApplyFilter(catalog, models.FilterQuery{Term: "boot"}, 20)
	require.Equal(t, 1, page.TotalCount)
	assert.Equal(t, "TrailBlazer Pro Boots", page.Items[0].Name)

	// brand substring
	page = ApplyFilter(catalog, models.FilterQuery{Term: "novagear"}, 20)
	assert.Equal(t, 2, page.TotalCount)

	// tag substring
	page = ApplyFilter(catalog, models.FilterQuery{Term: "waterproof"}, 20)
	require.Equal(t, 1, page.TotalCount)
	assert.Equal(t, "2", page.Items[0].ID)

	// empty term is pass-through
	page = ApplyFilter(catalog, models.FilterQuery{}, 20)
	assert.Equal(t, len(catalog), page.TotalCount)
}

func TestFilterFacetSelections(t *testing.T) {
	catalog := SeedCatalog()

	page := ApplyFilter(catalog, models.FilterQuery{Categories: []string{"Formal Shoes"}}, 20)
	assert.Equal(t, 2, page.TotalCount)

	page = ApplyFilter(catalog, models.FilterQuery{Brands: []string{"SunStep", "TerraBoot"}}, 20)
	assert.Equal(t, 2, page.TotalCount)

	// size filter uses intersection
	page = ApplyFilter(catalog, models.FilterQuery{Sizes: []string{"13"}}, 20)
	require.Equal(t, 1, page.TotalCount)
	assert.Equal(t, "2", page.Items[0].ID)

	page = ApplyFilter(catalog, models.FilterQuery{Colors: []string{"Coral", "Tan"}}, 20)
	assert.Equal(t, 2, page.TotalCount)

	// facets combine conjunctively
	page = ApplyFilter(catalog, models.FilterQuery{
		Categories: []string{"Formal Shoes"},
		Colors:     []string{"Tan"},
	}, 20)
	require.Equal(t, 1, page.TotalCount)
	assert.Equal(t, "Classic Oxford Brogue", page.Items[0].Name)
}

func TestFilterMaxPriceIsOptional(t *testing.T) {
	catalog := SeedCatalog()

	page := ApplyFilter(catalog, models.FilterQuery{MaxPrice: 130}, 20)
	assert.Equal(t, 2, page.TotalCount) // 120 and 60

	// zero disables the criterion
	page = ApplyFilter(catalog, models.FilterQuery{MaxPrice: 0}, 20)
	assert.Equal(t, len(catalog), page.TotalCount)
}

func TestSortKeys(t *testing.T) {
	catalog := SeedCatalog()

	page := ApplyFilter(catalog, models.FilterQuery{SortBy: models.SortPriceAsc}, 20)
	require.Equal(t, 6, page.TotalCount)
	assert.Equal(t, 60.0, page.Items[0].Price)
	assert.Equal(t, 190.0, page.Items[5].Price)

	page = ApplyFilter(catalog, models.FilterQuery{SortBy: models.SortPriceDesc}, 20)
	assert.Equal(t, 190.0, page.Items[0].Price)

	page = ApplyFilter(catalog, models.FilterQuery{SortBy: models.SortNameAsc}, 20)
	assert.Equal(t, "Classic Oxford Brogue", page.Items[0].Name)

	page = ApplyFilter(catalog, models.FilterQuery{SortBy: models.SortNameDesc}, 20)
	assert.Equal(t, "Urban Strider X1", page.Items[0].Name)
}

func TestSortIsStable(t *testing.T) {
	catalog := []models.Product{
		{ID: "a", Name: "Alpha", Price: 100},
		{ID: "b", Name: "Beta", Price: 100},
		{ID: "c", Name: "Gamma", Price: 100},
		{ID: "d", Name: "Delta", Price: 50},
	}

	page := ApplyFilter(catalog, models.FilterQuery{SortBy: models.SortPriceAsc}, 20)
	require.Equal(t, 4, page.TotalCount)
	// equal-price items keep their catalog order
	assert.Equal(t, []string{"d", "a", "b", "c"},
		[]string{page.Items[0].ID, page.Items[1].ID, page.Items[2].ID, page.Items[3].ID})
}

func TestPagination(t *testing.T) {
	catalog := SeedCatalog()

	page1 := ApplyFilter(catalog, models.FilterQuery{Page: 1, SortBy: models.SortNameAsc}, 4)
	assert.Equal(t, 6, page1.TotalCount)
	assert.Equal(t, 2, page1.TotalPages)
	assert.Len(t, page1.Items, 4)

	page2 := ApplyFilter(catalog, models.FilterQuery{Page: 2, SortBy: models.SortNameAsc}, 4)
	assert.Len(t, page2.Items, 2)

	// items summed across all pages equal the total count
	assert.Equal(t, page1.TotalCount, len(page1.Items)+len(page2.Items))

	// out-of-range pages yield an empty page, not an error
	page9 := ApplyFilter(catalog, models.FilterQuery{Page: 9}, 4)
	assert.Empty(t, page9.Items)
	assert.Equal(t, 6, page9.TotalCount)

	// pages below 1 normalize to page 1
	page0 := ApplyFilter(catalog, models.FilterQuery{Page: 0}, 4)
	assert.Equal(t, 1, page0.Page)
	assert.Len(t, page0.Items, 4)
}

func TestActiveFilterCount(t *testing.T) {
	query := models.FilterQuery{
		Term:       "boot",
		Categories: []string{"Boots", "Sneakers"},
		Brands:     []string{"TerraBoot"},
		Sizes:      []string{"9"},
	}
	assert.Equal(t, 5, query.ActiveFilterCount())

	assert.Equal(t, 0, models.FilterQuery{}.ActiveFilterCount())

	page := ApplyFilter(SeedCatalog(), query, 20)
	assert.Equal(t, 5, page.ActiveCount)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	catalog := SeedCatalog()
	first := catalog[0].ID

	ApplyFilter(catalog, models.FilterQuery{SortBy: models.SortPriceDesc}, 20)
	assert.Equal(t, first, catalog[0].ID)
}
