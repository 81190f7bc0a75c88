package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace_backend/internal/model"
)

func TestCartTotals(t *testing.T) {
	s := Initial()
	s = Reduce(s, NewAddToCart(productFixture("p1", "s1", 10), 2))
	s = Reduce(s, NewAddToCart(productFixture("p2", "s1", 5.5), 3))

	assert.Equal(t, 5, s.CartItemCount())
	assert.InDelta(t, 36.5, s.CartTotal(), 1e-9)
}

func TestCartTotalsEmpty(t *testing.T) {
	s := Initial()

	assert.Equal(t, 0, s.CartItemCount())
	assert.Equal(t, 0.0, s.CartTotal())
}

func TestFilteredProductsSearchAndCategory(t *testing.T) {
	s := Initial()
	lamp := productFixture("p1", "s1", 30)
	lamp.Name = "Desk Lamp"
	lamp.Category = model.CategoryHome
	shirt := productFixture("p2", "s1", 15)
	shirt.Name = "Linen Shirt"
	shirt.Category = model.CategoryClothing
	s = Reduce(s, SetProducts{Products: []model.Product{lamp, shirt}})

	s = Reduce(s, SetSearchQuery{Query: "lamp"})
	got := s.FilteredProducts()
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)

	s = Reduce(s, SetSearchQuery{Query: ""})
	s = Reduce(s, SetCategory{Category: model.CategoryClothing})
	got = s.FilteredProducts()
	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)
}

func TestFilteredProductsPriceRange(t *testing.T) {
	s := Initial()
	s = Reduce(s, SetProducts{Products: []model.Product{
		productFixture("cheap", "s1", 5),
		productFixture("mid", "s1", 50),
		productFixture("dear", "s1", 500),
	}})

	s = Reduce(s, SetPriceRange{Range: PriceRange{Min: 10, Max: 100}})
	got := s.FilteredProducts()
	require.Len(t, got, 1)
	assert.Equal(t, "mid", got[0].ID)

	// Max of zero means unbounded above.
	s = Reduce(s, SetPriceRange{Range: PriceRange{Min: 10}})
	got = s.FilteredProducts()
	assert.Len(t, got, 2)
}

func TestFilteredProductsSorting(t *testing.T) {
	s := Initial()
	a := productFixture("a", "s1", 30)
	a.Name = "Anvil"
	b := productFixture("b", "s1", 10)
	b.Name = "Bucket"
	b.CreatedAt = a.CreatedAt.Add(time.Hour)
	s = Reduce(s, SetProducts{Products: []model.Product{a, b}})

	s = Reduce(s, SetSort{SortBy: SortByPrice, SortOrder: SortAsc})
	got := s.FilteredProducts()
	assert.Equal(t, []string{"b", "a"}, []string{got[0].ID, got[1].ID})

	s = Reduce(s, SetSort{SortBy: SortByPrice, SortOrder: SortDesc})
	got = s.FilteredProducts()
	assert.Equal(t, []string{"a", "b"}, []string{got[0].ID, got[1].ID})

	s = Reduce(s, SetSort{SortBy: SortByName, SortOrder: SortAsc})
	got = s.FilteredProducts()
	assert.Equal(t, "a", got[0].ID)

	s = Reduce(s, SetSort{SortBy: SortByCreatedAt, SortOrder: SortDesc})
	got = s.FilteredProducts()
	assert.Equal(t, "b", got[0].ID)
}

func TestApplyCatalogFiltersDoesNotMutateInput(t *testing.T) {
	s := Initial()
	s = Reduce(s, SetSort{SortBy: SortByPrice, SortOrder: SortAsc})

	input := []model.Product{
		productFixture("x", "s1", 30),
		productFixture("y", "s1", 10),
	}
	_ = s.ApplyCatalogFilters(input)

	assert.Equal(t, "x", input[0].ID)
}
