package state

import (
	"sort"
	"strings"

	"marketplace_backend/internal/model"
)

// CartItemCount returns the number of units across all cart lines.
func (s MarketplaceState) CartItemCount() int {
	count := 0
	for _, item := range s.Cart {
		count += item.Quantity
	}
	return count
}

// CartTotal returns the cart total using the unit prices snapshotted at
// add-time.
func (s MarketplaceState) CartTotal() float64 {
	total := 0.0
	for _, item := range s.Cart {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// FilteredProducts applies the catalog-view filters to the stored product
// list.
func (s MarketplaceState) FilteredProducts() []model.Product {
	return s.ApplyCatalogFilters(s.Products)
}

// ApplyCatalogFilters filters and sorts an arbitrary product list by the
// state's search query, category, price range and sort settings. The input
// slice is not modified.
func (s MarketplaceState) ApplyCatalogFilters(products []model.Product) []model.Product {
	query := strings.ToLower(strings.TrimSpace(s.SearchQuery))

	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if s.SelectedCategory != "" && p.Category != s.SelectedCategory {
			continue
		}
		if p.Price < s.PriceRange.Min {
			continue
		}
		if s.PriceRange.Max > 0 && p.Price > s.PriceRange.Max {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		var less bool
		switch s.SortBy {
		case SortByPrice:
			less = filtered[i].Price < filtered[j].Price
		case SortByName:
			less = filtered[i].Name < filtered[j].Name
		default:
			less = filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
		}
		if s.SortOrder == SortDesc {
			return !less && !equalBySortKey(filtered[i], filtered[j], s.SortBy)
		}
		return less
	})

	return filtered
}

func equalBySortKey(a, b model.Product, key SortField) bool {
	switch key {
	case SortByPrice:
		return a.Price == b.Price
	case SortByName:
		return a.Name == b.Name
	default:
		return a.CreatedAt.Equal(b.CreatedAt)
	}
}
