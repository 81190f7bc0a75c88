package controller

import (
	"github.com/gofiber/fiber/v2"

	"marketplace_backend/internal/model"
	"marketplace_backend/internal/state"
)

type CatalogFiltersInput struct {
	SearchQuery *string  `json:"search_query"`
	Category    *string  `json:"category"`
	PriceMin    *float64 `json:"price_min"`
	PriceMax    *float64 `json:"price_max"`
	SortBy      *string  `json:"sort_by"`
	SortOrder   *string  `json:"sort_order"`
}

// GetCatalog is the storefront listing: the visibility engine decides
// which products are eligible at all, then the catalog-view filters from
// the state are applied on top.
func GetCatalog(c *fiber.Ctx) error {
	snapshot := store.State()

	report, err := engine.Evaluate(snapshot.Products)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not evaluate product visibility",
		})
	}

	products := snapshot.ApplyCatalogFilters(report.Visible)

	return c.JSON(fiber.Map{
		"products": products,
		"count":    len(products),
		"filters": fiber.Map{
			"search_query": snapshot.SearchQuery,
			"category":     snapshot.SelectedCategory,
			"price_range":  snapshot.PriceRange,
			"sort_by":      snapshot.SortBy,
			"sort_order":   snapshot.SortOrder,
		},
	})
}

func GetCatalogStats(c *fiber.Ctx) error {
	snapshot := store.State()

	report, err := engine.Evaluate(snapshot.Products)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not evaluate product visibility",
		})
	}

	return c.JSON(report.Stats)
}

// GetCatalogPartition exposes both subsets plus the enriched list for
// admin debugging views.
func GetCatalogPartition(c *fiber.Ctx) error {
	snapshot := store.State()

	report, err := engine.Evaluate(snapshot.Products)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not evaluate product visibility",
		})
	}

	return c.JSON(report)
}

func UpdateCatalogFilters(c *fiber.Ctx) error {
	input := new(CatalogFiltersInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.SearchQuery != nil {
		store.Dispatch(state.SetSearchQuery{Query: *input.SearchQuery})
	}
	if input.Category != nil {
		store.Dispatch(state.SetCategory{Category: model.Category(*input.Category)})
	}
	if input.PriceMin != nil || input.PriceMax != nil {
		snapshot := store.State()
		r := snapshot.PriceRange
		if input.PriceMin != nil {
			r.Min = *input.PriceMin
		}
		if input.PriceMax != nil {
			r.Max = *input.PriceMax
		}
		store.Dispatch(state.SetPriceRange{Range: r})
	}
	if input.SortBy != nil || input.SortOrder != nil {
		snapshot := store.State()
		sortBy, sortOrder := snapshot.SortBy, snapshot.SortOrder
		if input.SortBy != nil {
			sortBy = state.SortField(*input.SortBy)
		}
		if input.SortOrder != nil {
			sortOrder = state.SortOrder(*input.SortOrder)
		}
		store.Dispatch(state.SetSort{SortBy: sortBy, SortOrder: sortOrder})
	}

	return c.JSON(fiber.Map{
		"message": "Catalog filters updated",
	})
}
