// Package visibility decides which products are eligible for display based
// on the issuing seller's subscription standing. All passes are pure
// transforms over (products, registry, now); the engine owns no state.
package visibility

import (
	"time"

	"marketplace_backend/internal/model"
	"marketplace_backend/pkg/subscription"
)

// Stats is a single-pass partition summary of a product list. ActiveSellers
// and InactiveSellers are disjoint and together cover every distinct
// sellerID in the input, since activity is evaluated once against the same
// now for the whole pass.
type Stats struct {
	TotalProducts    int             `json:"total_products"`
	ActiveProducts   int             `json:"active_products"`
	InactiveProducts int             `json:"inactive_products"`
	ActiveSellers    map[string]bool `json:"active_sellers"`
	InactiveSellers  map[string]bool `json:"inactive_sellers"`
}

// Partition holds both subsets of a product list at once, for call sites
// (admin views) that need the hidden side too.
type Partition struct {
	Visible []model.Product `json:"visible"`
	Hidden  []model.Product `json:"hidden"`
}

// FilterActive returns the products whose seller is effectively subscribed
// at now.
func FilterActive(products []model.Product, registry subscription.Registry, now time.Time) []model.Product {
	visible := make([]model.Product, 0, len(products))
	for _, p := range products {
		if subscription.IsActiveAt(registry[p.SellerID], now) {
			visible = append(visible, p)
		}
	}
	return visible
}

// Enrich annotates every product with its seller's standing without
// filtering anything.
func Enrich(products []model.Product, registry subscription.Registry, now time.Time) []model.EnrichedProduct {
	enriched := make([]model.EnrichedProduct, 0, len(products))
	for _, p := range products {
		enriched = append(enriched, model.EnrichedProduct{
			Product:                    p,
			IsSellerSubscriptionActive: subscription.IsActiveAt(registry[p.SellerID], now),
		})
	}
	return enriched
}

// ComputeStats partitions the list in one pass.
func ComputeStats(products []model.Product, registry subscription.Registry, now time.Time) Stats {
	stats := Stats{
		ActiveSellers:   make(map[string]bool),
		InactiveSellers: make(map[string]bool),
	}
	for _, p := range products {
		stats.TotalProducts++
		if subscription.IsActiveAt(registry[p.SellerID], now) {
			stats.ActiveProducts++
			stats.ActiveSellers[p.SellerID] = true
		} else {
			stats.InactiveProducts++
			stats.InactiveSellers[p.SellerID] = true
		}
	}
	return stats
}

// Split derives both subsets from the enriched view. The lengths of the
// two sides always sum to the input length.
func Split(products []model.Product, registry subscription.Registry, now time.Time) Partition {
	part := Partition{
		Visible: []model.Product{},
		Hidden:  []model.Product{},
	}
	for _, e := range Enrich(products, registry, now) {
		if e.IsSellerSubscriptionActive {
			part.Visible = append(part.Visible, e.Product)
		} else {
			part.Hidden = append(part.Hidden, e.Product)
		}
	}
	return part
}
