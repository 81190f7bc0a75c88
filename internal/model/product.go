package model

import "time"

// Product Categories
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryHome        Category = "home"
	CategoryBeauty      Category = "beauty"
	CategorySports      Category = "sports"
	CategoryBooks       Category = "books"
	CategoryOther       Category = "other"
)

type Product struct {
	ID          string    `json:"id"`
	SellerID    string    `json:"seller_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Category    Category  `json:"category"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// EnrichedProduct is a Product annotated with the seller's current
// subscription standing. It never filters anything on its own; the UI
// uses the flag for badges and faded states.
type EnrichedProduct struct {
	Product
	IsSellerSubscriptionActive bool `json:"is_seller_subscription_active"`
}
