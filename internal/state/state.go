// Package state owns the marketplace's in-process application state: a
// single MarketplaceState value that only changes by dispatching actions
// through the reducer pipeline. Reducers are pure and total; anything
// needing fresh identity or a timestamp gets it from the action creators,
// never inside a reducer.
package state

import "marketplace_backend/internal/model"

// Sort Fields
type SortField string

const (
	SortByPrice     SortField = "price"
	SortByName      SortField = "name"
	SortByCreatedAt SortField = "created_at"
)

// Sort Orders
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// PriceRange filters the catalog view. Max == 0 means unbounded above.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// MarketplaceState is the aggregate root. It is created once via Initial
// and from then on only replaced wholesale by the reducer pipeline;
// holders of a snapshot must treat it as read-only.
type MarketplaceState struct {
	Products      []model.Product      `json:"products"`
	Cart          []model.CartItem     `json:"cart"`
	Orders        []model.Order        `json:"orders"`
	Notifications []model.Notification `json:"notifications"`

	IsLoading   bool `json:"is_loading"`
	IsConnected bool `json:"is_connected"`

	SearchQuery      string         `json:"search_query"`
	SelectedCategory model.Category `json:"selected_category"`
	PriceRange       PriceRange     `json:"price_range"`
	SortBy           SortField      `json:"sort_by"`
	SortOrder        SortOrder      `json:"sort_order"`
}

// Initial returns the state the application starts from.
func Initial() MarketplaceState {
	return MarketplaceState{
		Products:      []model.Product{},
		Cart:          []model.CartItem{},
		Orders:        []model.Order{},
		Notifications: []model.Notification{},
		SortBy:        SortByCreatedAt,
		SortOrder:     SortDesc,
	}
}
