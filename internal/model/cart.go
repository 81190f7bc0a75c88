package model

// CartItem is a single cart line. ID identifies the line itself, not the
// product: the cart holds at most one line per ProductID, and adding a
// product that is already present bumps the existing line's quantity.
// Price is the unit price snapshotted at add-time, so later product
// updates do not change what the buyer saw.
type CartItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Product   Product `json:"product"`
}
