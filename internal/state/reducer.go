package state

import "marketplace_backend/internal/model"

// Reduce applies a single action and returns the next state. It is total:
// exactly one sub-reducer handles any known action, operations on absent
// ids are silent no-ops, and an action outside the catalog returns the
// input state value unchanged (slice headers shared, so callers can cheaply
// detect "nothing happened").
func Reduce(s MarketplaceState, a Action) MarketplaceState {
	switch a := a.(type) {
	case ProductAction:
		return reduceProduct(s, a)
	case CartAction:
		return reduceCart(s, a)
	case OrderAction:
		return reduceOrder(s, a)
	case NotificationAction:
		return reduceNotification(s, a)
	case UIAction:
		return reduceUI(s, a)
	}
	return s
}

func reduceProduct(s MarketplaceState, a ProductAction) MarketplaceState {
	switch a := a.(type) {
	case SetProducts:
		s.Products = append([]model.Product{}, a.Products...)
	case AddProduct:
		s.Products = append(append([]model.Product{}, s.Products...), a.Product)
	case UpdateProduct:
		i := productIndex(s.Products, a.Product.ID)
		if i < 0 {
			return s
		}
		next := append([]model.Product{}, s.Products...)
		next[i] = a.Product
		s.Products = next
	case DeleteProduct:
		i := productIndex(s.Products, a.ID)
		if i < 0 {
			return s
		}
		next := append([]model.Product{}, s.Products[:i]...)
		s.Products = append(next, s.Products[i+1:]...)
	}
	return s
}

func productIndex(products []model.Product, id string) int {
	for i := range products {
		if products[i].ID == id {
			return i
		}
	}
	return -1
}
