package state

import "marketplace_backend/internal/model"

func reduceCart(s MarketplaceState, a CartAction) MarketplaceState {
	switch a := a.(type) {
	case AddToCart:
		if a.Quantity < 1 {
			return s
		}
		for i := range s.Cart {
			if s.Cart[i].ProductID == a.Product.ID {
				// One line per product: merge into the existing line.
				next := append([]model.CartItem{}, s.Cart...)
				next[i].Quantity += a.Quantity
				s.Cart = next
				return s
			}
		}
		s.Cart = append(append([]model.CartItem{}, s.Cart...), model.CartItem{
			ID:        a.LineID,
			ProductID: a.Product.ID,
			Quantity:  a.Quantity,
			Price:     a.Product.Price,
			Product:   a.Product,
		})
	case RemoveFromCart:
		i := cartIndex(s.Cart, a.ItemID)
		if i < 0 {
			return s
		}
		s.Cart = removeCartLine(s.Cart, i)
	case UpdateCartQuantity:
		i := cartIndex(s.Cart, a.ItemID)
		if i < 0 {
			return s
		}
		if a.Quantity <= 0 {
			// Zero quantity means the line is gone.
			s.Cart = removeCartLine(s.Cart, i)
			return s
		}
		next := append([]model.CartItem{}, s.Cart...)
		next[i].Quantity = a.Quantity
		s.Cart = next
	case ClearCart:
		s.Cart = []model.CartItem{}
	}
	return s
}

func cartIndex(cart []model.CartItem, itemID string) int {
	for i := range cart {
		if cart[i].ID == itemID {
			return i
		}
	}
	return -1
}

func removeCartLine(cart []model.CartItem, i int) []model.CartItem {
	next := append([]model.CartItem{}, cart[:i]...)
	return append(next, cart[i+1:]...)
}
