package state

import "marketplace_backend/internal/model"

func reduceOrder(s MarketplaceState, a OrderAction) MarketplaceState {
	switch a := a.(type) {
	case SetOrders:
		s.Orders = append([]model.Order{}, a.Orders...)
	case AddOrder:
		s.Orders = append(append([]model.Order{}, s.Orders...), a.Order)
	case UpdateOrder:
		for i := range s.Orders {
			if s.Orders[i].ID == a.Order.ID {
				next := append([]model.Order{}, s.Orders...)
				next[i] = a.Order
				s.Orders = next
				return s
			}
		}
	}
	return s
}
