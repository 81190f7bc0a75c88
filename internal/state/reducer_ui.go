package state

func reduceUI(s MarketplaceState, a UIAction) MarketplaceState {
	switch a := a.(type) {
	case SetLoading:
		s.IsLoading = a.IsLoading
	case SetConnected:
		s.IsConnected = a.IsConnected
	case SetSearchQuery:
		s.SearchQuery = a.Query
	case SetCategory:
		s.SelectedCategory = a.Category
	case SetPriceRange:
		s.PriceRange = a.Range
	case SetSort:
		s.SortBy = a.SortBy
		s.SortOrder = a.SortOrder
	}
	return s
}
