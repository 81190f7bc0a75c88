package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace_backend/internal/model"
)

// alienAction is outside every action family.
type alienAction struct{}

func (alienAction) isAction() {}

func productFixture(id, sellerID string, price float64) model.Product {
	return model.Product{
		ID:        id,
		SellerID:  sellerID,
		Name:      "Product " + id,
		Price:     price,
		Stock:     10,
		Category:  model.CategoryHome,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestReduceUnknownActionReturnsInputUnchanged(t *testing.T) {
	s := Initial()
	s = Reduce(s, AddProduct{Product: productFixture("p1", "s1", 10)})

	next := Reduce(s, alienAction{})

	assert.Equal(t, s, next)
}

func TestReduceProductSetAddUpdateDelete(t *testing.T) {
	s := Initial()

	s = Reduce(s, SetProducts{Products: []model.Product{
		productFixture("p1", "s1", 10),
		productFixture("p2", "s1", 20),
	}})
	require.Len(t, s.Products, 2)

	s = Reduce(s, AddProduct{Product: productFixture("p3", "s2", 30)})
	require.Len(t, s.Products, 3)
	assert.Equal(t, "p3", s.Products[2].ID)

	updated := productFixture("p2", "s1", 25)
	s = Reduce(s, UpdateProduct{Product: updated})
	assert.Equal(t, 25.0, s.Products[1].Price)

	s = Reduce(s, DeleteProduct{ID: "p1"})
	require.Len(t, s.Products, 2)
	assert.Equal(t, "p2", s.Products[0].ID)
}

func TestReduceProductNoOpOnAbsentID(t *testing.T) {
	s := Initial()
	s = Reduce(s, SetProducts{Products: []model.Product{productFixture("p1", "s1", 10)}})

	afterUpdate := Reduce(s, UpdateProduct{Product: productFixture("ghost", "s1", 99)})
	assert.Equal(t, s, afterUpdate)

	afterDelete := Reduce(s, DeleteProduct{ID: "ghost"})
	assert.Equal(t, s, afterDelete)
}

func TestReduceCartMergesSameProduct(t *testing.T) {
	p := productFixture("p1", "s1", 10)
	s := Initial()

	s = Reduce(s, NewAddToCart(p, 2))
	s = Reduce(s, NewAddToCart(p, 3))

	require.Len(t, s.Cart, 1)
	assert.Equal(t, 5, s.Cart[0].Quantity)
	assert.Equal(t, "p1", s.Cart[0].ProductID)
}

func TestReduceCartSnapshotsUnitPrice(t *testing.T) {
	p := productFixture("p1", "s1", 10)
	s := Initial()
	s = Reduce(s, SetProducts{Products: []model.Product{p}})
	s = Reduce(s, NewAddToCart(p, 1))

	// A later product update must not change the cart line's price.
	p.Price = 99
	s = Reduce(s, UpdateProduct{Product: p})

	assert.Equal(t, 10.0, s.Cart[0].Price)
}

func TestReduceCartRemoveAndNoOp(t *testing.T) {
	p := productFixture("p1", "s1", 10)
	s := Initial()
	s = Reduce(s, NewAddToCart(p, 1))
	lineID := s.Cart[0].ID

	afterGhost := Reduce(s, RemoveFromCart{ItemID: "ghost"})
	assert.Equal(t, s, afterGhost)

	s = Reduce(s, RemoveFromCart{ItemID: lineID})
	assert.Empty(t, s.Cart)
}

func TestReduceCartUpdateQuantity(t *testing.T) {
	p := productFixture("p1", "s1", 10)
	s := Initial()
	s = Reduce(s, NewAddToCart(p, 2))
	lineID := s.Cart[0].ID

	s = Reduce(s, UpdateCartQuantity{ItemID: lineID, Quantity: 7})
	assert.Equal(t, 7, s.Cart[0].Quantity)

	// Zero or negative removes the line.
	s = Reduce(s, UpdateCartQuantity{ItemID: lineID, Quantity: 0})
	assert.Empty(t, s.Cart)

	afterGhost := Reduce(s, UpdateCartQuantity{ItemID: "ghost", Quantity: 4})
	assert.Equal(t, s, afterGhost)
}

func TestReduceCartIgnoresNonPositiveAdd(t *testing.T) {
	p := productFixture("p1", "s1", 10)
	s := Initial()

	next := Reduce(s, NewAddToCart(p, 0))
	assert.Equal(t, s, next)
}

func TestReduceCartClear(t *testing.T) {
	s := Initial()
	s = Reduce(s, NewAddToCart(productFixture("p1", "s1", 10), 1))
	s = Reduce(s, NewAddToCart(productFixture("p2", "s1", 20), 1))

	s = Reduce(s, ClearCart{})
	assert.Empty(t, s.Cart)
}

func TestReduceOrderLifecycle(t *testing.T) {
	s := Initial()
	order := model.Order{ID: "o1", Total: 30, Status: model.OrderStatusCreated}

	s = Reduce(s, AddOrder{Order: order})
	require.Len(t, s.Orders, 1)

	order.Status = model.OrderStatusProcessing
	s = Reduce(s, UpdateOrder{Order: order})
	assert.Equal(t, model.OrderStatusProcessing, s.Orders[0].Status)

	afterGhost := Reduce(s, UpdateOrder{Order: model.Order{ID: "ghost"}})
	assert.Equal(t, s, afterGhost)

	s = Reduce(s, SetOrders{Orders: []model.Order{}})
	assert.Empty(t, s.Orders)
}

func TestReduceNotificationOrdering(t *testing.T) {
	s := Initial()

	n1 := NewAddNotification("first", "m1")
	n2 := NewAddNotification("second", "m2")
	s = Reduce(s, n1)
	s = Reduce(s, n2)

	require.Len(t, s.Notifications, 2)
	assert.Equal(t, "second", s.Notifications[0].Title)
	assert.Equal(t, "first", s.Notifications[1].Title)
}

func TestReduceNotificationMarkReadIdempotent(t *testing.T) {
	s := Initial()
	n := NewAddNotification("hello", "m")
	s = Reduce(s, n)
	id := s.Notifications[0].ID

	s = Reduce(s, MarkNotificationRead{ID: id})
	assert.True(t, s.Notifications[0].IsRead)

	again := Reduce(s, MarkNotificationRead{ID: id})
	assert.Equal(t, s, again)

	afterGhost := Reduce(s, MarkNotificationRead{ID: "ghost"})
	assert.Equal(t, s, afterGhost)
}

func TestReduceNotificationClear(t *testing.T) {
	s := Initial()
	s = Reduce(s, NewAddNotification("a", "m"))

	s = Reduce(s, ClearNotifications{})
	assert.Empty(t, s.Notifications)
}

func TestReduceUIFields(t *testing.T) {
	s := Initial()

	s = Reduce(s, SetLoading{IsLoading: true})
	s = Reduce(s, SetConnected{IsConnected: true})
	s = Reduce(s, SetSearchQuery{Query: "lamp"})
	s = Reduce(s, SetCategory{Category: model.CategoryHome})
	s = Reduce(s, SetPriceRange{Range: PriceRange{Min: 5, Max: 50}})
	s = Reduce(s, SetSort{SortBy: SortByPrice, SortOrder: SortAsc})

	assert.True(t, s.IsLoading)
	assert.True(t, s.IsConnected)
	assert.Equal(t, "lamp", s.SearchQuery)
	assert.Equal(t, model.CategoryHome, s.SelectedCategory)
	assert.Equal(t, PriceRange{Min: 5, Max: 50}, s.PriceRange)
	assert.Equal(t, SortByPrice, s.SortBy)
	assert.Equal(t, SortAsc, s.SortOrder)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := Initial()
	s = Reduce(s, SetProducts{Products: []model.Product{productFixture("p1", "s1", 10)}})
	before := s

	_ = Reduce(s, AddProduct{Product: productFixture("p2", "s1", 20)})
	_ = Reduce(s, DeleteProduct{ID: "p1"})
	_ = Reduce(s, NewAddToCart(productFixture("p1", "s1", 10), 1))

	assert.Equal(t, before, s)
	require.Len(t, s.Products, 1)
}
