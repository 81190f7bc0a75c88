package state

import (
	"time"

	"github.com/google/uuid"

	"marketplace_backend/internal/model"
)

// Action is the closed catalog of state transitions. Every concrete action
// belongs to exactly one family (product, cart, order, notification, ui)
// and is routed to that family's sub-reducer; the pipeline returns the
// input state unchanged for anything else.
type Action interface{ isAction() }

type ProductAction interface {
	Action
	isProductAction()
}

type CartAction interface {
	Action
	isCartAction()
}

type OrderAction interface {
	Action
	isOrderAction()
}

type NotificationAction interface {
	Action
	isNotificationAction()
}

type UIAction interface {
	Action
	isUIAction()
}

type productAction struct{}

func (productAction) isAction()        {}
func (productAction) isProductAction() {}

type cartAction struct{}

func (cartAction) isAction()     {}
func (cartAction) isCartAction() {}

type orderAction struct{}

func (orderAction) isAction()      {}
func (orderAction) isOrderAction() {}

type notificationAction struct{}

func (notificationAction) isAction()             {}
func (notificationAction) isNotificationAction() {}

type uiAction struct{}

func (uiAction) isAction()   {}
func (uiAction) isUIAction() {}

// Product actions.

type SetProducts struct {
	productAction
	Products []model.Product
}

type AddProduct struct {
	productAction
	Product model.Product
}

type UpdateProduct struct {
	productAction
	Product model.Product
}

type DeleteProduct struct {
	productAction
	ID string
}

// Cart actions.

// AddToCart merges into an existing line for the same product, or inserts
// a new line carrying LineID and a snapshot of the product at add-time.
// Use NewAddToCart so the line gets its identity outside the reducer.
type AddToCart struct {
	cartAction
	LineID   string
	Product  model.Product
	Quantity int
}

// NewAddToCart is the add-to-cart action creator. The line id is minted
// here (and only used when the product is not already in the cart) so the
// reducer stays pure.
func NewAddToCart(p model.Product, quantity int) AddToCart {
	return AddToCart{LineID: uuid.NewString(), Product: p, Quantity: quantity}
}

type RemoveFromCart struct {
	cartAction
	ItemID string
}

// UpdateCartQuantity sets the absolute quantity of a cart line. A quantity
// of zero or less removes the line.
type UpdateCartQuantity struct {
	cartAction
	ItemID   string
	Quantity int
}

type ClearCart struct{ cartAction }

// Order actions.

type SetOrders struct {
	orderAction
	Orders []model.Order
}

type AddOrder struct {
	orderAction
	Order model.Order
}

type UpdateOrder struct {
	orderAction
	Order model.Order
}

// Notification actions.

type AddNotification struct {
	notificationAction
	Notification model.Notification
}

// NewAddNotification is the notification action creator: it stamps the
// notification with its id and creation time.
func NewAddNotification(title, message string) AddNotification {
	return AddNotification{Notification: model.Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}}
}

type MarkNotificationRead struct {
	notificationAction
	ID string
}

type ClearNotifications struct{ notificationAction }

// UI actions.

type SetLoading struct {
	uiAction
	IsLoading bool
}

type SetConnected struct {
	uiAction
	IsConnected bool
}

type SetSearchQuery struct {
	uiAction
	Query string
}

type SetCategory struct {
	uiAction
	Category model.Category
}

type SetPriceRange struct {
	uiAction
	Range PriceRange
}

type SetSort struct {
	uiAction
	SortBy    SortField
	SortOrder SortOrder
}
