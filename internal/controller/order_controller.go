package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"marketplace_backend/internal/model"
	"marketplace_backend/internal/state"
)

type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}

func ListOrders(c *fiber.Ctx) error {
	snapshot := store.State()

	return c.JSON(fiber.Map{
		"orders": snapshot.Orders,
		"count":  len(snapshot.Orders),
	})
}

// Checkout turns the current cart into an order. The payment collaborator
// is called exactly once; if it rejects the charge, the error is reported
// and the cart is left untouched.
func Checkout(c *fiber.Ctx) error {
	snapshot := store.State()
	if len(snapshot.Cart) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cart is empty",
		})
	}

	total := snapshot.CartTotal()

	store.Dispatch(state.SetLoading{IsLoading: true})
	result, err := payments.Charge(total)
	store.Dispatch(state.SetLoading{IsLoading: false})
	if err != nil {
		log.Printf("Payment failed for cart total %.2f: %v", total, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Payment failed",
		})
	}

	now := time.Now()
	order := model.Order{
		ID:        uuid.NewString(),
		Items:     snapshot.Cart,
		Total:     total,
		Status:    model.OrderStatusCreated,
		PaymentID: result.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	store.Dispatch(state.AddOrder{Order: order})
	store.Dispatch(state.ClearCart{})
	store.Dispatch(state.NewAddNotification(
		"Order placed",
		fmt.Sprintf("Order %s for %.2f was placed successfully.", order.ID, total),
	))

	return c.Status(fiber.StatusCreated).JSON(order)
}

func UpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")

	input := new(UpdateOrderStatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	snapshot := store.State()
	var existing *model.Order
	for i := range snapshot.Orders {
		if snapshot.Orders[i].ID == orderID {
			existing = &snapshot.Orders[i]
			break
		}
	}
	if existing == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Order not found",
		})
	}

	next := model.OrderStatus(input.Status)
	if !existing.Status.CanTransition(next) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Cannot move order from %s to %s", existing.Status, next),
		})
	}

	updated := *existing
	updated.Status = next
	updated.UpdatedAt = time.Now()

	store.Dispatch(state.UpdateOrder{Order: updated})
	store.Dispatch(state.NewAddNotification(
		"Order updated",
		fmt.Sprintf("Order %s is now %s.", updated.ID, updated.Status),
	))

	return c.JSON(updated)
}
