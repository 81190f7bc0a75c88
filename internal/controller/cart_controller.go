package controller

import (
	"github.com/gofiber/fiber/v2"

	"marketplace_backend/internal/model"
	"marketplace_backend/internal/state"
)

type AddToCartInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemInput struct {
	Quantity int `json:"quantity"`
}

func GetCart(c *fiber.Ctx) error {
	snapshot := store.State()

	return c.JSON(fiber.Map{
		"items":      snapshot.Cart,
		"item_count": snapshot.CartItemCount(),
		"total":      snapshot.CartTotal(),
	})
}

func AddToCart(c *fiber.Ctx) error {
	input := new(AddToCartInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Quantity must be at least 1",
		})
	}

	snapshot := store.State()
	var product *model.Product
	for i := range snapshot.Products {
		if snapshot.Products[i].ID == input.ProductID {
			product = &snapshot.Products[i]
			break
		}
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	store.Dispatch(state.NewAddToCart(*product, quantity))

	next := store.State()
	return c.JSON(fiber.Map{
		"items":      next.Cart,
		"item_count": next.CartItemCount(),
		"total":      next.CartTotal(),
	})
}

func UpdateCartItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	input := new(UpdateCartItemInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	snapshot := store.State()
	found := false
	for _, item := range snapshot.Cart {
		if item.ID == itemID {
			found = true
			break
		}
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Cart item not found",
		})
	}

	// Quantity <= 0 removes the line.
	store.Dispatch(state.UpdateCartQuantity{ItemID: itemID, Quantity: input.Quantity})

	next := store.State()
	return c.JSON(fiber.Map{
		"items":      next.Cart,
		"item_count": next.CartItemCount(),
		"total":      next.CartTotal(),
	})
}

func RemoveCartItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	store.Dispatch(state.RemoveFromCart{ItemID: itemID})

	next := store.State()
	return c.JSON(fiber.Map{
		"items":      next.Cart,
		"item_count": next.CartItemCount(),
		"total":      next.CartTotal(),
	})
}

func ClearCart(c *fiber.Ctx) error {
	store.Dispatch(state.ClearCart{})

	return c.JSON(fiber.Map{
		"message": "Cart cleared",
	})
}
