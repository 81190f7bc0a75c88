package middleware

import (
	"github.com/gofiber/fiber/v2"

	"marketplace_backend/internal/state"
	"marketplace_backend/pkg/subscription"
	"marketplace_backend/pkg/utils/jwt"
)

// ActiveSubscriptionRequired gates product writes on an effectively active
// subscription. The check goes through the activity predicate, never the
// stored hint.
func ActiveSubscriptionRequired(subs *subscription.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := c.Locals("seller").(*jwt.Claims)

		seller, err := subs.GetSeller(claims.SellerID)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Seller not found",
			})
		}

		if !subs.IsSubscriptionActive(seller.Subscription) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "An active subscription is required to list products",
			})
		}

		return c.Next()
	}
}

// CheckProductOwnership rejects writes against products issued by another
// seller.
func CheckProductOwnership(st *state.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := c.Locals("seller").(*jwt.Claims)
		productID := c.Params("id")

		snapshot := st.State()
		for _, p := range snapshot.Products {
			if p.ID == productID {
				if p.SellerID != claims.SellerID {
					return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
						"error": "You don't have permission to access this product",
					})
				}
				return c.Next()
			}
		}

		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}
}
