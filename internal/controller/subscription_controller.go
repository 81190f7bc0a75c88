package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"marketplace_backend/internal/model"
	"marketplace_backend/pkg/subscription"
	"marketplace_backend/pkg/utils/jwt"
)

type ActivateInput struct {
	PlanType string `json:"plan_type" validate:"required"`
}

func ListPlans(c *fiber.Ctx) error {
	return c.JSON(subscription.GetTariffPlans())
}

func ActivateSubscription(c *fiber.Ctx) error {
	input := new(ActivateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	claims := c.Locals("seller").(*jwt.Claims)

	sub, err := subs.Activate(claims.SellerID, model.PlanType(input.PlanType))
	if err != nil {
		if errors.Is(err, subscription.ErrUnknownPlan) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unknown plan type",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not activate subscription",
		})
	}

	return c.JSON(fiber.Map{
		"message":      "Subscription activated successfully",
		"subscription": sub,
	})
}

func GetMySubscription(c *fiber.Ctx) error {
	claims := c.Locals("seller").(*jwt.Claims)

	seller, err := subs.GetSeller(claims.SellerID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Seller not found",
		})
	}
	if seller.Subscription == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No subscription found",
		})
	}

	return c.JSON(fiber.Map{
		"subscription": seller.Subscription,
		"is_active":    subs.IsSubscriptionActive(seller.Subscription),
	})
}
