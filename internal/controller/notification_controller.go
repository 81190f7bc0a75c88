package controller

import (
	"github.com/gofiber/fiber/v2"

	"marketplace_backend/internal/state"
)

func ListNotifications(c *fiber.Ctx) error {
	snapshot := store.State()

	unread := 0
	for _, n := range snapshot.Notifications {
		if !n.IsRead {
			unread++
		}
	}

	return c.JSON(fiber.Map{
		"notifications": snapshot.Notifications,
		"unread_count":  unread,
	})
}

func MarkNotificationAsRead(c *fiber.Ctx) error {
	notificationID := c.Params("id")

	snapshot := store.State()
	found := false
	for _, n := range snapshot.Notifications {
		if n.ID == notificationID {
			found = true
			break
		}
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Notification not found",
		})
	}

	store.Dispatch(state.MarkNotificationRead{ID: notificationID})

	return c.JSON(fiber.Map{
		"message": "Notification marked as read",
	})
}

func ClearNotifications(c *fiber.Ctx) error {
	store.Dispatch(state.ClearNotifications{})

	return c.JSON(fiber.Map{
		"message": "Notifications cleared",
	})
}
