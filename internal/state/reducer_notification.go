package state

import "marketplace_backend/internal/model"

func reduceNotification(s MarketplaceState, a NotificationAction) MarketplaceState {
	switch a := a.(type) {
	case AddNotification:
		// Newest first.
		s.Notifications = append([]model.Notification{a.Notification}, s.Notifications...)
	case MarkNotificationRead:
		for i := range s.Notifications {
			if s.Notifications[i].ID != a.ID {
				continue
			}
			if s.Notifications[i].IsRead {
				return s
			}
			next := append([]model.Notification{}, s.Notifications...)
			next[i].IsRead = true
			s.Notifications = next
			return s
		}
	case ClearNotifications:
		s.Notifications = []model.Notification{}
	}
	return s
}
