package cron

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"marketplace_backend/internal/state"
	"marketplace_backend/pkg/subscription"
)

// InitSubscriptionExpiryCron schedules the daily sweep: stale IsActive
// hints are refreshed and sellers close to expiry get a warning
// notification. Visibility never depends on this having run; the engine
// refreshes on every evaluation anyway.
func InitSubscriptionExpiryCron(subs *subscription.Service, store *state.Store) {
	c := cron.New()

	_, err := c.AddFunc("0 9 * * *", func() {
		sweepExpiringSubscriptions(subs, store)
	})

	if err != nil {
		log.Printf("Could not initialize subscription expiry cron: %v", err)
		return
	}

	c.Start()
}

func sweepExpiringSubscriptions(subs *subscription.Service, store *state.Store) {
	log.Println("Checking for expiring subscriptions...")

	if _, err := subs.RefreshAll(); err != nil {
		log.Printf("Error refreshing subscription registry: %v", err)
	}

	warningDays := []int{7, 3}

	for _, days := range warningDays {
		sellers, err := subs.ExpiringWithin(days)
		if err != nil {
			log.Printf("Error fetching expiring subscriptions: %v", err)
			continue
		}

		log.Printf("Found %d subscriptions expiring in %d days", len(sellers), days)

		for _, seller := range sellers {
			store.Dispatch(state.NewAddNotification(
				"Subscription expiring",
				fmt.Sprintf("Subscription for %s expires in %d days. Renew to keep your products visible.", seller.Name, days),
			))
		}
	}
}
