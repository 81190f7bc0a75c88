package subscription

import "marketplace_backend/internal/model"

// PlanDescriptor describes a tariff plan as shown to sellers. Duration is
// informational; the authoritative expiry math lives in Activate.
type PlanDescriptor struct {
	Type        model.PlanType `json:"type"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Duration    string         `json:"duration"`
	AutoRenew   bool           `json:"auto_renew"`
}

var tariffPlans = []PlanDescriptor{
	{
		Type:        model.PlanTrial,
		Name:        "Trial",
		Description: "Try the marketplace for two days",
		Price:       0,
		Duration:    "2 days",
		AutoRenew:   false,
	},
	{
		Type:        model.PlanMonthly,
		Name:        "Monthly",
		Description: "Full access, renews every month",
		Price:       19.99,
		Duration:    "1 month",
		AutoRenew:   true,
	},
	{
		Type:        model.PlanYearly,
		Name:        "Yearly",
		Description: "Full access, renews every year",
		Price:       199.99,
		Duration:    "1 year",
		AutoRenew:   true,
	},
}

// GetTariffPlans returns the available plans.
func GetTariffPlans() []PlanDescriptor {
	plans := make([]PlanDescriptor, len(tariffPlans))
	copy(plans, tariffPlans)
	return plans
}
