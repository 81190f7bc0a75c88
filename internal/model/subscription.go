package model

import "time"

// Subscription Plans
type PlanType string

const (
	PlanTrial   PlanType = "trial"
	PlanMonthly PlanType = "monthly"
	PlanYearly  PlanType = "yearly"
)

// SubscriptionData is a seller's subscription record. IsActive is a
// persisted hint for the UI, not ground truth: it can go stale between
// expiry sweeps, so every real activity decision must corroborate it
// against EndDate (see subscription.IsActiveAt).
type SubscriptionData struct {
	IsActive  bool      `json:"isActive"`
	PlanType  PlanType  `json:"planType"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	AutoRenew bool      `json:"autoRenew"`
}
