package model

// Seller Status
type SellerStatus string

const (
	SellerStatusActive  SellerStatus = "active"
	SellerStatusBlocked SellerStatus = "blocked"
)

type Seller struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	PasswordHash string            `json:"-"`
	Status       SellerStatus      `json:"status"`
	Subscription *SubscriptionData `json:"subscription"`
}

// SellerCard is the compact projection persisted under the sellerCards
// key for storefront listings.
type SellerCard struct {
	SellerID            string `json:"sellerId"`
	Name                string `json:"name"`
	SubscriptionEndDate string `json:"subscriptionEndDate"`
}

func (s *Seller) GetPublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":     s.ID,
		"name":   s.Name,
		"email":  s.Email,
		"status": s.Status,
	}
}
