// Package subscription owns the seller subscription registry: plan
// activation, the activity predicate, and the lazy expiry sweep. No other
// component touches the persisted seller records directly.
package subscription

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"marketplace_backend/internal/model"
	"marketplace_backend/pkg/kvstore"
)

// Keys the registry is persisted under.
const (
	KeySellers     = "sellers"
	KeySellerToken = "seller-token"
	KeySellerCards = "sellerCards"
)

var (
	ErrUnknownPlan    = errors.New("subscription: unknown plan type")
	ErrSellerNotFound = errors.New("subscription: seller not found")
	ErrEmailExists    = errors.New("subscription: email already registered")
)

// Registry maps sellerID to that seller's subscription record (nil when
// the seller never activated a plan).
type Registry map[string]*model.SubscriptionData

// IsActiveAt is the ground-truth activity predicate: the record must exist,
// carry the IsActive hint, and its end date must still be ahead of now.
// The stored hint alone is never trusted because expiry is materialized
// lazily.
func IsActiveAt(sub *model.SubscriptionData, now time.Time) bool {
	return sub != nil && sub.IsActive && sub.EndDate.After(now)
}

type Service struct {
	store kvstore.Store
	now   func() time.Time
}

func NewService(store kvstore.Store) *Service {
	return &Service{store: store, now: time.Now}
}

// IsSubscriptionActive evaluates the activity predicate against the
// current time.
func (s *Service) IsSubscriptionActive(sub *model.SubscriptionData) bool {
	return IsActiveAt(sub, s.now())
}

// Activate starts (or restarts) a seller's subscription and is the only
// producer of SubscriptionData. Expiry uses calendar arithmetic: monthly
// plans end one calendar month later and yearly plans one calendar year
// later (so a yearly plan spanning a leap February runs 366 days); trials
// run exactly 48 hours. An unknown plan type is rejected and nothing is
// persisted. The seller record is upserted by id, and the seller-token
// mirror and sellerCards projection are kept in step.
func (s *Service) Activate(sellerID string, plan model.PlanType) (model.SubscriptionData, error) {
	now := s.now()

	var end time.Time
	switch plan {
	case model.PlanTrial:
		end = now.Add(48 * time.Hour)
	case model.PlanMonthly:
		end = now.AddDate(0, 1, 0)
	case model.PlanYearly:
		end = now.AddDate(1, 0, 0)
	default:
		return model.SubscriptionData{}, fmt.Errorf("%w: %q", ErrUnknownPlan, plan)
	}

	sub := model.SubscriptionData{
		IsActive:  true,
		PlanType:  plan,
		StartDate: now,
		EndDate:   end,
		AutoRenew: plan != model.PlanTrial,
	}

	sellers, err := s.loadSellers()
	if err != nil {
		return model.SubscriptionData{}, err
	}

	found := false
	for i := range sellers {
		if sellers[i].ID == sellerID {
			sellers[i].Subscription = &sub
			found = true
			break
		}
	}
	if !found {
		sellers = append(sellers, model.Seller{
			ID:           sellerID,
			Status:       model.SellerStatusActive,
			Subscription: &sub,
		})
	}
	if err := s.store.Set(KeySellers, sellers); err != nil {
		return model.SubscriptionData{}, err
	}

	if err := s.mirrorSellerToken(sellerID, &sub); err != nil {
		return model.SubscriptionData{}, err
	}
	if err := s.upsertSellerCard(sellerID, sellers, end); err != nil {
		return model.SubscriptionData{}, err
	}

	return sub, nil
}

// RefreshAll sweeps the registry, flipping the IsActive hint off wherever
// the end date has passed, and returns the refreshed registry. Expiry is
// detected on read rather than by a timer, so this must run before any
// visibility decision that needs freshness down to "now".
func (s *Service) RefreshAll() (Registry, error) {
	sellers, err := s.loadSellers()
	if err != nil {
		return nil, err
	}

	now := s.now()
	changed := false
	registry := make(Registry, len(sellers))
	for i := range sellers {
		sub := sellers[i].Subscription
		if sub != nil && sub.IsActive && !sub.EndDate.After(now) {
			sub.IsActive = false
			changed = true
		}
		registry[sellers[i].ID] = sub
	}

	if changed {
		if err := s.store.Set(KeySellers, sellers); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// RegisterSeller adds a seller to the registry with no subscription.
func (s *Service) RegisterSeller(name, email, passwordHash string) (model.Seller, error) {
	sellers, err := s.loadSellers()
	if err != nil {
		return model.Seller{}, err
	}
	for i := range sellers {
		if sellers[i].Email == email {
			return model.Seller{}, ErrEmailExists
		}
	}

	seller := model.Seller{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Status:       model.SellerStatusActive,
	}
	sellers = append(sellers, seller)
	if err := s.store.Set(KeySellers, sellers); err != nil {
		return model.Seller{}, err
	}
	return seller, nil
}

func (s *Service) GetSeller(sellerID string) (model.Seller, error) {
	sellers, err := s.loadSellers()
	if err != nil {
		return model.Seller{}, err
	}
	for i := range sellers {
		if sellers[i].ID == sellerID {
			return sellers[i], nil
		}
	}
	return model.Seller{}, ErrSellerNotFound
}

func (s *Service) FindSellerByEmail(email string) (model.Seller, error) {
	sellers, err := s.loadSellers()
	if err != nil {
		return model.Seller{}, err
	}
	for i := range sellers {
		if sellers[i].Email == email {
			return sellers[i], nil
		}
	}
	return model.Seller{}, ErrSellerNotFound
}

// SetCurrentSeller writes the seller-token mirror for the signed-in seller.
func (s *Service) SetCurrentSeller(seller model.Seller) error {
	return s.store.Set(KeySellerToken, seller)
}

// ExpiringWithin returns sellers whose subscription is still active and
// ends on the calendar day exactly days ahead of now. Used by the expiry
// warning sweep.
func (s *Service) ExpiringWithin(days int) ([]model.Seller, error) {
	sellers, err := s.loadSellers()
	if err != nil {
		return nil, err
	}

	now := s.now()
	target := now.AddDate(0, 0, days)
	ty, tm, td := target.Date()

	var expiring []model.Seller
	for i := range sellers {
		sub := sellers[i].Subscription
		if !IsActiveAt(sub, now) {
			continue
		}
		y, m, d := sub.EndDate.Date()
		if y == ty && m == tm && d == td {
			expiring = append(expiring, sellers[i])
		}
	}
	return expiring, nil
}

func (s *Service) loadSellers() ([]model.Seller, error) {
	var sellers []model.Seller
	if err := s.store.Get(KeySellers, &sellers); err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return []model.Seller{}, nil
		}
		return nil, err
	}
	return sellers, nil
}

func (s *Service) mirrorSellerToken(sellerID string, sub *model.SubscriptionData) error {
	var current model.Seller
	if err := s.store.Get(KeySellerToken, &current); err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil
		}
		return err
	}
	if current.ID != sellerID {
		return nil
	}
	current.Subscription = sub
	return s.store.Set(KeySellerToken, current)
}

func (s *Service) upsertSellerCard(sellerID string, sellers []model.Seller, end time.Time) error {
	name := ""
	for i := range sellers {
		if sellers[i].ID == sellerID {
			name = sellers[i].Name
			break
		}
	}

	var cards []model.SellerCard
	if err := s.store.Get(KeySellerCards, &cards); err != nil && !errors.Is(err, kvstore.ErrKeyNotFound) {
		return err
	}

	card := model.SellerCard{
		SellerID:            sellerID,
		Name:                name,
		SubscriptionEndDate: end.Format(time.RFC3339),
	}
	for i := range cards {
		if cards[i].SellerID == sellerID {
			cards[i] = card
			return s.store.Set(KeySellerCards, cards)
		}
	}
	return s.store.Set(KeySellerCards, append(cards, card))
}
