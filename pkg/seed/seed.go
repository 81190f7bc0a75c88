package seed

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"

	"marketplace_backend/internal/model"
	"marketplace_backend/pkg/kvstore"
	"marketplace_backend/pkg/subscription"
)

const KeyProducts = "products"

// SeedMarketplace writes first-boot sellers and products when the store is
// empty. The seeded sellers cover the interesting subscription states: an
// active monthly plan, a lapsed plan whose IsActive hint is still stale
// (the refresh sweep corrects it on first read), and no plan at all.
func SeedMarketplace(store kvstore.Store) {
	seedSellers(store)
	seedProducts(store)
}

func seedSellers(store kvstore.Store) {
	var existing []model.Seller
	if err := store.Get(subscription.KeySellers, &existing); err == nil {
		return
	} else if !errors.Is(err, kvstore.ErrKeyNotFound) {
		log.Printf("Error reading sellers for seeding: %v", err)
		return
	}

	now := time.Now()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)

	sellers := []model.Seller{
		{
			ID:           "seller-aurora",
			Name:         "Aurora Goods",
			Email:        "aurora@example.com",
			PasswordHash: string(hash),
			Status:       model.SellerStatusActive,
			Subscription: &model.SubscriptionData{
				IsActive:  true,
				PlanType:  model.PlanMonthly,
				StartDate: now,
				EndDate:   now.AddDate(0, 1, 0),
				AutoRenew: true,
			},
		},
		{
			ID:           "seller-borealis",
			Name:         "Borealis Trade",
			Email:        "borealis@example.com",
			PasswordHash: string(hash),
			Status:       model.SellerStatusActive,
			Subscription: &model.SubscriptionData{
				IsActive:  true, // stale hint, expired yesterday
				PlanType:  model.PlanTrial,
				StartDate: now.AddDate(0, 0, -3),
				EndDate:   now.AddDate(0, 0, -1),
				AutoRenew: false,
			},
		},
		{
			ID:           "seller-cinder",
			Name:         "Cinder Workshop",
			Email:        "cinder@example.com",
			PasswordHash: string(hash),
			Status:       model.SellerStatusActive,
		},
	}

	if err := store.Set(subscription.KeySellers, sellers); err != nil {
		log.Printf("Error seeding sellers: %v", err)
		return
	}
	log.Println("Sellers seeded successfully!")
}

func seedProducts(store kvstore.Store) {
	var existing []model.Product
	if err := store.Get(KeyProducts, &existing); err == nil {
		return
	} else if !errors.Is(err, kvstore.ErrKeyNotFound) {
		log.Printf("Error reading products for seeding: %v", err)
		return
	}

	now := time.Now()

	type entry struct {
		sellerID string
		name     string
		desc     string
		price    float64
		stock    int
		category model.Category
	}
	entries := []entry{
		{"seller-aurora", "Nimbus Headphones", "Closed-back wireless headphones", 129.90, 42, model.CategoryElectronics},
		{"seller-aurora", "Field Notebook", "Weatherproof pocket notebook", 9.50, 300, model.CategoryBooks},
		{"seller-borealis", "Merino Scarf", "Hand-woven merino wool scarf", 39.00, 18, model.CategoryClothing},
		{"seller-borealis", "Ceramic Pour-Over Set", "Two-piece pour-over brewer", 54.00, 12, model.CategoryHome},
		{"seller-cinder", "Cast Iron Trivet", "Hand-forged trivet", 24.00, 25, model.CategoryHome},
	}

	products := make([]model.Product, 0, len(entries))
	for i, e := range entries {
		products = append(products, model.Product{
			ID:          fmt.Sprintf("%s-p%d", e.sellerID, i+1),
			SellerID:    e.sellerID,
			Name:        e.name,
			Slug:        slug.Make(e.name),
			Description: e.desc,
			Price:       e.price,
			Stock:       e.stock,
			Category:    e.category,
			CreatedAt:   now,
		})
	}

	if err := store.Set(KeyProducts, products); err != nil {
		log.Printf("Error seeding products: %v", err)
		return
	}
	log.Println("Products seeded successfully!")
}
