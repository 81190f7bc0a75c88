package main

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"marketplace_backend/internal/controller"
	"marketplace_backend/internal/middleware"
	"marketplace_backend/internal/model"
	"marketplace_backend/internal/state"
	"marketplace_backend/pkg/config"
	"marketplace_backend/pkg/cron"
	"marketplace_backend/pkg/database"
	"marketplace_backend/pkg/imagegen"
	"marketplace_backend/pkg/kvstore"
	"marketplace_backend/pkg/payment"
	"marketplace_backend/pkg/seed"
	"marketplace_backend/pkg/subscription"
	"marketplace_backend/pkg/visibility"
)

func setupRoutes(app *fiber.App, st *state.Store, subs *subscription.Service) {
	api := app.Group("/api")

	// Auth Routes
	auth := api.Group("/auth")
	auth.Post("/register", controller.Register)
	auth.Post("/login", controller.Login)

	// Public catalog (visibility-filtered storefront)
	catalog := api.Group("/catalog")
	catalog.Get("/", controller.GetCatalog)
	catalog.Get("/stats", controller.GetCatalogStats)
	catalog.Get("/partition", controller.GetCatalogPartition)
	catalog.Put("/filters", controller.UpdateCatalogFilters)

	// Cart routes
	cart := api.Group("/cart")
	cart.Get("/", controller.GetCart)
	cart.Post("/items", controller.AddToCart)
	cart.Put("/items/:id", controller.UpdateCartItem)
	cart.Delete("/items/:id", controller.RemoveCartItem)
	cart.Delete("/", controller.ClearCart)

	// Order routes
	orders := api.Group("/orders")
	orders.Get("/", controller.ListOrders)
	orders.Post("/", controller.Checkout)
	orders.Put("/:id/status", controller.UpdateOrderStatus)

	// Notification routes
	notifications := api.Group("/notifications")
	notifications.Get("/", controller.ListNotifications)
	notifications.Put("/:id/read", controller.MarkNotificationAsRead)
	notifications.Delete("/", controller.ClearNotifications)

	// Subscription routes
	subscriptions := api.Group("/subscriptions")
	subscriptions.Get("/plans", controller.ListPlans)

	subProtected := subscriptions.Use(middleware.AuthMiddleware())
	subProtected.Post("/activate", controller.ActivateSubscription)
	subProtected.Get("/my", controller.GetMySubscription)

	// Protected seller routes
	protected := api.Group("/", middleware.AuthMiddleware())
	protected.Get("/me", controller.GetMe)

	products := protected.Group("/products")
	products.Get("/my", controller.ListMyProducts)
	products.Post("/", middleware.ActiveSubscriptionRequired(subs), controller.CreateProduct)
	products.Put("/:id", middleware.CheckProductOwnership(st), controller.UpdateProduct)
	products.Delete("/:id", middleware.CheckProductOwnership(st), controller.DeleteProduct)

	api.Get("/health", func(c *fiber.Ctx) error {
		snapshot := st.State()
		return c.JSON(fiber.Map{
			"connected": snapshot.IsConnected,
			"loading":   snapshot.IsLoading,
		})
	})
}

func main() {
	cfg := config.Load()

	var kv kvstore.Store
	switch cfg.Database.Driver {
	case "postgres":
		if cfg.Database.URL == "" {
			log.Fatal("DATABASE_URL is not set")
		}
		database.InitDB(cfg.Database.URL)
		store, err := kvstore.NewGorm(database.GetDB())
		if err != nil {
			log.Fatal("Could not initialize document store:", err)
		}
		kv = store
	default:
		kv = kvstore.NewMemory()
	}

	seed.SeedMarketplace(kv)

	st := state.NewStore()

	var products []model.Product
	if err := kv.Get(seed.KeyProducts, &products); err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			log.Printf("Could not load seeded products: %v", err)
		}
	} else {
		st.Dispatch(state.SetProducts{Products: products})
	}
	st.Dispatch(state.SetConnected{IsConnected: true})

	subs := subscription.NewService(kv)
	engine := visibility.NewEngine(subs)

	controller.Init(st, subs, engine, payment.NewSimulator(), imagegen.NewGenerator())
	cron.InitSubscriptionExpiryCron(subs, st)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())

	setupRoutes(app, st, subs)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
