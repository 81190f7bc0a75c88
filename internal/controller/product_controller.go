package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"marketplace_backend/internal/model"
	"marketplace_backend/internal/state"
	"marketplace_backend/pkg/utils/jwt"
)

type ProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
}

func ListMyProducts(c *fiber.Ctx) error {
	claims := c.Locals("seller").(*jwt.Claims)

	snapshot := store.State()
	mine := []model.Product{}
	for _, p := range snapshot.Products {
		if p.SellerID == claims.SellerID {
			mine = append(mine, p)
		}
	}

	return c.JSON(fiber.Map{
		"products": mine,
		"count":    len(mine),
	})
}

func CreateProduct(c *fiber.Ctx) error {
	input := new(ProductInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Name == "" || input.Price <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and a positive price are required",
		})
	}

	claims := c.Locals("seller").(*jwt.Claims)

	imageURL := input.ImageURL
	if imageURL == "" {
		generated, err := images.Generate(input.Name)
		if err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "Could not generate product image",
			})
		}
		imageURL = generated
	}

	category := model.Category(input.Category)
	if category == "" {
		category = model.CategoryOther
	}

	product := model.Product{
		ID:          uuid.NewString(),
		SellerID:    claims.SellerID,
		Name:        input.Name,
		Slug:        slug.Make(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Category:    category,
		ImageURL:    imageURL,
		CreatedAt:   time.Now(),
	}

	store.Dispatch(state.AddProduct{Product: product})
	log.Printf("Product %s listed by seller %s", product.ID, claims.SellerID)

	return c.Status(fiber.StatusCreated).JSON(product)
}

func UpdateProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	input := new(ProductInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	snapshot := store.State()
	var existing *model.Product
	for i := range snapshot.Products {
		if snapshot.Products[i].ID == productID {
			existing = &snapshot.Products[i]
			break
		}
	}
	if existing == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	if input.Name == "" || input.Price <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name and a positive price are required",
		})
	}

	// Full replace; identity, ownership and creation time are preserved.
	updated := model.Product{
		ID:          existing.ID,
		SellerID:    existing.SellerID,
		Name:        input.Name,
		Slug:        slug.Make(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Category:    model.Category(input.Category),
		ImageURL:    input.ImageURL,
		CreatedAt:   existing.CreatedAt,
	}
	if updated.Category == "" {
		updated.Category = existing.Category
	}
	if updated.ImageURL == "" {
		updated.ImageURL = existing.ImageURL
	}

	store.Dispatch(state.UpdateProduct{Product: updated})

	return c.JSON(updated)
}

func DeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	store.Dispatch(state.DeleteProduct{ID: productID})

	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}
