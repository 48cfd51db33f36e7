package controllers

import (
	"context"
	"time"

	"github.com/Adi-1655/snackshub/configs"
	"github.com/Adi-1655/snackshub/models"
	"github.com/Adi-1655/snackshub/responses"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func productCollection() *mongo.Collection {
	return configs.GetCollection("products")
}

// GetProducts lists available products, optionally filtered by category.
func GetProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{"isAvailable": true}
	if category := c.Query("category"); category != "" {
		filter["category"] = category
	}

	findOptions := options.Find()
	findOptions.SetSort(bson.M{"name": 1})

	cursor, err := productCollection().Find(ctx, filter, findOptions)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching products")
	}

	var products []models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error parsing products")
	}
	if products == nil {
		products = []models.Product{}
	}

	return responses.Ok(c, "Fetched products", &fiber.Map{"products": products})
}

// GetProduct returns a single product by id.
func GetProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	objectId, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID format")
	}

	var product models.Product
	err = productCollection().FindOne(ctx, bson.M{"_id": objectId}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "Product not found")
	} else if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching product details")
	}

	return responses.Ok(c, "Product fetched successfully", &fiber.Map{"product": product})
}

// GetCategories returns the distinct categories present in the catalog.
func GetCategories(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	categories, err := productCollection().Distinct(ctx, "category", bson.M{})
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching categories")
	}

	return responses.Ok(c, "Categories fetched successfully", &fiber.Map{"categories": categories})
}
