package controllers

import (
	"errors"
	"testing"

	"github.com/Adi-1655/snackshub/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testProduct(name string, price float64, stock, maxQty int) models.Product {
	return models.Product{
		ID:                  primitive.NewObjectID(),
		Name:                name,
		Category:            "Chips",
		Price:               price,
		Image:               "/uploads/" + name + ".jpg",
		Stock:               stock,
		MaxQuantityPerOrder: maxQty,
		IsAvailable:         true,
	}
}

func TestMergeLines(t *testing.T) {
	lines := []OrderLine{
		{ProductID: "a", Quantity: 2},
		{ProductID: "b", Quantity: 1},
		{ProductID: "a", Quantity: 3},
	}

	merged := mergeLines(lines)
	require.Len(t, merged, 2)
	assert.Equal(t, OrderLine{ProductID: "a", Quantity: 5}, merged[0])
	assert.Equal(t, OrderLine{ProductID: "b", Quantity: 1}, merged[1])
}

func TestBuildOrderItems(t *testing.T) {
	chips := testProduct("Lays Classic Salted", 20, 3, 5)
	noodles := testProduct("Maggi 2-Minute Noodles", 15, 80, 10)
	products := map[string]models.Product{
		"chips":   chips,
		"noodles": noodles,
	}

	lines := []OrderLine{
		{ProductID: "chips", Quantity: 2},
		{ProductID: "noodles", Quantity: 4},
	}

	items, subtotal, err := buildOrderItems(lines, products)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, chips.ID, items[0].Product)
	assert.Equal(t, "Lays Classic Salted", items[0].Name)
	assert.Equal(t, 20.0, items[0].Price)
	assert.Equal(t, chips.Image, items[0].Image)
	assert.Equal(t, 2, items[0].Quantity)

	assert.Equal(t, 100.0, subtotal) // 20*2 + 15*4
}

func TestBuildOrderItemsMissingProduct(t *testing.T) {
	lines := []OrderLine{{ProductID: "ghost", Quantity: 1}}

	_, _, err := buildOrderItems(lines, map[string]models.Product{})
	assert.True(t, errors.Is(err, models.ErrProductNotFound))
}

func TestBuildOrderItemsInsufficientStock(t *testing.T) {
	chips := testProduct("Lays Classic Salted", 20, 1, 5)
	lines := []OrderLine{{ProductID: "chips", Quantity: 2}}

	_, _, err := buildOrderItems(lines, map[string]models.Product{"chips": chips})
	assert.True(t, errors.Is(err, models.ErrInsufficientStock))
}

func TestBuildOrderItemsQuantityExceeded(t *testing.T) {
	chips := testProduct("Lays Classic Salted", 20, 50, 5)
	lines := []OrderLine{{ProductID: "chips", Quantity: 6}}

	_, _, err := buildOrderItems(lines, map[string]models.Product{"chips": chips})
	assert.True(t, errors.Is(err, models.ErrQuantityExceeded))
}

func TestBuildOrderItemsMergedDuplicatesShareStock(t *testing.T) {
	// Two lines for the same product must be judged against the stock as a
	// whole, not independently.
	chips := testProduct("Lays Classic Salted", 20, 3, 5)
	lines := mergeLines([]OrderLine{
		{ProductID: "chips", Quantity: 2},
		{ProductID: "chips", Quantity: 2},
	})

	_, _, err := buildOrderItems(lines, map[string]models.Product{"chips": chips})
	assert.True(t, errors.Is(err, models.ErrInsufficientStock))
}

func TestCheckOrderLimits(t *testing.T) {
	settings := models.DefaultSettings()
	settings.MinOrderAmount = 50
	settings.MaxItemsPerOrder = 10

	items := []models.OrderItem{{Name: "Oreo Chocolate", Price: 30, Quantity: 2}}

	assert.NoError(t, checkOrderLimits(settings, items, 60))

	err := checkOrderLimits(settings, items, 40)
	assert.True(t, errors.Is(err, models.ErrBelowMinimumOrder))
	assert.Contains(t, err.Error(), "minimum order amount is 50")
}

func TestCheckOrderLimitsTooManyItems(t *testing.T) {
	settings := models.DefaultSettings()
	settings.MaxItemsPerOrder = 5

	items := []models.OrderItem{
		{Name: "Parle-G Gold", Price: 10, Quantity: 4},
		{Name: "KitKat", Price: 25, Quantity: 2},
	}

	err := checkOrderLimits(settings, items, 90)
	assert.True(t, errors.Is(err, models.ErrTooManyItems))
}

func TestAmountInPaise(t *testing.T) {
	assert.Equal(t, int64(1999), amountInPaise(19.99))
	assert.Equal(t, int64(4000), amountInPaise(40))
	assert.Equal(t, int64(0), amountInPaise(0))

	// 19.99 is not exactly representable; truncation would give 1998.
	assert.Equal(t, int64(1999), amountInPaise(9.99+10))
}

func TestBusinessStatus(t *testing.T) {
	assert.Equal(t, fiber.StatusNotFound, businessStatus(models.ErrProductNotFound))
	assert.Equal(t, fiber.StatusBadRequest, businessStatus(models.ErrInsufficientStock))
	assert.Equal(t, fiber.StatusBadRequest, businessStatus(models.ErrBelowMinimumOrder))
	assert.Equal(t, fiber.StatusBadRequest, businessStatus(errors.New("anything else")))
}
