package controllers

import (
	"errors"
	"fmt"
	"math"

	"github.com/Adi-1655/snackshub/models"

	"github.com/gofiber/fiber/v2"
)

// OrderLine is one requested product-quantity pair from the client.
type OrderLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// mergeLines collapses duplicate products into a single line so the whole
// requested quantity is validated and decremented at once. First-seen order
// is preserved.
func mergeLines(lines []OrderLine) []OrderLine {
	merged := make([]OrderLine, 0, len(lines))
	index := make(map[string]int, len(lines))
	for _, line := range lines {
		if at, seen := index[line.ProductID]; seen {
			merged[at].Quantity += line.Quantity
			continue
		}
		index[line.ProductID] = len(merged)
		merged = append(merged, line)
	}
	return merged
}

// buildOrderItems validates every line against its loaded product and
// returns the price/name snapshots plus the running subtotal. Nothing is
// written here; stock only moves once the whole order has passed.
func buildOrderItems(lines []OrderLine, products map[string]models.Product) ([]models.OrderItem, float64, error) {
	items := make([]models.OrderItem, 0, len(lines))
	var subtotal float64

	for _, line := range lines {
		product, found := products[line.ProductID]
		if !found {
			return nil, 0, fmt.Errorf("%w: product %s not found", models.ErrProductNotFound, line.ProductID)
		}
		if err := product.CanFulfil(line.Quantity); err != nil {
			return nil, 0, err
		}
		items = append(items, models.OrderItem{
			Product:  product.ID,
			Name:     product.Name,
			Price:    product.Price,
			Image:    product.Image,
			Quantity: line.Quantity,
		})
		subtotal += product.Price * float64(line.Quantity)
	}

	return items, subtotal, nil
}

// checkOrderLimits enforces the settings-level rules. Runs before any stock
// mutation so a rejected order never moves inventory.
func checkOrderLimits(settings models.Settings, items []models.OrderItem, subtotal float64) error {
	totalQuantity := 0
	for _, item := range items {
		totalQuantity += item.Quantity
	}
	if settings.MaxItemsPerOrder > 0 && totalQuantity > settings.MaxItemsPerOrder {
		return fmt.Errorf("%w: maximum %d items allowed per order", models.ErrTooManyItems, settings.MaxItemsPerOrder)
	}
	if subtotal < settings.MinOrderAmount {
		return fmt.Errorf("%w: minimum order amount is %.0f", models.ErrBelowMinimumOrder, settings.MinOrderAmount)
	}
	return nil
}

// amountInPaise converts a rupee total to the integer paise Razorpay
// expects, rounding to the nearest paisa so float totals like 19.99 do not
// truncate short.
func amountInPaise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// businessStatus maps a business rule rejection to its HTTP status.
func businessStatus(err error) int {
	if errors.Is(err, models.ErrProductNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadRequest
}
