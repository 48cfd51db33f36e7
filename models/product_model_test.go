package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func availableProduct() Product {
	return Product{
		Name:                "Lays Classic Salted",
		Category:            "Chips",
		Price:               20,
		Stock:               10,
		MaxQuantityPerOrder: 5,
		IsAvailable:         true,
	}
}

func TestCanFulfil(t *testing.T) {
	p := availableProduct()
	assert.NoError(t, p.CanFulfil(1))
	assert.NoError(t, p.CanFulfil(5))
}

func TestCanFulfilRejectsZeroQuantity(t *testing.T) {
	p := availableProduct()
	err := p.CanFulfil(0)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestCanFulfilRejectsUnavailable(t *testing.T) {
	p := availableProduct()
	p.IsAvailable = false
	err := p.CanFulfil(1)
	assert.True(t, errors.Is(err, ErrProductUnavailable))
	assert.Contains(t, err.Error(), "currently unavailable")
}

func TestCanFulfilRejectsOverMaxQuantity(t *testing.T) {
	p := availableProduct()
	err := p.CanFulfil(6)
	assert.True(t, errors.Is(err, ErrQuantityExceeded))
	assert.Contains(t, err.Error(), "maximum 5 units")
}

func TestCanFulfilDefaultsMaxQuantity(t *testing.T) {
	p := availableProduct()
	p.MaxQuantityPerOrder = 0
	p.Stock = 20

	assert.NoError(t, p.CanFulfil(DefaultMaxQuantityPerOrder))
	err := p.CanFulfil(DefaultMaxQuantityPerOrder + 1)
	assert.True(t, errors.Is(err, ErrQuantityExceeded))
}

func TestCanFulfilRejectsInsufficientStock(t *testing.T) {
	p := availableProduct()
	p.Stock = 1
	err := p.CanFulfil(2)
	assert.True(t, errors.Is(err, ErrInsufficientStock))
}

func TestIsLowStock(t *testing.T) {
	p := availableProduct()

	p.Stock = 0
	assert.False(t, p.IsLowStock(), "out of stock is not low stock")

	p.Stock = 1
	assert.True(t, p.IsLowStock())

	p.Stock = LowStockThreshold
	assert.True(t, p.IsLowStock())

	p.Stock = LowStockThreshold + 1
	assert.False(t, p.IsLowStock())
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory("Chips"))
	assert.True(t, ValidCategory("Instant Noodles"))
	assert.False(t, ValidCategory("chips"))
	assert.False(t, ValidCategory("Stationery"))
}
