package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductCategories is the fixed set of catalog categories.
var ProductCategories = []string{"Chips", "Biscuits", "Chocolates", "Cold Drinks", "Instant Noodles"}

type Product struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name                string             `bson:"name" json:"name" validate:"required"`
	Category            string             `bson:"category" json:"category" validate:"required"`
	Price               float64            `bson:"price" json:"price" validate:"min=0"`
	Image               string             `bson:"image" json:"image"`
	Stock               int                `bson:"stock" json:"stock" validate:"min=0"`
	MaxQuantityPerOrder int                `bson:"maxQuantityPerOrder" json:"maxQuantityPerOrder"`
	IsAvailable         bool               `bson:"isAvailable" json:"isAvailable"`
	Description         string             `bson:"description,omitempty" json:"description,omitempty"`
	Brand               string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Weight              string             `bson:"weight,omitempty" json:"weight,omitempty"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}

const DefaultMaxQuantityPerOrder = 5

// LowStockThreshold is the level at or below which a product shows up in
// admin low-stock alerts. It never blocks orders.
const LowStockThreshold = 5

func ValidCategory(category string) bool {
	for _, c := range ProductCategories {
		if c == category {
			return true
		}
	}
	return false
}

// IsLowStock reports whether the product should be flagged to admins.
func (p *Product) IsLowStock() bool {
	return p.Stock > 0 && p.Stock <= LowStockThreshold
}

// CanFulfil checks whether a single order line for qty units can be taken
// from this product. The returned error wraps one of the business rule
// sentinels so callers can map it to a status code.
func (p *Product) CanFulfil(qty int) error {
	if qty < 1 {
		return fmt.Errorf("%w: quantity for %s must be at least 1", ErrValidation, p.Name)
	}
	if !p.IsAvailable {
		return fmt.Errorf("%w: %s is currently unavailable", ErrProductUnavailable, p.Name)
	}
	max := p.MaxQuantityPerOrder
	if max < 1 {
		max = DefaultMaxQuantityPerOrder
	}
	if qty > max {
		return fmt.Errorf("%w: maximum %d units of %s allowed per order", ErrQuantityExceeded, max, p.Name)
	}
	if p.Stock < qty {
		return fmt.Errorf("%w: insufficient stock for %s", ErrInsufficientStock, p.Name)
	}
	return nil
}
