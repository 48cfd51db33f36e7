package controllers

import (
	"context"
	"log"

	"github.com/Adi-1655/snackshub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// stockStore is the slice of the product collection the placement and
// cancellation paths write through. Abstracted so the take/rollback
// sequence is testable without a live collection.
type stockStore interface {
	Take(ctx context.Context, item models.OrderItem) (bool, error)
	Restore(ctx context.Context, item models.OrderItem) error
}

type mongoStockStore struct{}

// Take applies the atomic conditional decrement for one line. The stock
// filter makes the check and the write a single operation, so two orders
// racing for the last unit cannot both win.
func (mongoStockStore) Take(ctx context.Context, item models.OrderItem) (bool, error) {
	result, err := productCollection().UpdateOne(ctx,
		bson.M{"_id": item.Product, "isAvailable": true, "stock": bson.M{"$gte": item.Quantity}},
		bson.M{"$inc": bson.M{"stock": -item.Quantity}},
	)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount == 1, nil
}

func (mongoStockStore) Restore(ctx context.Context, item models.OrderItem) error {
	_, err := productCollection().UpdateOne(ctx,
		bson.M{"_id": item.Product},
		bson.M{"$inc": bson.M{"stock": item.Quantity}},
	)
	return err
}

// takeAll decrements stock line by line. When a line fails, the lines taken
// before it are restored in full and the failing item is returned; a nil
// item means every line was taken.
func takeAll(ctx context.Context, store stockStore, items []models.OrderItem) (*models.OrderItem, error) {
	var taken []models.OrderItem
	for i := range items {
		won, err := store.Take(ctx, items[i])
		if err != nil {
			restoreAll(ctx, store, taken)
			return &items[i], err
		}
		if !won {
			restoreAll(ctx, store, taken)
			return &items[i], nil
		}
		taken = append(taken, items[i])
	}
	return nil, nil
}

// restoreAll re-increments the quantities captured in items. A failed
// restore is logged and does not stop the remaining lines.
func restoreAll(ctx context.Context, store stockStore, items []models.OrderItem) {
	for _, item := range items {
		if err := store.Restore(ctx, item); err != nil {
			log.Printf("orders: failed to restore %d units of %s: %v", item.Quantity, item.Name, err)
		}
	}
}

// RestoreStock returns the inventory held by items, used both to compensate
// a failed placement and on every cancellation path.
func RestoreStock(ctx context.Context, items []models.OrderItem) {
	restoreAll(ctx, mongoStockStore{}, items)
}
