package controllers

import (
	"context"
	"errors"
	"testing"

	"github.com/Adi-1655/snackshub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStockStore records every stock write and can be told to lose the
// race, or fail outright, for named products.
type fakeStockStore struct {
	loseRace   map[string]bool
	takeErr    map[string]error
	restoreErr map[string]error
	takes      []models.OrderItem
	restores   []models.OrderItem
}

func (f *fakeStockStore) Take(_ context.Context, item models.OrderItem) (bool, error) {
	if err := f.takeErr[item.Name]; err != nil {
		return false, err
	}
	if f.loseRace[item.Name] {
		return false, nil
	}
	f.takes = append(f.takes, item)
	return true, nil
}

func (f *fakeStockStore) Restore(_ context.Context, item models.OrderItem) error {
	if err := f.restoreErr[item.Name]; err != nil {
		return err
	}
	f.restores = append(f.restores, item)
	return nil
}

func stockItem(name string, qty int) models.OrderItem {
	return models.OrderItem{Product: primitive.NewObjectID(), Name: name, Quantity: qty}
}

func TestTakeAllTakesEveryLine(t *testing.T) {
	store := &fakeStockStore{}
	items := []models.OrderItem{
		stockItem("Lays Classic Salted", 2),
		stockItem("Maggi 2-Minute Noodles", 4),
	}

	failed, err := takeAll(context.Background(), store, items)
	require.NoError(t, err)
	assert.Nil(t, failed)
	assert.Equal(t, items, store.takes)
	assert.Empty(t, store.restores, "nothing to roll back on success")
}

func TestTakeAllRollsBackExactlyTheTakenLines(t *testing.T) {
	store := &fakeStockStore{loseRace: map[string]bool{"KitKat": true}}
	items := []models.OrderItem{
		stockItem("Lays Classic Salted", 2),
		stockItem("Maggi 2-Minute Noodles", 4),
		stockItem("KitKat", 1),
		stockItem("Sprite", 3),
	}

	failed, err := takeAll(context.Background(), store, items)
	require.NoError(t, err)
	require.NotNil(t, failed)
	assert.Equal(t, "KitKat", failed.Name)

	// The two lines taken before the losing line come back with their
	// exact quantities; the lines after it were never touched.
	require.Len(t, store.restores, 2)
	assert.Equal(t, items[0], store.restores[0])
	assert.Equal(t, items[1], store.restores[1])
}

func TestTakeAllRollsBackOnWriteError(t *testing.T) {
	writeErr := errors.New("socket closed")
	store := &fakeStockStore{takeErr: map[string]error{"Maggi 2-Minute Noodles": writeErr}}
	items := []models.OrderItem{
		stockItem("Lays Classic Salted", 2),
		stockItem("Maggi 2-Minute Noodles", 4),
	}

	failed, err := takeAll(context.Background(), store, items)
	assert.ErrorIs(t, err, writeErr)
	require.NotNil(t, failed)
	assert.Equal(t, "Maggi 2-Minute Noodles", failed.Name)

	require.Len(t, store.restores, 1)
	assert.Equal(t, items[0], store.restores[0])
}

func TestRestoreAllReturnsPerLineQuantities(t *testing.T) {
	// Cancellation hands the order's item list straight to restoreAll, so
	// every line must come back with the quantity that was decremented.
	store := &fakeStockStore{}
	items := []models.OrderItem{
		stockItem("Lays Classic Salted", 2),
		stockItem("Oreo Chocolate", 5),
	}

	restoreAll(context.Background(), store, items)
	assert.Equal(t, items, store.restores)
}

func TestRestoreAllContinuesPastAFailedLine(t *testing.T) {
	store := &fakeStockStore{restoreErr: map[string]error{"Lays Classic Salted": errors.New("write failed")}}
	items := []models.OrderItem{
		stockItem("Lays Classic Salted", 2),
		stockItem("Oreo Chocolate", 5),
	}

	restoreAll(context.Background(), store, items)
	require.Len(t, store.restores, 1)
	assert.Equal(t, "Oreo Chocolate", store.restores[0].Name)
}
