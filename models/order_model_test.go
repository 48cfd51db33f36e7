package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{OrderStatusConfirmed, OrderStatusAccepted, true},
		{OrderStatusConfirmed, OrderStatusDelivered, true},
		{OrderStatusConfirmed, OrderStatusCancelled, true},
		{OrderStatusAccepted, OrderStatusDelivered, true},
		{OrderStatusAccepted, OrderStatusCancelled, true},
		{OrderStatusAccepted, OrderStatusConfirmed, false},
		{OrderStatusDelivered, OrderStatusCancelled, false},
		{OrderStatusDelivered, OrderStatusConfirmed, false},
		{OrderStatusCancelled, OrderStatusConfirmed, false},
		{OrderStatusCancelled, OrderStatusDelivered, false},
		{OrderStatusConfirmed, OrderStatusConfirmed, false},
		{OrderStatusConfirmed, "Shipped", false},
	}

	for _, tc := range cases {
		order := Order{OrderStatus: tc.from}
		assert.Equal(t, tc.want, order.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestSelfCancellable(t *testing.T) {
	assert.True(t, (&Order{OrderStatus: OrderStatusConfirmed}).SelfCancellable())
	assert.False(t, (&Order{OrderStatus: OrderStatusAccepted}).SelfCancellable())
	assert.False(t, (&Order{OrderStatus: OrderStatusDelivered}).SelfCancellable())
	assert.False(t, (&Order{OrderStatus: OrderStatusCancelled}).SelfCancellable())
}

func TestIsTerminalStatus(t *testing.T) {
	assert.True(t, IsTerminalStatus(OrderStatusDelivered))
	assert.True(t, IsTerminalStatus(OrderStatusCancelled))
	assert.False(t, IsTerminalStatus(OrderStatusConfirmed))
	assert.False(t, IsTerminalStatus(OrderStatusAccepted))
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, ValidOrderStatus(OrderStatusConfirmed))
	assert.True(t, ValidOrderStatus(OrderStatusCancelled))
	assert.False(t, ValidOrderStatus("Pending"))
	assert.False(t, ValidOrderStatus(""))
}

func TestSubtotal(t *testing.T) {
	order := Order{OrderItems: []OrderItem{
		{Name: "Lays Classic Salted", Price: 20, Quantity: 2},
		{Name: "Maggi 2-Minute Noodles", Price: 15, Quantity: 4},
	}}
	assert.Equal(t, 100.0, order.Subtotal())

	assert.Equal(t, 0.0, (&Order{}).Subtotal())
}
