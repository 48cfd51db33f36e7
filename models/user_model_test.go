package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrdersToday(t *testing.T) {
	now := time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)

	u := User{OrderCount: 2}
	assert.Equal(t, 0, u.OrdersToday(now), "no orders yet")

	sameDay := now.Add(-3 * time.Hour)
	u.LastOrderDate = &sameDay
	assert.Equal(t, 2, u.OrdersToday(now))

	yesterday := now.AddDate(0, 0, -1)
	u.LastOrderDate = &yesterday
	assert.Equal(t, 0, u.OrdersToday(now), "counter resets on a new day")
}

func TestDefaultDelivery(t *testing.T) {
	u := User{
		HostelName: "Ganga Hostel",
		RoomNumber: "214",
		Phone:      "9876543210",
	}
	delivery := u.DefaultDelivery()
	assert.Equal(t, "Ganga Hostel", delivery.HostelName)
	assert.Equal(t, "214", delivery.RoomNumber)
	assert.Equal(t, "9876543210", delivery.Phone)
}
