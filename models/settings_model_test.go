package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clockTime(hour, minute int) time.Time {
	return time.Date(2026, time.March, 10, hour, minute, 0, 0, time.UTC)
}

func windowSettings(start, end string) Settings {
	s := DefaultSettings()
	s.OrderStartTime = start
	s.OrderEndTime = end
	return s
}

func TestOrderingAllowedMaintenanceWinsOverEverything(t *testing.T) {
	s := windowSettings("08:00", "23:00")
	s.MaintenanceMode = true
	s.MaintenanceMessage = "Back at 6pm"
	s.IsOrderingEnabled = true

	allowed, reason := s.OrderingAllowed(clockTime(12, 0))
	assert.False(t, allowed)
	assert.Equal(t, "Back at 6pm", reason)

	// Still denied with the maintenance message even when ordering is also
	// disabled or the clock is outside the window.
	s.IsOrderingEnabled = false
	allowed, reason = s.OrderingAllowed(clockTime(3, 0))
	assert.False(t, allowed)
	assert.Equal(t, "Back at 6pm", reason)
}

func TestOrderingAllowedMaintenanceFallbackMessage(t *testing.T) {
	s := windowSettings("08:00", "23:00")
	s.MaintenanceMode = true
	s.MaintenanceMessage = ""

	allowed, reason := s.OrderingAllowed(clockTime(12, 0))
	assert.False(t, allowed)
	assert.Equal(t, "System under maintenance", reason)
}

func TestOrderingAllowedDisabled(t *testing.T) {
	s := windowSettings("08:00", "23:00")
	s.IsOrderingEnabled = false

	allowed, reason := s.OrderingAllowed(clockTime(12, 0))
	assert.False(t, allowed)
	assert.Equal(t, "Ordering is currently disabled", reason)
}

func TestOrderingAllowedStandardWindow(t *testing.T) {
	s := windowSettings("08:00", "23:00")

	cases := []struct {
		hour, minute int
		want         bool
	}{
		{7, 59, false},
		{8, 0, true}, // inclusive start
		{12, 30, true},
		{23, 0, true}, // inclusive end
		{23, 1, false},
		{2, 0, false},
	}
	for _, tc := range cases {
		allowed, _ := s.OrderingAllowed(clockTime(tc.hour, tc.minute))
		assert.Equal(t, tc.want, allowed, "at %02d:%02d", tc.hour, tc.minute)
	}
}

func TestOrderingAllowedWindowCrossingMidnight(t *testing.T) {
	s := windowSettings("20:00", "02:00")

	allowed, _ := s.OrderingAllowed(clockTime(23, 30))
	assert.True(t, allowed)

	allowed, _ = s.OrderingAllowed(clockTime(1, 0))
	assert.True(t, allowed)

	allowed, reason := s.OrderingAllowed(clockTime(10, 0))
	assert.False(t, allowed)
	assert.Equal(t, "Ordering is only available between 20:00 and 02:00", reason)
}

func TestOrderingAllowedInvalidWindow(t *testing.T) {
	s := windowSettings("25:99", "23:00")

	allowed, reason := s.OrderingAllowed(clockTime(12, 0))
	assert.False(t, allowed)
	assert.Contains(t, reason, "25:99")
}

func TestEffectiveDeliveryCharge(t *testing.T) {
	s := DefaultSettings()
	s.DeliveryCharge = 10

	s.IsFreeDelivery = true
	assert.Equal(t, 0.0, s.EffectiveDeliveryCharge())

	s.IsFreeDelivery = false
	assert.Equal(t, 10.0, s.EffectiveDeliveryCharge())
}

func TestValidClock(t *testing.T) {
	assert.True(t, ValidClock("08:00"))
	assert.True(t, ValidClock("23:59"))
	assert.True(t, ValidClock("0:05"))
	assert.False(t, ValidClock("24:00"))
	assert.False(t, ValidClock("12:60"))
	assert.False(t, ValidClock("noon"))
	assert.False(t, ValidClock(""))
}
