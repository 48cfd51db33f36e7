package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Settings is a singleton document controlling the shop's ordering rules.
type Settings struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OrderStartTime     string             `bson:"orderStartTime" json:"orderStartTime"`
	OrderEndTime       string             `bson:"orderEndTime" json:"orderEndTime"`
	MaxOrdersPerDay    int                `bson:"maxOrdersPerDay" json:"maxOrdersPerDay"`
	MaxItemsPerOrder   int                `bson:"maxItemsPerOrder" json:"maxItemsPerOrder"`
	DeliveryCharge     float64            `bson:"deliveryCharge" json:"deliveryCharge"`
	IsFreeDelivery     bool               `bson:"isFreeDelivery" json:"isFreeDelivery"`
	MinOrderAmount     float64            `bson:"minOrderAmount" json:"minOrderAmount"`
	IsOrderingEnabled  bool               `bson:"isOrderingEnabled" json:"isOrderingEnabled"`
	MaintenanceMode    bool               `bson:"maintenanceMode" json:"maintenanceMode"`
	MaintenanceMessage string             `bson:"maintenanceMessage" json:"maintenanceMessage"`
	OfferImages        []string           `bson:"offerImages,omitempty" json:"offerImages,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt"`
}

var clockRegex = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// DefaultSettings returns the document created lazily when none exists.
func DefaultSettings() Settings {
	now := time.Now()
	return Settings{
		OrderStartTime:     "08:00",
		OrderEndTime:       "23:00",
		MaxOrdersPerDay:    3,
		MaxItemsPerOrder:   10,
		DeliveryCharge:     0,
		IsFreeDelivery:     true,
		MinOrderAmount:     0,
		IsOrderingEnabled:  true,
		MaintenanceMode:    false,
		MaintenanceMessage: "We are currently under maintenance. Please check back later.",
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func ValidClock(value string) bool {
	return clockRegex.MatchString(value)
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(value string) (int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", value)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q", value)
	}
	return hour*60 + minute, nil
}

// EffectiveDeliveryCharge is the charge added to every order total.
func (s *Settings) EffectiveDeliveryCharge() float64 {
	if s.IsFreeDelivery {
		return 0
	}
	return s.DeliveryCharge
}

// OrderingAllowed decides whether new orders may be placed at now.
// Maintenance mode wins over everything, then the global toggle, then the
// daily window. The window bounds are inclusive and may cross midnight.
func (s *Settings) OrderingAllowed(now time.Time) (bool, string) {
	if s.MaintenanceMode {
		msg := s.MaintenanceMessage
		if msg == "" {
			msg = "System under maintenance"
		}
		return false, msg
	}
	if !s.IsOrderingEnabled {
		return false, "Ordering is currently disabled"
	}

	start, err := parseClock(s.OrderStartTime)
	if err != nil {
		return false, fmt.Sprintf("Ordering is only available between %s and %s", s.OrderStartTime, s.OrderEndTime)
	}
	end, err := parseClock(s.OrderEndTime)
	if err != nil {
		return false, fmt.Sprintf("Ordering is only available between %s and %s", s.OrderStartTime, s.OrderEndTime)
	}

	current := now.Hour()*60 + now.Minute()

	var within bool
	if start <= end {
		within = current >= start && current <= end
	} else {
		// Window crosses midnight, e.g. 20:00 to 02:00.
		within = current >= start || current <= end
	}

	if !within {
		return false, fmt.Sprintf("Ordering is only available between %s and %s", s.OrderStartTime, s.OrderEndTime)
	}
	return true, ""
}
