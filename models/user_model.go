package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	Id            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name          string             `bson:"name" json:"name" validate:"required"`
	Phone         string             `bson:"phone" json:"phone" validate:"required"`
	HostelId      string             `bson:"hostelId" json:"hostelId" validate:"required"`
	HostelName    string             `bson:"hostelName" json:"hostelName" validate:"required"`
	RoomNumber    string             `bson:"roomNumber" json:"roomNumber" validate:"required"`
	Password      string             `bson:"password" json:"-"`
	Role          string             `bson:"role" json:"role"`
	IsActive      bool               `bson:"isActive" json:"isActive"`
	OrderCount    int                `bson:"orderCount" json:"orderCount"`
	LastOrderDate *time.Time         `bson:"lastOrderDate,omitempty" json:"lastOrderDate,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// OrdersToday returns how many orders the user has placed on the calendar
// day of now. The counter resets implicitly when lastOrderDate rolls over.
func (u *User) OrdersToday(now time.Time) int {
	if u.LastOrderDate == nil {
		return 0
	}
	last := u.LastOrderDate.In(now.Location())
	if last.Year() == now.Year() && last.YearDay() == now.YearDay() {
		return u.OrderCount
	}
	return 0
}

// DefaultDelivery builds delivery details from the user's stored hostel.
func (u *User) DefaultDelivery() DeliveryDetails {
	return DeliveryDetails{
		HostelName: u.HostelName,
		RoomNumber: u.RoomNumber,
		Phone:      u.Phone,
	}
}
