package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. Confirmed is the initial state; Delivered and Cancelled
// are terminal.
const (
	OrderStatusConfirmed = "Confirmed"
	OrderStatusAccepted  = "Accepted"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

const (
	PaymentMethodCOD = "COD"
	PaymentMethodUPI = "UPI"
)

const (
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
	PaymentStatusFailed  = "Failed"
)

// OrderItem is a line item with the product's name, price and image
// captured at placement time.
type OrderItem struct {
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Name     string             `bson:"name" json:"name"`
	Price    float64            `bson:"price" json:"price"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

type DeliveryDetails struct {
	HostelName string `bson:"hostelName" json:"hostelName"`
	RoomNumber string `bson:"roomNumber" json:"roomNumber"`
	Phone      string `bson:"phone" json:"phone"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	User            primitive.ObjectID `bson:"user" json:"user"`
	OrderItems      []OrderItem        `bson:"orderItems" json:"orderItems"`
	DeliveryDetails DeliveryDetails    `bson:"deliveryDetails" json:"deliveryDetails"`
	PaymentMethod   string             `bson:"paymentMethod" json:"paymentMethod"`
	PaymentStatus   string             `bson:"paymentStatus" json:"paymentStatus"`
	RazorpayOrderID string             `bson:"razorpayOrderId,omitempty" json:"razorpayOrderId,omitempty"`
	PaymentID       string             `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	TotalAmount     float64            `bson:"totalAmount" json:"totalAmount"`
	OrderStatus     string             `bson:"orderStatus" json:"orderStatus"`
	IsCancellable   bool               `bson:"isCancellable" json:"isCancellable"`
	CancelledAt     *time.Time         `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
	CancelReason    string             `bson:"cancelReason,omitempty" json:"cancelReason,omitempty"`
	DeliveredAt     *time.Time         `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusConfirmed, OrderStatusAccepted, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether status is an end state.
func IsTerminalStatus(status string) bool {
	return status == OrderStatusDelivered || status == OrderStatusCancelled
}

// CanTransitionTo reports whether an admin may move the order to next.
// Forward moves only; Cancelled is reachable from any non-terminal state.
func (o *Order) CanTransitionTo(next string) bool {
	if !ValidOrderStatus(next) || next == o.OrderStatus {
		return false
	}
	switch o.OrderStatus {
	case OrderStatusConfirmed:
		return next == OrderStatusAccepted || next == OrderStatusDelivered || next == OrderStatusCancelled
	case OrderStatusAccepted:
		return next == OrderStatusDelivered || next == OrderStatusCancelled
	}
	return false
}

// SelfCancellable reports whether the owner may still cancel. Once the
// order is accepted for fulfilment only an admin can cancel it.
func (o *Order) SelfCancellable() bool {
	return o.OrderStatus == OrderStatusConfirmed
}

// Subtotal is the item total without the delivery charge.
func (o *Order) Subtotal() float64 {
	var sum float64
	for _, item := range o.OrderItems {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}
