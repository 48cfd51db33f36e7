package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin audit actions.
const (
	ActionCreateProduct     = "CREATE_PRODUCT"
	ActionUpdateProduct     = "UPDATE_PRODUCT"
	ActionDeleteProduct     = "DELETE_PRODUCT"
	ActionUpdateOrderStatus = "UPDATE_ORDER_STATUS"
	ActionUpdateSettings    = "UPDATE_SETTINGS"
)

// AdminLog records a single admin mutation for the audit trail.
type AdminLog struct {
	Id          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Admin       primitive.ObjectID `bson:"admin" json:"admin"`
	Action      string             `bson:"action" json:"action"`
	Description string             `bson:"description" json:"description"`
	Metadata    map[string]any     `bson:"metadata,omitempty" json:"metadata,omitempty"`
	IPAddress   string             `bson:"ipAddress,omitempty" json:"ipAddress,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
