package audit

import (
	"context"
	"log"
	"time"

	"github.com/Adi-1655/snackshub/configs"
	"github.com/Adi-1655/snackshub/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func logCollection() *mongo.Collection {
	return configs.GetCollection("admin_logs")
}

// Record appends an entry to the admin audit trail. Audit writes are
// best-effort: a failure is logged but never fails the admin request.
func Record(ctx context.Context, adminId primitive.ObjectID, action, description string, metadata map[string]any, ipAddress string) {
	entry := models.AdminLog{
		Admin:       adminId,
		Action:      action,
		Description: description,
		Metadata:    metadata,
		IPAddress:   ipAddress,
		CreatedAt:   time.Now(),
	}

	if _, err := logCollection().InsertOne(ctx, entry); err != nil {
		log.Printf("audit: failed to record %s: %v", action, err)
	}
}
