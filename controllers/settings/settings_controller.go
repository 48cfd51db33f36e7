package controllers

import (
	"context"
	"time"

	"github.com/Adi-1655/snackshub/audit"
	"github.com/Adi-1655/snackshub/configs"
	"github.com/Adi-1655/snackshub/models"
	"github.com/Adi-1655/snackshub/responses"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func settingsCollection() *mongo.Collection {
	return configs.GetCollection("settings")
}

// Load returns the settings singleton, creating it with defaults on first
// access.
func Load(ctx context.Context) (models.Settings, error) {
	var settings models.Settings
	err := settingsCollection().FindOne(ctx, bson.M{}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		settings = models.DefaultSettings()
		result, insertErr := settingsCollection().InsertOne(ctx, settings)
		if insertErr != nil {
			return settings, insertErr
		}
		if id, ok := result.InsertedID.(primitive.ObjectID); ok {
			settings.ID = id
		}
		return settings, nil
	}
	return settings, err
}

// GetSettings returns the current shop settings.
func GetSettings(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	settings, err := Load(ctx)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching settings")
	}

	return responses.Ok(c, "Settings fetched successfully", &fiber.Map{"settings": settings})
}

// CheckOrdering reports whether ordering is currently allowed.
func CheckOrdering(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	settings, err := Load(ctx)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching settings")
	}

	allowed, reason := settings.OrderingAllowed(time.Now())
	return responses.Ok(c, "", &fiber.Map{
		"isAllowed": allowed,
		"message":   reason,
		"orderingWindow": fiber.Map{
			"start": settings.OrderStartTime,
			"end":   settings.OrderEndTime,
		},
	})
}

// UpdateSettings applies a partial update to the singleton. Admin only.
func UpdateSettings(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		OrderStartTime     *string   `json:"orderStartTime"`
		OrderEndTime       *string   `json:"orderEndTime"`
		MaxOrdersPerDay    *int      `json:"maxOrdersPerDay"`
		MaxItemsPerOrder   *int      `json:"maxItemsPerOrder"`
		DeliveryCharge     *float64  `json:"deliveryCharge"`
		IsFreeDelivery     *bool     `json:"isFreeDelivery"`
		MinOrderAmount     *float64  `json:"minOrderAmount"`
		IsOrderingEnabled  *bool     `json:"isOrderingEnabled"`
		MaintenanceMode    *bool     `json:"maintenanceMode"`
		MaintenanceMessage *string   `json:"maintenanceMessage"`
		OfferImages        *[]string `json:"offerImages"`
	}

	if err := c.BodyParser(&reqBody); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}

	update := bson.M{}
	if reqBody.OrderStartTime != nil {
		if !models.ValidClock(*reqBody.OrderStartTime) {
			return responses.Error(c, fiber.StatusBadRequest, "orderStartTime must be in HH:MM format")
		}
		update["orderStartTime"] = *reqBody.OrderStartTime
	}
	if reqBody.OrderEndTime != nil {
		if !models.ValidClock(*reqBody.OrderEndTime) {
			return responses.Error(c, fiber.StatusBadRequest, "orderEndTime must be in HH:MM format")
		}
		update["orderEndTime"] = *reqBody.OrderEndTime
	}
	if reqBody.MaxOrdersPerDay != nil {
		if *reqBody.MaxOrdersPerDay < 1 {
			return responses.Error(c, fiber.StatusBadRequest, "maxOrdersPerDay must be at least 1")
		}
		update["maxOrdersPerDay"] = *reqBody.MaxOrdersPerDay
	}
	if reqBody.MaxItemsPerOrder != nil {
		if *reqBody.MaxItemsPerOrder < 1 {
			return responses.Error(c, fiber.StatusBadRequest, "maxItemsPerOrder must be at least 1")
		}
		update["maxItemsPerOrder"] = *reqBody.MaxItemsPerOrder
	}
	if reqBody.DeliveryCharge != nil {
		if *reqBody.DeliveryCharge < 0 {
			return responses.Error(c, fiber.StatusBadRequest, "deliveryCharge cannot be negative")
		}
		update["deliveryCharge"] = *reqBody.DeliveryCharge
	}
	if reqBody.IsFreeDelivery != nil {
		update["isFreeDelivery"] = *reqBody.IsFreeDelivery
	}
	if reqBody.MinOrderAmount != nil {
		if *reqBody.MinOrderAmount < 0 {
			return responses.Error(c, fiber.StatusBadRequest, "minOrderAmount cannot be negative")
		}
		update["minOrderAmount"] = *reqBody.MinOrderAmount
	}
	if reqBody.IsOrderingEnabled != nil {
		update["isOrderingEnabled"] = *reqBody.IsOrderingEnabled
	}
	if reqBody.MaintenanceMode != nil {
		update["maintenanceMode"] = *reqBody.MaintenanceMode
	}
	if reqBody.MaintenanceMessage != nil {
		update["maintenanceMessage"] = *reqBody.MaintenanceMessage
	}
	if reqBody.OfferImages != nil {
		update["offerImages"] = *reqBody.OfferImages
	}

	if len(update) == 0 {
		return responses.Error(c, fiber.StatusBadRequest, "No settings fields provided")
	}
	update["updatedAt"] = time.Now()

	// The singleton exists after Load; update it in place.
	settings, err := Load(ctx)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching settings")
	}

	_, err = settingsCollection().UpdateOne(ctx, bson.M{"_id": settings.ID}, bson.M{"$set": update})
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error updating settings")
	}

	updated, err := Load(ctx)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching settings")
	}

	if adminId, ok := c.Locals("userId").(string); ok {
		if adminObjectID, idErr := primitive.ObjectIDFromHex(adminId); idErr == nil {
			audit.Record(ctx, adminObjectID, models.ActionUpdateSettings, "Updated shop settings",
				map[string]any{"fields": fieldNames(update)}, c.IP())
		}
	}

	return responses.Ok(c, "Settings updated successfully", &fiber.Map{"settings": updated})
}

func fieldNames(update bson.M) []string {
	names := make([]string, 0, len(update))
	for name := range update {
		if name == "updatedAt" {
			continue
		}
		names = append(names, name)
	}
	return names
}
