package controllers

import (
	"context"
	"time"

	"github.com/Adi-1655/snackshub/audit"
	"github.com/Adi-1655/snackshub/configs"
	orderController "github.com/Adi-1655/snackshub/controllers/orders"
	"github.com/Adi-1655/snackshub/middlewares"
	"github.com/Adi-1655/snackshub/models"
	"github.com/Adi-1655/snackshub/responses"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func orderCollection() *mongo.Collection {
	return configs.GetCollection("orders")
}

func productCollection() *mongo.Collection {
	return configs.GetCollection("products")
}

func userCollection() *mongo.Collection {
	return configs.GetCollection("users")
}

func logCollection() *mongo.Collection {
	return configs.GetCollection("admin_logs")
}

func adminObjectID(c *fiber.Ctx) primitive.ObjectID {
	adminId, _ := c.Locals("userId").(string)
	objectID, _ := primitive.ObjectIDFromHex(adminId)
	return objectID
}

// lowStockFilter matches products worth flagging: in stock but nearly out.
var lowStockFilter = bson.M{"stock": bson.M{"$gt": 0, "$lte": models.LowStockThreshold}}

// GetDashboardStats returns the admin dashboard counters.
func GetDashboardStats(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	totalOrders, err := orderCollection().CountDocuments(ctx, bson.M{})
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error counting orders")
	}
	totalProducts, err := productCollection().CountDocuments(ctx, bson.M{})
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error counting products")
	}
	totalUsers, err := userCollection().CountDocuments(ctx, bson.M{})
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error counting users")
	}

	totalRevenue, err := sumOrderAmounts(ctx, bson.M{})
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error computing revenue")
	}

	lowStockProducts, err := productCollection().CountDocuments(ctx, lowStockFilter)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error counting low-stock products")
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayFilter := bson.M{"createdAt": bson.M{"$gte": startOfDay}}

	todayOrders, err := orderCollection().CountDocuments(ctx, todayFilter)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error counting today's orders")
	}
	todayRevenue, err := sumOrderAmounts(ctx, todayFilter)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error computing today's revenue")
	}

	pendingOrders, err := orderCollection().CountDocuments(ctx, bson.M{
		"orderStatus": bson.M{"$in": []string{models.OrderStatusConfirmed, models.OrderStatusAccepted}},
	})
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error counting pending orders")
	}

	return responses.Ok(c, "Stats fetched successfully", &fiber.Map{
		"totalOrders":      totalOrders,
		"products":         totalProducts,
		"users":            totalUsers,
		"totalRevenue":     totalRevenue,
		"lowStockProducts": lowStockProducts,
		"todayOrders":      todayOrders,
		"todayRevenue":     todayRevenue,
		"pendingOrders":    pendingOrders,
	})
}

func sumOrderAmounts(ctx context.Context, match bson.M) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$totalAmount"},
		}}},
	}

	cursor, err := orderCollection().Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

// orderCustomer is the slice of the customer document the dashboard shows
// next to each order.
type orderCustomer struct {
	Id    primitive.ObjectID `bson:"_id" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Phone string             `bson:"phone" json:"phone"`
}

type adminOrder struct {
	models.Order `bson:",inline"`
	Customer     *orderCustomer `bson:"customer,omitempty" json:"customer,omitempty"`
}

// adminOrdersPipeline joins each matching order with its customer's public
// fields, newest first. Orders whose user was deleted keep a nil customer.
func adminOrdersPipeline(filter bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "user",
			"foreignField": "_id",
			"as":           "customer",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$customer",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$project", Value: bson.M{"customer.password": 0}}},
	}
}

// GetAllOrders lists every order with its customer, newest first,
// filterable by status.
func GetAllOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		if !models.ValidOrderStatus(status) {
			return responses.Error(c, fiber.StatusBadRequest, "Invalid order status")
		}
		filter["orderStatus"] = status
	}

	cursor, err := orderCollection().Aggregate(ctx, adminOrdersPipeline(filter))
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Failed to fetch orders")
	}

	var orders []adminOrder
	if err = cursor.All(ctx, &orders); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Failed to decode orders")
	}
	if orders == nil {
		orders = []adminOrder{}
	}

	return responses.Ok(c, "Orders fetched successfully", &fiber.Map{"orders": orders})
}

// UpdateOrderStatus moves an order along its lifecycle. Delivered stamps
// deliveredAt and marks the payment collected; any cancellation returns the
// order's stock.
func UpdateOrderStatus(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	orderObjectID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid order ID format")
	}

	var reqBody struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if !models.ValidOrderStatus(reqBody.Status) {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid order status")
	}

	var order models.Order
	err = orderCollection().FindOne(ctx, bson.M{"_id": orderObjectID}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "Order not found")
	} else if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Failed to fetch order")
	}

	if !order.CanTransitionTo(reqBody.Status) {
		middlewares.RecordOrderOperation("status_update", false)
		return responses.Error(c, fiber.StatusBadRequest,
			"Cannot move order from "+order.OrderStatus+" to "+reqBody.Status)
	}

	now := time.Now()
	set := bson.M{
		"orderStatus": reqBody.Status,
		"updatedAt":   now,
	}
	switch reqBody.Status {
	case models.OrderStatusAccepted:
		set["isCancellable"] = false
	case models.OrderStatusDelivered:
		set["isCancellable"] = false
		set["deliveredAt"] = now
		set["paymentStatus"] = models.PaymentStatusPaid
	case models.OrderStatusCancelled:
		set["isCancellable"] = false
		set["cancelledAt"] = now
		set["cancelReason"] = reqBody.Reason
	}

	// Guard on the status read above so concurrent transitions serialize.
	result, err := orderCollection().UpdateOne(ctx,
		bson.M{"_id": order.ID, "orderStatus": order.OrderStatus}, bson.M{"$set": set})
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Failed to update order")
	}
	if result.ModifiedCount == 0 {
		middlewares.RecordOrderOperation("status_update", false)
		return responses.Error(c, fiber.StatusConflict, "Order was updated concurrently, retry")
	}

	if reqBody.Status == models.OrderStatusCancelled {
		orderController.RestoreStock(ctx, order.OrderItems)
	}

	audit.Record(ctx, adminObjectID(c), models.ActionUpdateOrderStatus,
		"Order "+order.ID.Hex()+" moved to "+reqBody.Status,
		map[string]any{"from": order.OrderStatus, "to": reqBody.Status}, c.IP())
	middlewares.RecordOrderOperation("status_update", true)

	var updated models.Order
	if err = orderCollection().FindOne(ctx, bson.M{"_id": order.ID}).Decode(&updated); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Failed to fetch order")
	}

	return responses.Ok(c, "Order status updated", &fiber.Map{"order": updated})
}

// CreateProduct adds a catalog entry.
func CreateProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Error parsing product data")
	}

	if product.Name == "" {
		return responses.Error(c, fiber.StatusBadRequest, "Please provide a product name")
	}
	if !models.ValidCategory(product.Category) {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product category")
	}
	if product.Price < 0 {
		return responses.Error(c, fiber.StatusBadRequest, "Price cannot be negative")
	}
	if product.Stock < 0 {
		return responses.Error(c, fiber.StatusBadRequest, "Stock cannot be negative")
	}
	if product.MaxQuantityPerOrder < 1 {
		product.MaxQuantityPerOrder = models.DefaultMaxQuantityPerOrder
	}

	now := time.Now()
	product.ID = primitive.NewObjectID()
	product.CreatedAt = now
	product.UpdatedAt = now

	if _, err := productCollection().InsertOne(ctx, product); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error inserting product")
	}

	audit.Record(ctx, adminObjectID(c), models.ActionCreateProduct,
		"Created product "+product.Name, map[string]any{"productId": product.ID.Hex()}, c.IP())

	return responses.Created(c, "Product added successfully", &fiber.Map{"product": product})
}

// UpdateProduct applies a partial update to a catalog entry.
func UpdateProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	productObjectID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID format")
	}

	var reqBody struct {
		Name                *string  `json:"name"`
		Category            *string  `json:"category"`
		Price               *float64 `json:"price"`
		Image               *string  `json:"image"`
		Stock               *int     `json:"stock"`
		MaxQuantityPerOrder *int     `json:"maxQuantityPerOrder"`
		IsAvailable         *bool    `json:"isAvailable"`
		Description         *string  `json:"description"`
		Brand               *string  `json:"brand"`
		Weight              *string  `json:"weight"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Error parsing product data")
	}

	update := bson.M{}
	if reqBody.Name != nil {
		update["name"] = *reqBody.Name
	}
	if reqBody.Category != nil {
		if !models.ValidCategory(*reqBody.Category) {
			return responses.Error(c, fiber.StatusBadRequest, "Invalid product category")
		}
		update["category"] = *reqBody.Category
	}
	if reqBody.Price != nil {
		if *reqBody.Price < 0 {
			return responses.Error(c, fiber.StatusBadRequest, "Price cannot be negative")
		}
		update["price"] = *reqBody.Price
	}
	if reqBody.Image != nil {
		update["image"] = *reqBody.Image
	}
	if reqBody.Stock != nil {
		if *reqBody.Stock < 0 {
			return responses.Error(c, fiber.StatusBadRequest, "Stock cannot be negative")
		}
		update["stock"] = *reqBody.Stock
	}
	if reqBody.MaxQuantityPerOrder != nil {
		if *reqBody.MaxQuantityPerOrder < 1 {
			return responses.Error(c, fiber.StatusBadRequest, "maxQuantityPerOrder must be at least 1")
		}
		update["maxQuantityPerOrder"] = *reqBody.MaxQuantityPerOrder
	}
	if reqBody.IsAvailable != nil {
		update["isAvailable"] = *reqBody.IsAvailable
	}
	if reqBody.Description != nil {
		update["description"] = *reqBody.Description
	}
	if reqBody.Brand != nil {
		update["brand"] = *reqBody.Brand
	}
	if reqBody.Weight != nil {
		update["weight"] = *reqBody.Weight
	}

	if len(update) == 0 {
		return responses.Error(c, fiber.StatusBadRequest, "No product fields provided")
	}
	update["updatedAt"] = time.Now()

	result, err := productCollection().UpdateOne(ctx, bson.M{"_id": productObjectID}, bson.M{"$set": update})
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error updating product")
	}
	if result.MatchedCount == 0 {
		return responses.Error(c, fiber.StatusNotFound, "Product not found")
	}

	var product models.Product
	if err = productCollection().FindOne(ctx, bson.M{"_id": productObjectID}).Decode(&product); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching product")
	}

	audit.Record(ctx, adminObjectID(c), models.ActionUpdateProduct,
		"Updated product "+product.Name, map[string]any{"productId": product.ID.Hex()}, c.IP())

	return responses.Ok(c, "Product updated successfully", &fiber.Map{"product": product})
}

// DeleteProduct removes a catalog entry.
func DeleteProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	productObjectID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID format")
	}

	var product models.Product
	err = productCollection().FindOne(ctx, bson.M{"_id": productObjectID}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return responses.Error(c, fiber.StatusNotFound, "Product not found")
	} else if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching product")
	}

	if _, err = productCollection().DeleteOne(ctx, bson.M{"_id": productObjectID}); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error deleting product")
	}

	audit.Record(ctx, adminObjectID(c), models.ActionDeleteProduct,
		"Deleted product "+product.Name, map[string]any{"productId": product.ID.Hex()}, c.IP())

	return responses.Ok(c, "Product removed", nil)
}

// GetLowStockProducts lists products running out.
func GetLowStockProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	cursor, err := productCollection().Find(ctx, lowStockFilter)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching products")
	}

	var products []models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error parsing products")
	}
	if products == nil {
		products = []models.Product{}
	}

	return responses.Ok(c, "Low stock products fetched", &fiber.Map{"products": products})
}

// GetAdminLogs lists the audit trail, newest first.
func GetAdminLogs(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	findOptions := options.Find()
	findOptions.SetSort(bson.M{"createdAt": -1})
	findOptions.SetLimit(200)

	cursor, err := logCollection().Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching admin logs")
	}

	var logs []models.AdminLog
	if err = cursor.All(ctx, &logs); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error parsing admin logs")
	}
	if logs == nil {
		logs = []models.AdminLog{}
	}

	return responses.Ok(c, "Admin logs fetched", &fiber.Map{"logs": logs})
}
