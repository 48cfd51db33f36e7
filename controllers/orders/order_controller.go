package controllers

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"time"

	"github.com/Adi-1655/snackshub/configs"
	settingsController "github.com/Adi-1655/snackshub/controllers/settings"
	"github.com/Adi-1655/snackshub/middlewares"
	"github.com/Adi-1655/snackshub/models"
	"github.com/Adi-1655/snackshub/responses"

	"github.com/gofiber/fiber/v2"
	"github.com/razorpay/razorpay-go"
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

// CreateOrderRequest holds the data required to place an order. Totals are
// never taken from the client; they are recomputed from live prices.
type CreateOrderRequest struct {
	OrderItems      []OrderLine             `json:"orderItems"`
	DeliveryDetails *models.DeliveryDetails `json:"deliveryDetails"`
	PaymentMethod   string                  `json:"paymentMethod"`
	Notes           string                  `json:"notes"`
}

// CreateOrder runs the placement pipeline: validate every line and every
// request-level rule, then take stock atomically per line and persist the
// order. Any failure after stock has moved re-increments the taken lines.
func CreateOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}
	userObjectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid user ID format")
	}

	var orderReq CreateOrderRequest
	if err := c.BodyParser(&orderReq); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if len(orderReq.OrderItems) == 0 {
		return responses.Error(c, fiber.StatusBadRequest, "No order items")
	}

	settings, err := settingsController.Load(ctx)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Failed to load settings")
	}

	var user models.User
	if err := userCollection().FindOne(ctx, bson.M{"_id": userObjectID}).Decode(&user); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error fetching user details")
	}

	now := time.Now()
	if settings.MaxOrdersPerDay > 0 && user.OrdersToday(now) >= settings.MaxOrdersPerDay {
		middlewares.RecordOrderOperation("create", false)
		return responses.Error(c, fiber.StatusBadRequest,
			"Daily order limit reached, please try again tomorrow")
	}

	lines := mergeLines(orderReq.OrderItems)

	// Load every product referenced by the order.
	products := make(map[string]models.Product, len(lines))
	for _, line := range lines {
		productObjectID, err := primitive.ObjectIDFromHex(line.ProductID)
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
		products[line.ProductID] = product
	}

	orderItems, subtotal, err := buildOrderItems(lines, products)
	if err != nil {
		middlewares.RecordOrderOperation("create", false)
		return responses.Error(c, businessStatus(err), err.Error())
	}

	if err := checkOrderLimits(settings, orderItems, subtotal); err != nil {
		middlewares.RecordOrderOperation("create", false)
		return responses.Error(c, businessStatus(err), err.Error())
	}

	paymentMethod := orderReq.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentMethodCOD
	}
	if paymentMethod != models.PaymentMethodCOD && paymentMethod != models.PaymentMethodUPI {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid payment method")
	}

	delivery := user.DefaultDelivery()
	if orderReq.DeliveryDetails != nil {
		delivery = *orderReq.DeliveryDetails
	}
	if delivery.HostelName == "" || delivery.RoomNumber == "" || delivery.Phone == "" {
		return responses.Error(c, fiber.StatusBadRequest, "Delivery details are incomplete")
	}

	// Every request-level rule has passed; only now does stock move. A line
	// losing the race to a concurrent order rolls back everything taken so
	// far, so a rejected order never holds inventory.
	failed, err := takeAll(ctx, mongoStockStore{}, orderItems)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error updating stock")
	}
	if failed != nil {
		middlewares.RecordOrderOperation("create", false)
		return responses.Error(c, fiber.StatusBadRequest, "Insufficient stock for "+failed.Name)
	}

	totalAmount := subtotal + settings.EffectiveDeliveryCharge()

	order := models.Order{
		ID:              primitive.NewObjectID(),
		User:            userObjectID,
		OrderItems:      orderItems,
		DeliveryDetails: delivery,
		PaymentMethod:   paymentMethod,
		PaymentStatus:   models.PaymentStatusPending,
		TotalAmount:     totalAmount,
		OrderStatus:     models.OrderStatusConfirmed,
		IsCancellable:   true,
		Notes:           orderReq.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// UPI orders go through Razorpay; the client completes the payment and
	// calls the verify endpoint with the signed payment id.
	var paymentInfo *fiber.Map
	if paymentMethod == models.PaymentMethodUPI {
		client := razorpay.NewClient(configs.EnvRazorpayKeyId(), configs.EnvRazorpayKeySecret())
		data := map[string]interface{}{
			"amount":   amountInPaise(totalAmount),
			"currency": "INR",
			"receipt":  "receipt_" + order.ID.Hex(),
		}
		razorpayOrder, err := client.Order.Create(data, nil)
		if err != nil {
			RestoreStock(ctx, orderItems)
			middlewares.RecordOrderOperation("create", false)
			return responses.Error(c, fiber.StatusInternalServerError, "Failed to create payment order")
		}
		order.RazorpayOrderID = razorpayOrder["id"].(string)
		paymentInfo = &fiber.Map{
			"razorpayOrderId": order.RazorpayOrderID,
			"amount":          razorpayOrder["amount"],
			"currency":        razorpayOrder["currency"],
			"keyId":           configs.EnvRazorpayKeyId(),
		}
	}

	if _, err = orderCollection().InsertOne(ctx, order); err != nil {
		RestoreStock(ctx, orderItems)
		middlewares.RecordOrderOperation("create", false)
		return responses.Error(c, fiber.StatusInternalServerError, "Failed to create order")
	}

	// Per-day counter: reset when the last order was on an earlier day.
	counterUpdate := bson.M{
		"$set": bson.M{
			"orderCount":    user.OrdersToday(now) + 1,
			"lastOrderDate": now,
			"updatedAt":     now,
		},
	}
	if _, err = userCollection().UpdateOne(ctx, bson.M{"_id": userObjectID}, counterUpdate); err != nil {
		log.Printf("orders: failed to update order counter for %s: %v", userId, err)
	}

	middlewares.RecordOrderOperation("create", true)

	data := fiber.Map{"order": order}
	if paymentInfo != nil {
		data["payment"] = *paymentInfo
	}
	return responses.Created(c, "Order placed successfully", &data)
}

// GetOrders lists the caller's order history, newest first.
func GetOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}
	userObjectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid user ID format")
	}

	filter := bson.M{"user": userObjectID}
	if status := c.Query("status"); status != "" {
		if !models.ValidOrderStatus(status) {
			return responses.Error(c, fiber.StatusBadRequest, "Invalid order status")
		}
		filter["orderStatus"] = status
	}

	findOptions := options.Find()
	findOptions.SetSort(bson.M{"createdAt": -1})

	cursor, err := orderCollection().Find(ctx, filter, findOptions)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Failed to fetch orders")
	}

	var orders []models.Order
	if err = cursor.All(ctx, &orders); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Failed to decode orders")
	}
	if orders == nil {
		orders = []models.Order{}
	}

	return responses.Ok(c, "Orders fetched successfully", &fiber.Map{"orders": orders})
}

// loadOwnedOrder fetches an order and checks the caller may act on it.
func loadOwnedOrder(ctx context.Context, c *fiber.Ctx) (*models.Order, int, string) {
	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return nil, fiber.StatusUnauthorized, "User ID not found in token"
	}
	userObjectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return nil, fiber.StatusBadRequest, "Invalid user ID format"
	}

	orderObjectID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return nil, fiber.StatusBadRequest, "Invalid order ID format"
	}

	var order models.Order
	err = orderCollection().FindOne(ctx, bson.M{"_id": orderObjectID}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, fiber.StatusNotFound, "Order not found"
	} else if err != nil {
		return nil, fiber.StatusInternalServerError, "Failed to fetch order"
	}

	role, _ := c.Locals("role").(string)
	if order.User != userObjectID && role != models.RoleAdmin {
		return nil, fiber.StatusForbidden, "Not authorized"
	}

	return &order, 0, ""
}

// GetOrder returns a single order to its owner or an admin.
func GetOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	order, status, message := loadOwnedOrder(ctx, c)
	if order == nil {
		return responses.Error(c, status, message)
	}

	return responses.Ok(c, "Order fetched successfully", &fiber.Map{"order": order})
}

// CancelOrder is the self-service cancellation. Only Confirmed orders can
// be cancelled by their owner; the decremented stock is returned in full.
func CancelOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	order, status, message := loadOwnedOrder(ctx, c)
	if order == nil {
		return responses.Error(c, status, message)
	}

	if !order.SelfCancellable() {
		middlewares.RecordOrderOperation("cancel", false)
		return responses.Error(c, fiber.StatusBadRequest, "Order can no longer be cancelled")
	}

	var reqBody struct {
		Reason string `json:"reason"`
	}
	// Body is optional for cancellations.
	_ = c.BodyParser(&reqBody)

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"orderStatus":   models.OrderStatusCancelled,
			"isCancellable": false,
			"cancelledAt":   now,
			"cancelReason":  reqBody.Reason,
			"updatedAt":     now,
		},
	}

	// Guard on the current status so two concurrent cancels (or a cancel
	// racing an admin transition) cannot both apply.
	result, err := orderCollection().UpdateOne(ctx,
		bson.M{"_id": order.ID, "orderStatus": models.OrderStatusConfirmed}, update)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Failed to cancel order")
	}
	if result.ModifiedCount == 0 {
		middlewares.RecordOrderOperation("cancel", false)
		return responses.Error(c, fiber.StatusBadRequest, "Order can no longer be cancelled")
	}

	RestoreStock(ctx, order.OrderItems)
	middlewares.RecordOrderOperation("cancel", true)

	var updated models.Order
	if err = orderCollection().FindOne(ctx, bson.M{"_id": order.ID}).Decode(&updated); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Failed to fetch order")
	}

	return responses.Ok(c, "Order cancelled successfully", &fiber.Map{"order": updated})
}

// VerifyPayment checks the Razorpay signature for a UPI order and marks it
// paid.
func VerifyPayment(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	order, status, message := loadOwnedOrder(ctx, c)
	if order == nil {
		return responses.Error(c, status, message)
	}

	var verifyReq struct {
		PaymentID string `json:"paymentId"`
		Signature string `json:"signature"`
	}
	if err := c.BodyParser(&verifyReq); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if order.PaymentMethod != models.PaymentMethodUPI || order.RazorpayOrderID == "" {
		return responses.Error(c, fiber.StatusBadRequest, "Order does not require payment verification")
	}

	// Signature is HMAC-SHA256 of "<razorpayOrderId>|<paymentId>".
	h := hmac.New(sha256.New, []byte(configs.EnvRazorpayKeySecret()))
	h.Write([]byte(order.RazorpayOrderID + "|" + verifyReq.PaymentID))
	expectedSignature := hex.EncodeToString(h.Sum(nil))

	if !hmac.Equal([]byte(verifyReq.Signature), []byte(expectedSignature)) {
		_, _ = orderCollection().UpdateOne(ctx, bson.M{"_id": order.ID},
			bson.M{"$set": bson.M{"paymentStatus": models.PaymentStatusFailed, "updatedAt": time.Now()}})
		return responses.Error(c, fiber.StatusBadRequest, "Invalid payment signature")
	}

	_, err := orderCollection().UpdateOne(ctx, bson.M{"_id": order.ID},
		bson.M{"$set": bson.M{
			"paymentStatus": models.PaymentStatusPaid,
			"paymentId":     verifyReq.PaymentID,
			"updatedAt":     time.Now(),
		}})
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Failed to update order")
	}

	return responses.Ok(c, "Payment verified successfully", &fiber.Map{
		"orderId":   order.ID.Hex(),
		"paymentId": verifyReq.PaymentID,
	})
}

// DeleteOrder purges a terminal order from the owner's history.
func DeleteOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	order, status, message := loadOwnedOrder(ctx, c)
	if order == nil {
		return responses.Error(c, status, message)
	}

	if !models.IsTerminalStatus(order.OrderStatus) {
		return responses.Error(c, fiber.StatusBadRequest, "Cannot delete active order")
	}

	if _, err := orderCollection().DeleteOne(ctx, bson.M{"_id": order.ID}); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Failed to delete order")
	}

	return responses.Ok(c, "Order removed", nil)
}
