package controllers

import (
	"context"
	"time"

	"github.com/Adi-1655/snackshub/models"
	"github.com/Adi-1655/snackshub/responses"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type reportTotals struct {
	TotalRevenue    float64              `bson:"totalRevenue"`
	TotalOrders     int                  `bson:"totalOrders"`
	UniqueCustomers []primitive.ObjectID `bson:"uniqueCustomers"`
}

type topProduct struct {
	Name          string  `bson:"_id" json:"name"`
	TotalQuantity int     `bson:"totalQuantity" json:"totalQuantity"`
	TotalRevenue  float64 `bson:"totalRevenue" json:"totalRevenue"`
}

// GetSalesReport aggregates delivered orders over a trailing window into
// totals, a zero-filled chart series and the top products by revenue.
func GetSalesReport(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	rangeKey := c.Params("range")
	switch rangeKey {
	case rangeDaily, rangeWeekly, rangeMonthly, rangeYearly:
	default:
		return responses.Error(c, fiber.StatusBadRequest, "Range must be daily, weekly, monthly or yearly")
	}

	now := time.Now()
	windowStart, buckets := reportBuckets(rangeKey, now)

	// Only delivered orders count as revenue.
	matchStage := bson.M{
		"createdAt":   bson.M{"$gte": windowStart, "$lte": now},
		"orderStatus": models.OrderStatusDelivered,
	}

	totals, err := aggregateTotals(ctx, matchStage)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error aggregating sales totals")
	}

	dayRows, err := aggregateByDay(ctx, matchStage)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error aggregating sales series")
	}

	topProducts, err := aggregateTopProducts(ctx, matchStage)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error aggregating top products")
	}

	chartData := foldDayStats(buckets, dayRows, now.Location())
	for i := range chartData {
		chartData[i].Revenue = roundCurrency(chartData[i].Revenue)
	}

	return responses.Ok(c, "Sales report generated", &fiber.Map{
		"range":          rangeKey,
		"totalRevenue":   roundCurrency(totals.TotalRevenue),
		"totalOrders":    totals.TotalOrders,
		"avgOrderValue":  averageOrderValue(totals.TotalRevenue, totals.TotalOrders),
		"totalCustomers": len(totals.UniqueCustomers),
		"chartData":      chartData,
		"topProducts":    topProducts,
	})
}

func aggregateTotals(ctx context.Context, matchStage bson.M) (reportTotals, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: matchStage}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":             nil,
			"totalRevenue":    bson.M{"$sum": "$totalAmount"},
			"totalOrders":     bson.M{"$sum": 1},
			"uniqueCustomers": bson.M{"$addToSet": "$user"},
		}}},
	}

	cursor, err := orderCollection().Aggregate(ctx, pipeline)
	if err != nil {
		return reportTotals{}, err
	}
	defer cursor.Close(ctx)

	var results []reportTotals
	if err = cursor.All(ctx, &results); err != nil {
		return reportTotals{}, err
	}
	if len(results) == 0 {
		return reportTotals{}, nil
	}
	return results[0], nil
}

func aggregateByDay(ctx context.Context, matchStage bson.M) ([]dayStat, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: matchStage}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   "$createdAt",
			}},
			"revenue": bson.M{"$sum": "$totalAmount"},
			"orders":  bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := orderCollection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []dayStat
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func aggregateTopProducts(ctx context.Context, matchStage bson.M) ([]topProduct, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: matchStage}},
		bson.D{{Key: "$unwind", Value: "$orderItems"}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":           "$orderItems.name",
			"totalQuantity": bson.M{"$sum": "$orderItems.quantity"},
			"totalRevenue": bson.M{"$sum": bson.M{
				"$multiply": []interface{}{"$orderItems.price", "$orderItems.quantity"},
			}},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"totalRevenue": -1}}},
		bson.D{{Key: "$limit", Value: 5}},
	}

	cursor, err := orderCollection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []topProduct{}
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
