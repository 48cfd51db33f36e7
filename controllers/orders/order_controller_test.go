package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGetOrdersRejectsInvalidStatusFilter(t *testing.T) {
	app := fiber.New()
	app.Get("/api/orders", func(c *fiber.Ctx) error {
		c.Locals("userId", primitive.NewObjectID().Hex())
		return c.Next()
	}, GetOrders)

	req := httptest.NewRequest(fiber.MethodGet, "/api/orders?status=Shipped", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
