package middlewares

import (
	"context"
	"strings"
	"time"

	"github.com/Adi-1655/snackshub/configs"
	"github.com/Adi-1655/snackshub/models"
	"github.com/Adi-1655/snackshub/responses"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthMiddleware validates the bearer token and stores the caller's id and
// role in Locals.
func AuthMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return responses.Error(c, fiber.StatusUnauthorized, "No auth token, access denied")
	}

	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 || bearerToken[0] != "Bearer" {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid authorization header format")
	}

	claims := &jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(bearerToken[1], claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.EnvJWTSecret()), nil
	})
	if err != nil || !token.Valid {
		return responses.Error(c, fiber.StatusUnauthorized, "Token verification failed, access denied")
	}

	userId, ok := (*claims)["id"].(string)
	if !ok || userId == "" {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	c.Locals("userId", userId)
	if role, ok := (*claims)["role"].(string); ok {
		c.Locals("role", role)
	}

	return c.Next()
}

// AdminMiddleware re-checks the user document so a revoked or deactivated
// admin cannot keep using an old token. Must run after AuthMiddleware.
func AdminMiddleware(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	userObjectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid user ID format")
	}

	var user models.User
	err = configs.GetCollection("users").FindOne(ctx, bson.M{"_id": userObjectID}).Decode(&user)
	if err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "User not found")
	}

	if user.Role != models.RoleAdmin || !user.IsActive {
		return responses.Error(c, fiber.StatusForbidden, "Admin access required")
	}

	return c.Next()
}
