package responses

import "github.com/gofiber/fiber/v2"

// ApiResponse is the envelope every endpoint returns.
type ApiResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Data    *fiber.Map `json:"data,omitempty"`
}

// Error writes a failure envelope with the given status code.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ApiResponse{
		Success: false,
		Message: message,
	})
}

// Ok writes a success envelope with status 200.
func Ok(c *fiber.Ctx, message string, data *fiber.Map) error {
	return c.Status(fiber.StatusOK).JSON(ApiResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created writes a success envelope with status 201.
func Created(c *fiber.Ctx, message string, data *fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(ApiResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}
