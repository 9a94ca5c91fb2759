package utils

import (
	stderrors "errors"
	"log"

	"fintrack/internal/errors"

	"github.com/gofiber/fiber/v2"
)

// Respond sends a JSON response with the specified status code.
func Respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// Success sends a successful JSON response.
func Success(c *fiber.Ctx, data interface{}) error {
	return Respond(c, fiber.StatusOK, data)
}

// Message sends a `{message}` body with the given status.
func Message(c *fiber.Ctx, status int, message string) error {
	return Respond(c, status, fiber.Map{"message": message})
}

// BadRequest sends a `{message}` error response with status 400.
func BadRequest(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a `{message}` error response with status 401.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusUnauthorized, message)
}

// NotFound sends a `{message}` error response with status 404.
func NotFound(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusNotFound, message)
}

// InternalError sends a `{message}` error response with status 500.
func InternalError(c *fiber.Ctx, message string) error {
	return Message(c, fiber.StatusInternalServerError, message)
}

// HandleError maps a service error to its HTTP response. Domain errors
// carry their own status; anything else is a logged 500.
func HandleError(c *fiber.Ctx, err error) error {
	var domainErr *errors.DomainError
	if stderrors.As(err, &domainErr) {
		return Message(c, domainErr.Status, domainErr.Message)
	}
	log.Printf("%s %s failed: %v", c.Method(), c.Path(), err)
	return InternalError(c, "internal server error")
}
