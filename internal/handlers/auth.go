// Package handlers contains the HTTP layer. Handlers parse and
// validate request bodies, delegate to the services and translate
// domain errors into `{message}` responses.
package handlers

import (
	"fintrack/internal/services/auth"
	"fintrack/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	auth auth.Service
}

func NewAuthHandler(service auth.Service) *AuthHandler {
	return &AuthHandler{auth: service}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}
	if input.Name == "" || input.Email == "" || input.Phone == "" || input.Password == "" {
		return utils.BadRequest(c, "name, email, phone and password are required")
	}

	user, err := h.auth.Register(input.Name, input.Email, input.Phone, input.Password)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.Respond(c, fiber.StatusCreated, fiber.Map{
		"message": "Account created",
		"user":    user,
	})
}

// Login handles POST /api/login. The identifier may be an email
// address or a phone number.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}
	if input.Identifier == "" || input.Password == "" {
		return utils.BadRequest(c, "identifier and password are required")
	}

	user, access, refresh, err := h.auth.Login(input.Identifier, input.Password)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"user":          user,
		"access_token":  access,
		"refresh_token": refresh,
	})
}

// Refresh handles POST /api/refresh.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&input); err != nil || input.RefreshToken == "" {
		return utils.BadRequest(c, "refresh token is required")
	}

	access, refresh, err := h.auth.RefreshTokens(input.RefreshToken)
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
	})
}
