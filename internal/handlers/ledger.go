package handlers

import (
	"fintrack/internal/middleware"
	"fintrack/internal/money"
	"fintrack/internal/services/ledger"
	"fintrack/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type LedgerHandler struct {
	ledger ledger.Service
}

func NewLedgerHandler(service ledger.Service) *LedgerHandler {
	return &LedgerHandler{ledger: service}
}

// List handles GET /api/ledger.
func (h *LedgerHandler) List(c *fiber.Ctx) error {
	claims, err := middleware.Claims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	entries, err := h.ledger.List(c.Context(), claims.UserID, limit, offset)
	if err != nil {
		return utils.HandleError(c, err)
	}

	out := make([]fiber.Map, 0, len(entries))
	for _, e := range entries {
		out = append(out, fiber.Map{
			"id":           e.ID,
			"type":         e.Type,
			"sub_type":     e.SubType,
			"title":        e.Title,
			"amount":       money.FromMinor(e.Amount),
			"category":     e.Category,
			"payment_mode": e.PaymentMode,
			"date":         e.Date,
		})
	}
	return utils.Success(c, out)
}
