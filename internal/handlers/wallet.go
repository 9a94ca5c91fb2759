package handlers

import (
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/money"
	"fintrack/internal/services/pin"
	"fintrack/internal/services/transfer"
	"fintrack/internal/services/wallet"
	"fintrack/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// WalletHandler exposes the wallet endpoints: balance, history, PIN
// management, top-up and peer transfer.
type WalletHandler struct {
	wallets   wallet.Service
	transfers transfer.Service
	pins      pin.Service
}

func NewWalletHandler(wallets wallet.Service, transfers transfer.Service, pins pin.Service) *WalletHandler {
	return &WalletHandler{wallets: wallets, transfers: transfers, pins: pins}
}

// walletResponse strips internal fields (pin hash, minor units) from
// the wallet before it leaves the API.
func walletResponse(w *models.Wallet) fiber.Map {
	return fiber.Map{
		"balance":  money.FromMinor(w.Balance),
		"currency": w.Currency,
		"has_pin":  w.HasPin(),
		"locked":   w.Locked,
	}
}

// GetWallet handles GET /api/wallet.
func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	claims, err := middleware.Claims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	w, err := h.wallets.GetWallet(c.Context(), claims.UserID)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Success(c, walletResponse(w))
}

// GetHistory handles GET /api/wallet/history.
func (h *WalletHandler) GetHistory(c *fiber.Ctx) error {
	claims, err := middleware.Claims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	history, err := h.wallets.History(c.Context(), claims.UserID, limit, offset)
	if err != nil {
		return utils.HandleError(c, err)
	}

	records := make([]fiber.Map, 0, len(history))
	for _, rec := range history {
		entry := fiber.Map{
			"kind":        rec.Kind,
			"amount":      money.FromMinor(rec.Amount),
			"description": rec.Description,
			"status":      rec.Status,
			"reference":   rec.Reference,
			"created_at":  rec.CreatedAt,
		}
		if rec.Counterparty != nil {
			entry["counterparty"] = fiber.Map{
				"name":  rec.Counterparty.Name,
				"email": rec.Counterparty.Email,
			}
		}
		records = append(records, entry)
	}
	return utils.Success(c, records)
}

// SetPin handles POST /api/wallet/pin.
func (h *WalletHandler) SetPin(c *fiber.Ctx) error {
	claims, err := middleware.Claims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Pin string `json:"pin"`
	}
	if err := c.BodyParser(&input); err != nil || input.Pin == "" {
		return utils.BadRequest(c, "PIN is required")
	}

	if err := h.pins.Set(c.Context(), claims.UserID, input.Pin); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Message(c, fiber.StatusOK, "Wallet PIN set")
}

// ResetPin handles POST /api/wallet/pin/reset. The account password is
// re-verified before the PIN changes.
func (h *WalletHandler) ResetPin(c *fiber.Ctx) error {
	claims, err := middleware.Claims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Password string `json:"password"`
		Pin      string `json:"pin"`
	}
	if err := c.BodyParser(&input); err != nil || input.Password == "" || input.Pin == "" {
		return utils.BadRequest(c, "password and PIN are required")
	}

	if err := h.pins.Reset(c.Context(), claims.UserID, input.Password, input.Pin); err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Message(c, fiber.StatusOK, "Wallet PIN updated")
}

// TopUp handles POST /api/wallet/topup.
func (h *WalletHandler) TopUp(c *fiber.Ctx) error {
	claims, err := middleware.Claims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Amount float64 `json:"amount"`
		Pin    string  `json:"pin"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}
	if input.Pin == "" {
		return utils.BadRequest(c, "PIN is required")
	}

	amount, err := money.ToMinor(input.Amount)
	if err != nil {
		return utils.BadRequest(c, "invalid amount")
	}

	w, err := h.wallets.TopUp(c.Context(), claims.UserID, amount, input.Pin)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return utils.Success(c, walletResponse(w))
}

// Transfer handles POST /api/wallet/transfer.
func (h *WalletHandler) Transfer(c *fiber.Ctx) error {
	claims, err := middleware.Claims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Phone       string  `json:"phone"`
		Amount      float64 `json:"amount"`
		Description string  `json:"description"`
		Pin         string  `json:"pin"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}
	if input.Phone == "" {
		return utils.BadRequest(c, "recipient phone is required")
	}
	if input.Pin == "" {
		return utils.BadRequest(c, "PIN is required")
	}

	amount, err := money.ToMinor(input.Amount)
	if err != nil {
		return utils.BadRequest(c, "invalid amount")
	}

	result, err := h.transfers.Transfer(c.Context(), claims.UserID, transfer.Request{
		RecipientPhone: input.Phone,
		Amount:         amount,
		Description:    input.Description,
		Pin:            input.Pin,
	})
	if err != nil {
		return utils.HandleError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"message":   "Transfer successful",
		"balance":   money.FromMinor(result.SenderBalance),
		"reference": result.Reference,
	})
}
