package handlers

import (
	"fintrack/internal/repositories/cache"
	"fintrack/internal/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db    *gorm.DB
	cache *cache.WalletCache
}

func NewHealthHandler(db *gorm.DB, walletCache *cache.WalletCache) *HealthHandler {
	return &HealthHandler{db: db, cache: walletCache}
}

// Check handles GET /health. Reports database and cache connectivity.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status := fiber.Map{
		"status":   "ok",
		"database": "ok",
		"cache":    "ok",
	}
	healthy := true

	if sqlDB, err := h.db.DB(); err != nil || sqlDB.Ping() != nil {
		status["database"] = "unreachable"
		healthy = false
	}

	if h.cache != nil {
		if err := h.cache.HealthCheck(c.Context()); err != nil {
			status["cache"] = "unreachable"
			healthy = false
		}
	} else {
		status["cache"] = "disabled"
	}

	if !healthy {
		status["status"] = "degraded"
		return utils.Respond(c, fiber.StatusServiceUnavailable, status)
	}
	return utils.Success(c, status)
}
