// Package routes wires repositories, services and handlers and binds
// them to the HTTP surface.
package routes

import (
	"context"
	"log"

	"fintrack/internal/config"
	"fintrack/internal/handlers"
	"fintrack/internal/middleware"
	"fintrack/internal/repositories"
	"fintrack/internal/repositories/cache"
	"fintrack/internal/services/auth"
	"fintrack/internal/services/categorizer"
	"fintrack/internal/services/friend"
	"fintrack/internal/services/ledger"
	"fintrack/internal/services/notification"
	"fintrack/internal/services/pin"
	"fintrack/internal/services/transfer"
	"fintrack/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes builds the dependency graph and registers every route.
// walletCache may be nil when Redis is not configured; wallet reads
// then always hit the database.
func SetupRoutes(app *fiber.App, db *gorm.DB, walletCache *cache.WalletCache) {
	userRepo := repositories.NewUserRepository(db)
	walletRepo := repositories.NewWalletRepository(db)
	ledgerRepo := repositories.NewLedgerRepository(db)
	friendRepo := repositories.NewFriendRepository(db)

	var readCache wallet.Cache
	var invalidator transfer.Cache
	var pinCache pin.Cache
	if walletCache != nil {
		readCache = walletCache
		invalidator = walletCache
		pinCache = walletCache
	}

	gem, err := categorizer.NewGemini(
		context.Background(),
		config.GetEnv("GEMINI_API_KEY", ""),
		config.GetEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		ledgerRepo,
	)
	if err != nil {
		log.Printf("gemini categorizer unavailable: %v", err)
	}
	// gem may be nil (no API key or client failure); a nil *Gemini
	// categorizes everything as Uncategorized, matching the behavior of
	// running without a configured model.
	var cat categorizer.Categorizer = gem

	notifier := notification.NewService()
	pinService := pin.NewService(walletRepo, userRepo, pinCache)
	mirror := ledger.NewService(ledgerRepo, cat)
	walletService := wallet.NewService(walletRepo, readCache, pinService, mirror)
	transferService := transfer.NewService(userRepo, walletRepo, pinService, mirror, invalidator, notifier)
	friendService := friend.NewService(friendRepo, userRepo, notifier)
	authService := auth.NewService(userRepo, walletRepo)

	authHandler := handlers.NewAuthHandler(authService)
	walletHandler := handlers.NewWalletHandler(walletService, transferService, pinService)
	friendHandler := handlers.NewFriendHandler(friendService)
	ledgerHandler := handlers.NewLedgerHandler(mirror)
	healthHandler := handlers.NewHealthHandler(db, walletCache)

	app.Get("/health", healthHandler.Check)

	api := app.Group("/api")

	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/refresh", authHandler.Refresh)

	protected := api.Use(middleware.Auth())

	walletGroup := protected.Group("/wallet")
	walletGroup.Get("/", walletHandler.GetWallet)
	walletGroup.Get("/history", walletHandler.GetHistory)
	walletGroup.Post("/pin", walletHandler.SetPin)
	walletGroup.Post("/pin/reset", walletHandler.ResetPin)
	walletGroup.Post("/topup", walletHandler.TopUp)
	walletGroup.Post("/transfer", walletHandler.Transfer)

	friendGroup := protected.Group("/friends")
	friendGroup.Get("/", friendHandler.List)
	friendGroup.Post("/request", friendHandler.SendRequest)
	friendGroup.Get("/requests", friendHandler.PendingRequests)
	friendGroup.Put("/accept/:id", friendHandler.Accept)
	friendGroup.Put("/reject/:id", friendHandler.Reject)
	friendGroup.Delete("/:id", friendHandler.Remove)

	protected.Get("/ledger", ledgerHandler.List)
}
