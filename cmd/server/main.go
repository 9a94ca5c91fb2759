// Package main is the entry point for the fintrack API server.
package main

import (
	"context"
	"log"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/repositories"
	"fintrack/internal/repositories/cache"
	"fintrack/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadEnv()

	db, err := repositories.InitDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				log.Printf("failed to close database connection: %v", err)
			}
		}
	}()

	// Redis is optional. Without it wallet reads go straight to
	// PostgreSQL.
	var walletCache *cache.WalletCache
	if host := config.GetEnv("REDIS_HOST", ""); host != "" {
		client := cache.NewRedisClient(&cache.RedisConfig{
			Host:     host,
			Port:     config.GetEnv("REDIS_PORT", "6379"),
			Password: config.GetEnv("REDIS_PASSWORD", ""),
			DB:       config.GetIntEnv("REDIS_DB", 0),
		})
		walletCache = cache.NewWalletCache(client)
		if err := walletCache.HealthCheck(context.Background()); err != nil {
			log.Printf("redis unavailable, running without wallet cache: %v", err)
			walletCache = nil
		} else {
			defer func() {
				if err := walletCache.Close(); err != nil {
					log.Printf("failed to close redis connection: %v", err)
				}
			}()
		}
	}

	app := fiber.New(fiber.Config{
		AppName: "fintrack",
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Brute-force protection on the credential endpoints.
	for _, path := range []string{"/api/register", "/api/login"} {
		app.Use(path, limiter.New(limiter.Config{
			Max:        5,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"message": "Too many requests. Please try again later.",
				})
			},
		}))
	}

	routes.SetupRoutes(app, db, walletCache)

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}
