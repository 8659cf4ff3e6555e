package main

import (
	"context"
	"log"
	"time"

	"memorial-banner/internal/core/cache"
	"memorial-banner/internal/core/config"
	"memorial-banner/internal/core/logger"
	"memorial-banner/internal/core/server"
	banneradapter "memorial-banner/internal/features/banners/adapters"
	bannerdomain "memorial-banner/internal/features/banners/domain"
	bannerhandler "memorial-banner/internal/features/banners/handler"
	bannerservice "memorial-banner/internal/features/banners/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// @title Memorial Banner API
// @version 1.0
// @description Persists the banner (background image or colour) chosen for a memorial page.
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.Bool("enforce_plan", cfg.Banner.EnforcePlan),
	)

	// Initialize Redis and run Health Check
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to configure Redis", zap.Error(err))
	}
	defer redisCache.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = redisCache.Ping(ctx)
	cancel()
	if err != nil {
		l.Fatal("Redis Health Check Failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	// Initialize Banner Repository, Service & Handler
	bannerRepo := banneradapter.NewRedisBannerRepository(redisCache)
	bannerSvc := bannerservice.NewBannerService(bannerRepo, cfg.Banner)
	bannerHdl := bannerhandler.NewBannerHandler(bannerSvc, bannerdomain.AssetRoot(cfg.Banner.StaticURL))

	srv := server.New(cfg)

	// Register Routes
	bannerHdl.Register(srv.App)
	srv.App.Get("/healthz", func(c *fiber.Ctx) error {
		if err := redisCache.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "redis unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
