package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/recipefinder/backend/config"
	"github.com/recipefinder/backend/internal/database"
	"github.com/recipefinder/backend/internal/middleware"
	"github.com/recipefinder/backend/internal/router"
	"github.com/recipefinder/backend/internal/server"
	"github.com/recipefinder/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	deps := router.Deps{
		DB:                db,
		AuthService:       service.NewAuthService(db, cfg.JWTSecret),
		IngredientService: service.NewIngredientService(db),
		RecipeService:     service.NewRecipeService(db),
		SearchService:     service.NewSearchService(db),
	}

	// Redis is optional; without it mutations are simply not rate limited.
	if redisClient, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Redis unavailable, rate limiting disabled: %v", err)
	} else {
		deps.RateLimiter = middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     60,
			KeyPrefix: "ratelimit",
		})
	}

	// S3 is optional; without it photo uploads return 503.
	if s3Config, err := config.NewS3Config(context.Background()); err != nil {
		log.Printf("S3 unavailable, photo uploads disabled: %v", err)
	} else {
		deps.ImageService = service.NewImageService(s3Config)
	}

	srv := server.New(router.SetupRouter(deps), cfg.ServerHost+":"+cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
