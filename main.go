package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/parts-pile/vehicle-filter/config"
	h "github.com/parts-pile/vehicle-filter/handlers"
	"github.com/parts-pile/vehicle-filter/selection"
	"github.com/parts-pile/vehicle-filter/tracing"
	"github.com/parts-pile/vehicle-filter/vpic"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	if cfg.TraceRequests {
		shutdown := tracing.Setup()
		defer shutdown(context.Background())
	}

	// vPIC client shared by both pages
	client := vpic.NewClient(vpic.Config{
		BaseURL:   cfg.VPICAPIURL,
		Timeout:   cfg.VPICTimeout,
		RateLimit: cfg.VPICRateLimit,
		RateBurst: cfg.VPICRateBurst,
	})

	// Initialize selection page store
	pages, err := selection.NewStore(client, cfg.PageTTL, config.StartYear, func() int {
		return time.Now().Year()
	})
	if err != nil {
		log.Fatalf("Failed to initialize page store: %v", err)
	}
	defer pages.Close()

	app := fiber.New(fiber.Config{
		ErrorHandler: h.CustomErrorHandler,
		ReadTimeout:  30 * time.Second, // Prevent long-running requests
		WriteTimeout: 30 * time.Second, // Prevent long-running responses
	})

	app.Use(recover.New())

	// Add rate limiter
	app.Use(h.RateLimiter(cfg.ServerRateLimitMax, cfg.ServerRateLimitExp))

	// Add logger middleware
	app.Use(logger.New())

	h.Register(app, h.New(client, pages), h.RateLimiter(cfg.SelectionRateLimitMax, cfg.ServerRateLimitExp))

	fmt.Printf("Starting server on port %s (vPIC API %s)...\n", cfg.ServerPort, cfg.VPICAPIURL)
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
