package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	"github.com/cblte/simple-filament-manager/internal/config"
	"github.com/cblte/simple-filament-manager/internal/database"
	"github.com/cblte/simple-filament-manager/internal/handlers"
	"github.com/cblte/simple-filament-manager/internal/middleware"
	"github.com/cblte/simple-filament-manager/internal/store"
	"github.com/cblte/simple-filament-manager/web"

	_ "github.com/cblte/simple-filament-manager/docs/api" // Swagger docs
)

// @title Simple Filament Manager API
// @version 1.0.0
// @description Inventory of 3D-printing filament spools and vendor profiles
// @license.name MIT

// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	inventory := store.New(db)

	// Create Fiber app with the embedded view engine
	app := fiber.New(fiber.Config{
		Views:        web.Engine(),
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(middleware.VersionMiddleware())

	// Prometheus metrics
	prometheus := fiberprometheus.New("simple_filament_manager")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Static assets
	app.Use("/static", filesystem.New(filesystem.Config{
		Root: web.Static(),
	}))

	// Handlers
	filamentPages := &handlers.FilamentPages{Store: inventory}
	profilePages := &handlers.ProfilePages{Store: inventory}
	api := &handlers.APIHandler{Store: inventory}
	health := &handlers.HealthHandler{Cfg: cfg, DB: db}

	// Health
	app.Get("/health", health.Check)

	// HTML pages
	app.Get("/", filamentPages.List)
	app.Get("/filaments/new", filamentPages.NewForm)
	app.Post("/filaments/new", filamentPages.Create)
	app.Get("/filaments/:id/edit", filamentPages.EditForm)
	app.Post("/filaments/:id/update", filamentPages.Update)
	app.Post("/filaments/:id/delete", filamentPages.Delete)

	app.Get("/profiles", profilePages.List)
	app.Get("/profiles/new", profilePages.NewForm)
	app.Post("/profiles/new", profilePages.Create)
	app.Get("/profiles/:id/edit", profilePages.EditForm)
	app.Post("/profiles/:id/update", profilePages.Update)
	app.Post("/profiles/:id/delete", profilePages.Delete)

	// JSON API
	apiGroup := app.Group("/api")
	apiGroup.Get("/filaments", api.ListFilaments)
	apiGroup.Post("/filaments", api.CreateFilament)
	apiGroup.Get("/filaments/:id", api.GetFilament)
	apiGroup.Put("/filaments/:id", api.UpdateFilament)
	apiGroup.Delete("/filaments/:id", api.DeleteFilament)
	apiGroup.Get("/profiles", api.ListProfiles)
	apiGroup.Post("/profiles", api.CreateProfile)
	apiGroup.Get("/profiles/:id", api.GetProfile)
	apiGroup.Put("/profiles/:id", api.UpdateProfile)
	apiGroup.Delete("/profiles/:id", api.DeleteProfile)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status":    fiber.StatusNotFound,
				"message":   "[404] Resource Not Found",
				"ok":        false,
				"timestamp": time.Now().UTC().Format(time.RFC3339),
				"url":       c.OriginalURL(),
			})
		}
		return c.Status(fiber.StatusNotFound).Render("error", fiber.Map{
			"Title":   "Not Found",
			"Status":  fiber.StatusNotFound,
			"Message": "Page not found: " + c.OriginalURL(),
		}, "layout")
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	// Check if it's a Fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(code).JSON(fiber.Map{
			"status":    code,
			"message":   message,
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	}

	return c.Status(code).Render("error", fiber.Map{
		"Title":   "Error",
		"Status":  code,
		"Message": message,
	}, "layout")
}
