// main.go - Event scoring dashboard entrypoint
package main

import (
	"log"
	"os"
	"time"

	"eventscore/config"
	"eventscore/database"
	"eventscore/handlers"
	"eventscore/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := config.Load()

	// Create upload directory if it doesn't exist
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	// Initialize database
	db := database.Connect(cfg)
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatalf("❌ Failed to seed database: %v", err)
	}

	// Services and handlers
	teamService := services.NewTeamService(db)
	performanceService := services.NewPerformanceService(db)

	teamHandler := handlers.NewTeamHandler(teamService, cfg)
	performanceHandler := handlers.NewPerformanceHandler(performanceService)
	pageHandler := handlers.NewPageHandler(teamService, performanceService)

	// Create Fiber app with server-side templates
	engine := html.New("./views", ".html")
	engine.AddFunc("addOne", func(i int) int { return i + 1 })
	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: customErrorHandler,
		BodyLimit:    cfg.MaxUploadBytes,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Static assets, including uploaded photos
	app.Static("/static", "./static")

	// HTML routes
	app.Get("/", pageHandler.Index)
	app.Get("/admin", pageHandler.Admin)
	app.Get("/leaderboard", pageHandler.Leaderboard)
	app.Get("/performances", pageHandler.Performances)

	// API routes
	api := app.Group("/api")
	api.Get("/teams", teamHandler.GetTeams)
	api.Put("/teams/:id", teamHandler.UpdateTeam)
	api.Post("/teams/:id/upload_photo", teamHandler.UploadPhoto)
	api.Post("/finalize_results", teamHandler.FinalizeResults)
	api.Get("/performances", performanceHandler.GetPerformances)
	api.Post("/performances/:id/complete", performanceHandler.Complete)
	api.Post("/performances/:id/uncomplete", performanceHandler.Uncomplete)
	api.Put("/performances/:id/notes", performanceHandler.UpdateNotes)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})

	log.Printf("🚀 HTTP server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}
