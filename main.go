package main

import (
	"os"

	"github.com/adityapawar327/Kick-It-Up/config"
	"github.com/adityapawar327/Kick-It-Up/middleware"
	"github.com/adityapawar327/Kick-It-Up/utils"

	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.LoadConfig()

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		utils.Fatal("failed to connect to database", map[string]any{"error": err.Error()})
	}

	if os.Getenv("RESET_DB") == "true" {
		if err := config.ResetAndMigrate(db); err != nil {
			utils.Fatal("failed to reset database", map[string]any{"error": err.Error()})
		}
	} else if err := config.Migrate(db); err != nil {
		utils.Fatal("failed to migrate database", map[string]any{"error": err.Error()})
	}

	app := fiber.New(fiber.Config{
		AppName:      "Kick It Up",
		ServerHeader: "Kick It Up Server/1.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default 500 statuscode
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			// Retrieve the custom statuscode if it's a *fiber.Error
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			return c.Status(code).JSON(fiber.Map{
				"error": msg,
			})
		},
	})

	middleware.SetupMiddleware(app)

	// Health Check Endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "success",
			"message": "API is healthy",
		})
	})

	// Uploaded sneaker images
	app.Static("/uploads", "./uploads")

	setupRoutes(app, db)

	middleware.SetupErrorHandler(app)

	utils.Info("server starting", map[string]any{"host": cfg.HOST, "port": cfg.AppPort})

	if err := app.Listen(cfg.HOST + ":" + cfg.AppPort); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}
