// @title VolunteerHub API
// @version 1.0
// @description Volunteer management backend: events, registrations, activity reports.
// @host localhost:8000
// @BasePath /

package main

import (
	"context"
	"log"
	"time"

	_ "volunteerhub/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	"volunteerhub/bootstrap"
	"volunteerhub/config"
	"volunteerhub/database"
	"volunteerhub/internal/apperr"
	"volunteerhub/internal/mailer"
	"volunteerhub/internal/routes"
	"volunteerhub/internal/scheduler"
	"volunteerhub/internal/services"

	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {

	// Load configuration (reads .env when present)
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		panic("JWT_SECRET is required")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	// Connect to the database
	client, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Fatal("mongodb connection failed", zap.Error(err))
	}
	defer client.Disconnect(context.Background())
	logger.Info("connected to mongodb", zap.String("db", cfg.MongoDB))

	// One volunteer per email, one organizer per contact
	if err := bootstrap.EnsureIndexes(database.DB); err != nil {
		logger.Fatal("ensure indexes failed", zap.Error(err))
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: apperr.ErrorHandler(cfg.Production()),
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:3000, http://localhost:3001",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger API document
	app.Get("/docs/*", swagger.HandlerDefault)

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	chatSvc := services.NewChatService(cfg.OpenRouterKey, cfg.HTTPReferer, cfg.AppTitle, logger)

	// Routes
	routes.SetupAuth(app, cfg.JWTSecret)
	routes.SetupEvents(app, cfg.JWTSecret)
	routes.SetupOrganizers(app)
	routes.SetupVolunteers(app, cfg.JWTSecret)
	routes.SetupReports(app, cfg.JWTSecret)
	routes.SetupChat(app, chatSvc)

	// 404 catch-all for unmatched routes
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "route not found"})
	})

	// Daily reminder sweep, independent of request handling
	relay := mailer.New(mailer.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	})
	go func() {
		err := scheduler.Run(context.Background(), cfg.ReminderRule, logger, func(ctx context.Context) {
			sweepCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
			defer cancel()

			sent, failed, err := services.SendEventReminders(
				sweepCtx, services.MongoReminderStore{}, relay, logger, time.Now())
			if err != nil {
				logger.Error("reminder sweep failed", zap.Error(err))
				return
			}
			logger.Info("reminder sweep done", zap.Int("sent", sent), zap.Int("failed", failed))
		})
		if err != nil && err != context.Canceled {
			logger.Error("reminder scheduler stopped", zap.Error(err))
		}
	}()

	// RUN SERVER
	log.Fatal(app.Listen(":" + cfg.Port))
}
