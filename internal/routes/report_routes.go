package routes

import (
	"github.com/gofiber/fiber/v2"
	"volunteerhub/internal/controllers"
	"volunteerhub/internal/middleware"
)

func SetupReports(app *fiber.App, secret string) {
	protected := middleware.Protected(secret)

	app.Post("/api/activity-reports", protected, controllers.CreateReportHandler())
	app.Delete("/api/reports/:id", protected, controllers.DeleteReportHandler())
}
