package routes

import (
	"github.com/gofiber/fiber/v2"
	"volunteerhub/internal/controllers"
	"volunteerhub/internal/middleware"
)

func SetupVolunteers(app *fiber.App, secret string) {
	me := app.Group("/api/volunteers/me", middleware.Protected(secret))

	me.Get("/", controllers.MeHandler())
	me.Get("/reports", controllers.MyReportsHandler())
}
