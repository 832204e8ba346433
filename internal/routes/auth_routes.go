package routes

import (
	"github.com/gofiber/fiber/v2"
	"volunteerhub/internal/controllers"
)

func SetupAuth(app *fiber.App, secret string) {
	auth := app.Group("/api/auth")

	auth.Post("/register", controllers.RegisterHandler(secret))
	auth.Post("/login", controllers.LoginHandler(secret))
}
