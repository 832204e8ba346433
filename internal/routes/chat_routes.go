package routes

import (
	"github.com/gofiber/fiber/v2"
	"volunteerhub/internal/controllers"
	"volunteerhub/internal/services"
)

func SetupChat(app *fiber.App, svc *services.ChatService) {
	app.Post("/api/chat", controllers.ChatHandler(svc))
}
