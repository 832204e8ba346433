package routes

import (
	"github.com/gofiber/fiber/v2"
	"volunteerhub/internal/controllers"
)

func SetupOrganizers(app *fiber.App) {
	organizers := app.Group("/api/organizers")

	organizers.Get("/", controllers.ListOrganizersHandler())
	organizers.Post("/", controllers.CreateOrganizerHandler())
	organizers.Delete("/:id", controllers.DeleteOrganizerHandler())
}
