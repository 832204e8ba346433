package routes

import (
	"github.com/gofiber/fiber/v2"
	"volunteerhub/internal/controllers"
	"volunteerhub/internal/middleware"
)

func SetupEvents(app *fiber.App, secret string) {
	events := app.Group("/api/events")

	// Listing is public
	events.Get("/", controllers.ListEventsHandler())

	protected := middleware.Protected(secret)
	events.Post("/", protected, controllers.CreateEventHandler())
	events.Put("/:id", protected, controllers.UpdateEventHandler())
	events.Delete("/:id", protected, controllers.DeleteEventHandler())
	events.Post("/:id/register", protected, controllers.RegisterParticipantHandler())
	events.Post("/:id/cancel", protected, controllers.CancelParticipationHandler())
}
