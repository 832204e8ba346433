package controllers

import (
	"context"
	"time"

	"volunteerhub/dto"
	"volunteerhub/internal/apperr"
	"volunteerhub/internal/middleware"
	"volunteerhub/internal/services"
	repo "volunteerhub/internal/repository"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func eventIDParam(c *fiber.Ctx) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return bson.NilObjectID, apperr.New(apperr.Validation, "invalid event id")
	}
	return oid, nil
}

// ListEventsHandler godoc
// @Summary List events
// @Description All events sorted by start time, with organizer, creator and roster expanded
// @Tags events
// @Produce json
// @Success 200 {array} dto.EventView
// @Router /api/events [get]
func ListEventsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		views, err := services.ListEvents(ctx)
		if err != nil {
			return err
		}
		return c.JSON(views)
	}
}

// CreateEventHandler godoc
// @Summary Create an event
// @Description The caller becomes the event's creator
// @Tags events
// @Accept json
// @Produce json
// @Param body body dto.EventRequest true "Event data"
// @Success 201 {object} models.Event
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/events [post]
func CreateEventHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.EventRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.New(apperr.Validation, "invalid request body")
		}
		if msgs := dto.ValidateStruct(body); msgs != nil {
			return apperr.Fields(msgs)
		}

		uid, err := middleware.UIDObjectID(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		event, err := services.CreateEvent(ctx, body, uid)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(event)
	}
}

// UpdateEventHandler godoc
// @Summary Update an event
// @Description Creator-only full replace of the editable fields
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event id"
// @Param body body dto.EventRequest true "Event data"
// @Success 200 {object} models.Event
// @Failure 403 {object} dto.ErrorResponse "Not the creator"
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/events/{id} [put]
func UpdateEventHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		eventID, err := eventIDParam(c)
		if err != nil {
			return err
		}

		var body dto.EventRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.New(apperr.Validation, "invalid request body")
		}
		if msgs := dto.ValidateStruct(body); msgs != nil {
			return apperr.Fields(msgs)
		}

		uid, err := middleware.UIDObjectID(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := services.OwnEvent(ctx, services.MongoRoster{}, eventID, uid); err != nil {
			return err
		}
		if err := services.UpdateEvent(ctx, eventID, body); err != nil {
			return err
		}

		updated, err := repo.GetEventByID(ctx, eventID)
		if err != nil {
			return err
		}
		return c.JSON(updated)
	}
}

// DeleteEventHandler godoc
// @Summary Delete an event
// @Description Creator-only hard delete; existing registrations do not block it
// @Tags events
// @Produce json
// @Param id path string true "Event id"
// @Success 200 {object} map[string]string
// @Failure 403 {object} dto.ErrorResponse "Not the creator"
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/events/{id} [delete]
func DeleteEventHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		eventID, err := eventIDParam(c)
		if err != nil {
			return err
		}

		uid, err := middleware.UIDObjectID(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := services.OwnEvent(ctx, services.MongoRoster{}, eventID, uid); err != nil {
			return err
		}
		if err := repo.DeleteEvent(ctx, eventID); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "event deleted"})
	}
}

// RegisterParticipantHandler godoc
// @Summary Join an event
// @Description Adds the caller to the roster; duplicate joins are absorbed
// @Tags events
// @Produce json
// @Param id path string true "Event id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Participant limit reached"
// @Router /api/events/{id}/register [post]
func RegisterParticipantHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		eventID, err := eventIDParam(c)
		if err != nil {
			return err
		}
		uid, err := middleware.UIDObjectID(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := services.JoinEvent(ctx, services.MongoRoster{}, eventID, uid); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "registered"})
	}
}

// CancelParticipationHandler godoc
// @Summary Leave an event
// @Description Removes the caller from the roster; a no-op when not registered
// @Tags events
// @Produce json
// @Param id path string true "Event id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/events/{id}/cancel [post]
func CancelParticipationHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		eventID, err := eventIDParam(c)
		if err != nil {
			return err
		}
		uid, err := middleware.UIDObjectID(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := services.LeaveEvent(ctx, services.MongoRoster{}, eventID, uid); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "participation cancelled"})
	}
}
