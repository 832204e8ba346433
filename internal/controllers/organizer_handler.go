package controllers

import (
	"context"
	"strings"
	"time"

	"volunteerhub/dto"
	"volunteerhub/internal/apperr"
	"volunteerhub/internal/models"
	repo "volunteerhub/internal/repository"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ListOrganizersHandler godoc
// @Summary List organizers
// @Tags organizers
// @Produce json
// @Success 200 {array} models.Organizer
// @Router /api/organizers [get]
func ListOrganizersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		organizers, err := repo.GetOrganizers(ctx)
		if err != nil {
			return err
		}
		if organizers == nil {
			organizers = []models.Organizer{}
		}
		return c.JSON(organizers)
	}
}

// CreateOrganizerHandler godoc
// @Summary Create a directory entry
// @Tags organizers
// @Accept json
// @Produce json
// @Param body body dto.OrganizerRequest true "Organizer data"
// @Success 201 {object} models.Organizer
// @Failure 400 {object} dto.ErrorResponse "Validation errors"
// @Failure 409 {object} dto.ErrorResponse "Contact already registered"
// @Router /api/organizers [post]
func CreateOrganizerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.OrganizerRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.New(apperr.Validation, "invalid request body")
		}
		if msgs := dto.ValidateStruct(body); msgs != nil {
			return apperr.Fields(msgs)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		organizer := models.Organizer{
			ID:          bson.NewObjectID(),
			Name:        strings.TrimSpace(body.Name),
			Contact:     strings.TrimSpace(body.Contact),
			Description: strings.TrimSpace(body.Description),
			CreatedAt:   time.Now().UTC(),
		}
		if err := repo.InsertOrganizer(ctx, organizer); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return apperr.New(apperr.Conflict, "an organizer with this contact already exists")
			}
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(organizer)
	}
}

// DeleteOrganizerHandler godoc
// @Summary Delete a directory entry
// @Description Events referencing the organizer keep the dangling id
// @Tags organizers
// @Produce json
// @Param id path string true "Organizer id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/organizers/{id} [delete]
func DeleteOrganizerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		oid, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return apperr.New(apperr.Validation, "invalid organizer id")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		deleted, err := repo.DeleteOrganizer(ctx, oid)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return apperr.New(apperr.NotFound, "organizer not found")
		}
		return c.JSON(fiber.Map{"message": "organizer deleted"})
	}
}
