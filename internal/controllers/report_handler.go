package controllers

import (
	"context"
	"time"

	"volunteerhub/dto"
	"volunteerhub/internal/apperr"
	"volunteerhub/internal/middleware"
	"volunteerhub/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// CreateReportHandler godoc
// @Summary File an activity report
// @Tags reports
// @Accept json
// @Produce json
// @Param body body dto.ReportRequest true "Report data"
// @Success 201 {object} models.ActivityReport
// @Failure 400 {object} dto.ErrorResponse "Validation errors"
// @Router /api/activity-reports [post]
func CreateReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.ReportRequest
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

		report, err := services.FileReport(ctx, uid, body)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(report)
	}
}

// DeleteReportHandler godoc
// @Summary Delete own report
// @Description A report id belonging to someone else reads as not found
// @Tags reports
// @Produce json
// @Param id path string true "Report id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/reports/{id} [delete]
func DeleteReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reportID, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return apperr.New(apperr.Validation, "invalid report id")
		}

		uid, err := middleware.UIDObjectID(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := services.DeleteReport(ctx, services.MongoReports{}, uid, reportID); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "report deleted"})
	}
}
