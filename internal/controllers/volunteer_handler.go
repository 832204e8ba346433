package controllers

import (
	"context"
	"time"

	"volunteerhub/dto"
	"volunteerhub/internal/middleware"
	"volunteerhub/internal/services"

	"github.com/gofiber/fiber/v2"
)

// MeHandler godoc
// @Summary Own profile
// @Description Profile with totalEvents and totalHours derived from the report ledger
// @Tags volunteers
// @Produce json
// @Success 200 {object} dto.ProfileView
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/volunteers/me [get]
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := middleware.UIDObjectID(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		profile, err := services.Profile(ctx, uid)
		if err != nil {
			return err
		}
		return c.JSON(profile)
	}
}

// MyReportsHandler godoc
// @Summary Own reports
// @Description The caller's reports with each event's title and time window expanded
// @Tags volunteers
// @Produce json
// @Success 200 {object} map[string][]dto.ReportView
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/volunteers/me/reports [get]
func MyReportsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := middleware.UIDObjectID(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		reports, err := services.MyReports(ctx, uid)
		if err != nil {
			return err
		}
		if reports == nil {
			reports = []dto.ReportView{}
		}
		return c.JSON(fiber.Map{"reports": reports})
	}
}
