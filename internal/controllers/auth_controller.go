package controllers

import (
	"context"
	"time"

	"volunteerhub/dto"
	"volunteerhub/internal/apperr"
	"volunteerhub/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RegisterHandler godoc
// @Summary Register a new volunteer
// @Description Create a volunteer account and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse "Validation errors"
// @Failure 409 {object} dto.ErrorResponse "Email already in use"
// @Router /api/auth/register [post]
func RegisterHandler(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.RegisterRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.New(apperr.Validation, "invalid request body")
		}
		if msgs := dto.ValidateStruct(body); msgs != nil {
			return apperr.Fields(msgs)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		volunteer, err := services.RegisterVolunteer(ctx, body)
		if err != nil {
			return err
		}

		token, err := services.SignToken(secret, volunteer.ID)
		if err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
			Token: token,
			User:  services.UserViewOf(volunteer),
		})
	}
}

// LoginHandler godoc
// @Summary Log in
// @Description Verify credentials and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /api/auth/login [post]
func LoginHandler(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.New(apperr.Validation, "invalid request body")
		}
		if msgs := dto.ValidateStruct(body); msgs != nil {
			return apperr.Fields(msgs)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		volunteer, err := services.LoginVolunteer(ctx, body.Email, body.Password)
		if err != nil {
			return err
		}

		token, err := services.SignToken(secret, volunteer.ID)
		if err != nil {
			return err
		}

		return c.JSON(dto.AuthResponse{
			Token: token,
			User:  services.UserViewOf(volunteer),
		})
	}
}
