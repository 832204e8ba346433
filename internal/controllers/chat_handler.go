package controllers

import (
	"volunteerhub/dto"
	"volunteerhub/internal/apperr"
	"volunteerhub/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ChatHandler godoc
// @Summary Assistant bridge
// @Description Forwards the transcript to the completion API and relays the answer
// @Tags chat
// @Accept json
// @Produce json
// @Param body body dto.ChatRequest true "Message transcript"
// @Success 200 {object} dto.ChatResponse
// @Failure 502 {object} dto.ErrorResponse "Upstream failure with remediation hint"
// @Router /api/chat [post]
func ChatHandler(svc *services.ChatService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.ChatRequest
		if err := c.BodyParser(&body); err != nil {
			return apperr.New(apperr.Validation, "invalid request body")
		}
		if msgs := dto.ValidateStruct(body); msgs != nil {
			return apperr.Fields(msgs)
		}

		completion, err := svc.Complete(c.Context(), body.Messages)
		if err != nil {
			return err
		}
		return c.JSON(completion)
	}
}
