package apperr

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{Validation, fiber.StatusBadRequest},
		{Unauthorized, fiber.StatusUnauthorized},
		{Forbidden, fiber.StatusForbidden},
		{NotFound, fiber.StatusNotFound},
		{Conflict, fiber.StatusConflict},
		{CapacityExceeded, fiber.StatusConflict},
		{Upstream, fiber.StatusBadGateway},
		{Internal, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Status(tt.kind))
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(Upstream, "relay failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "relay failed: boom", err.Error())
}

func respond(t *testing.T, production bool, err error) (int, string) {
	t.Helper()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(production)})
	app.Get("/", func(c *fiber.Ctx) error { return err })

	resp, rerr := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, rerr)
	defer resp.Body.Close()

	body, rerr := io.ReadAll(resp.Body)
	require.NoError(t, rerr)
	return resp.StatusCode, string(body)
}

func TestErrorHandler_TypedError(t *testing.T) {
	status, body := respond(t, false, New(NotFound, "event not found"))

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.JSONEq(t, `{"error":"event not found"}`, body)
}

func TestErrorHandler_FieldErrors(t *testing.T) {
	status, body := respond(t, false, Fields([]string{"email is required", "phone is required"}))

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.JSONEq(t, `{"errors":["email is required","phone is required"]}`, body)
}

func TestErrorHandler_SolutionHint(t *testing.T) {
	err := &Error{Kind: Upstream, Msg: "region not supported", Solution: "use a VPN exit in a supported region (US/Europe)"}
	status, body := respond(t, false, err)

	assert.Equal(t, fiber.StatusBadGateway, status)
	assert.Contains(t, body, "solution")
}

func TestErrorHandler_UnhandledError(t *testing.T) {
	t.Run("development exposes detail", func(t *testing.T) {
		status, body := respond(t, false, errors.New("nil pointer somewhere"))

		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Contains(t, body, "nil pointer somewhere")
	})

	t.Run("production withholds detail", func(t *testing.T) {
		status, body := respond(t, true, errors.New("nil pointer somewhere"))

		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.NotContains(t, body, "nil pointer somewhere")
		assert.JSONEq(t, `{"error":"internal server error"}`, body)
	})
}
