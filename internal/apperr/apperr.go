// Package apperr is the single place where failure kinds are named and
// translated to transport status codes, replacing per-handler mappings.
package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type Kind int

const (
	Validation Kind = iota
	Unauthorized
	Forbidden
	NotFound
	Conflict
	CapacityExceeded
	Upstream
	Internal
)

type Error struct {
	Kind Kind
	Msg  string

	// Fields carries per-field validation messages; rendered as the
	// "errors" array when present.
	Fields []string

	// Solution is a remediation hint for upstream failures.
	Solution string

	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func Fields(msgs []string) *Error {
	return &Error{Kind: Validation, Msg: "validation failed", Fields: msgs}
}

// Status maps a kind to its HTTP status code.
func Status(kind Kind) int {
	switch kind {
	case Validation:
		return fiber.StatusBadRequest
	case Unauthorized:
		return fiber.StatusUnauthorized
	case Forbidden:
		return fiber.StatusForbidden
	case NotFound:
		return fiber.StatusNotFound
	case Conflict, CapacityExceeded:
		return fiber.StatusConflict
	case Upstream:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler is the app-wide fiber error handler. Stack-level detail is
// withheld in production.
func ErrorHandler(production bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var ae *Error
		if errors.As(err, &ae) {
			body := fiber.Map{}
			if len(ae.Fields) > 0 {
				body["errors"] = ae.Fields
			} else {
				body["error"] = ae.Msg
			}
			if ae.Solution != "" {
				body["solution"] = ae.Solution
			}
			return c.Status(Status(ae.Kind)).JSON(body)
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}

		if production {
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"error": "internal server error"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "internal server error", "details": err.Error()})
	}
}
