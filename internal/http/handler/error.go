package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"credvault/internal/http/middleware"
	"credvault/internal/repository"
	"credvault/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_BODY", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	})
}

func writeValidationError(c *fiber.Ctx, details []FieldError) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    "VALIDATION_ERROR",
			Message: "request body failed validation",
			Details: details,
		},
	})
}

// writeServiceError maps known service errors to responses. Anything else is
// returned unchanged so the request logger records it and ErrorHandler answers 500.
func writeServiceError(c *fiber.Ctx, err error) error {
	var nf *service.NotFoundError
	switch {
	case errors.As(err, &nf):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", nf.Error())
	case errors.Is(err, repository.ErrDuplicateID):
		return writeError(c, fiber.StatusConflict, "CONFLICT", "a record with this _id already exists")
	case errors.Is(err, service.ErrInvalidFileName):
		return writeError(c, fiber.StatusBadRequest, "INVALID_FILE_NAME", err.Error())
	default:
		return err
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
	}
}
