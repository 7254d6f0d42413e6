package utils

import (
	"errors"
	"time"

	"github.com/cblte/simple-filament-manager/internal/types"
	"github.com/gofiber/fiber/v2"
)

// StatusForError maps the store error taxonomy to an HTTP status code and
// a short type tag for the response body.
func StatusForError(err error) (int, string) {
	var validationErr *types.ValidationError
	var notFoundErr *types.NotFoundError
	var conflictErr *types.ConflictError

	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest, "validation"
	case errors.As(err, &notFoundErr):
		return fiber.StatusNotFound, "not_found"
	case errors.As(err, &conflictErr):
		return fiber.StatusConflict, "conflict"
	default:
		return fiber.StatusInternalServerError, "storage"
	}
}

// ErrorResponse sends a standard JSON error response
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":    status,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// StoreErrorResponse sends a JSON error response for a store error
func StoreErrorResponse(c *fiber.Ctx, err error) error {
	status, errorType := StatusForError(err)
	return ErrorResponse(c, err.Error(), status, errorType)
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"status":    fiber.StatusNotFound,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
	})
}

// MutationSuccessResponse sends a success response for mutations (POST/PUT/DELETE)
func MutationSuccessResponse(c *fiber.Ctx, id uint64) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "Success",
		"ok":        true,
		"id":        id,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Type      string `json:"type,omitempty"`
}

// SuccessResponseStruct defines the schema for mutation success responses
type SuccessResponseStruct struct {
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	ID        uint64 `json:"id"`
	Timestamp string `json:"timestamp"`
}
