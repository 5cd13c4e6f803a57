// Package response implements the API envelope. Every response, success or
// failure, carries {success, message, data, timestamp}; every error is
// flattened to HTTP 400 with no differentiated status codes.
package response

import (
	"log"
	"time"

	"warehouse-backend/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

type Envelope struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

func OK(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	})
}

func Created(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	})
}

// ErrorHandler is installed as the Fiber app error handler. Business errors
// keep their message; anything unexpected is logged and masked.
func ErrorHandler(c *fiber.Ctx, err error) error {
	message := err.Error()

	if apperror.KindOf(err) == apperror.KindInternal {
		if fe, ok := err.(*fiber.Error); ok {
			message = fe.Message
		} else {
			log.Println("Unexpected error:", err)
			message = "Internal server error"
		}
	}

	return c.Status(fiber.StatusBadRequest).JSON(Envelope{
		Success:   false,
		Message:   message,
		Data:      nil,
		Timestamp: time.Now(),
	})
}
