package presenter

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// ErrorResponse carries the request ID so a failed call can be matched
// against the access log.
type ErrorResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

// ChatResponse is the success body of POST /chat.
type ChatResponse struct {
	Response string `json:"response"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	rid, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
	return JSON(c, status, ErrorResponse{Message: message, RequestID: rid})
}

// StatusResponse is the body of the probe endpoints.
type StatusResponse struct {
	Status  string `json:"status"`
	Details string `json:"details,omitempty"`
}
