package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	swagger "github.com/gofiber/swagger"

	_ "github.com/artem13815/lifeadvisor/docs"

	"github.com/artem13815/lifeadvisor/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, chat *handlers.ChatHandler, health *handlers.HealthHandler, metrics nethttp.Handler) {
	app.Post("/chat", chat.Chat)

	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	app.Get("/metrics", adaptor.HTTPHandler(metrics))

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)
}
