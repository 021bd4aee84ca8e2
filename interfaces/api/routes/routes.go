package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/malikdawood-collab/collaborative-task-manager/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, store *session.Store) {
	SetupHealthRoutes(app)

	// Auth routes live outside /api so the session can be established first
	SetupAuthRoutes(app, h, store)

	api := app.Group("/api")

	SetupProjectRoutes(api, h, store)
	SetupTaskRoutes(api, h, store)
	SetupUserRoutes(api, h, store)
}
