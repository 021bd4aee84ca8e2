package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/malikdawood-collab/collaborative-task-manager/interfaces/api/handlers"
	"github.com/malikdawood-collab/collaborative-task-manager/interfaces/api/middleware"
)

func SetupAuthRoutes(app *fiber.App, h *handlers.Handlers, store *session.Store) {
	auth := app.Group("/auth")

	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Get("/status", h.Auth.Status)

	// Logout requires a live session
	auth.Get("/logout", middleware.Protected(store), h.Auth.Logout)
}
