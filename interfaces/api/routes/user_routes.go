package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/malikdawood-collab/collaborative-task-manager/interfaces/api/handlers"
	"github.com/malikdawood-collab/collaborative-task-manager/interfaces/api/middleware"
)

func SetupUserRoutes(api fiber.Router, h *handlers.Handlers, store *session.Store) {
	users := api.Group("/users")
	users.Use(middleware.Protected(store))

	users.Get("/", h.User.ListUsers)
	users.Get("/:id/profile", h.User.GetUserProfile)
}
