package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/malikdawood-collab/collaborative-task-manager/interfaces/api/handlers"
	"github.com/malikdawood-collab/collaborative-task-manager/interfaces/api/middleware"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers, store *session.Store) {
	tasks := api.Group("/tasks")
	tasks.Use(middleware.Protected(store))

	tasks.Get("/", h.Task.ListTasks)
	tasks.Post("/", h.Task.CreateTask)
	tasks.Get("/:id", h.Task.GetTask)
	tasks.Put("/:id", h.Task.UpdateTask)
	tasks.Delete("/:id", h.Task.DeleteTask)

	tags := api.Group("/tags")
	tags.Use(middleware.Protected(store))
	tags.Get("/", h.Task.ListTags)
}
