package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/malikdawood-collab/collaborative-task-manager/interfaces/api/handlers"
	"github.com/malikdawood-collab/collaborative-task-manager/interfaces/api/middleware"
)

func SetupProjectRoutes(api fiber.Router, h *handlers.Handlers, store *session.Store) {
	projects := api.Group("/projects")
	projects.Use(middleware.Protected(store))

	projects.Get("/", h.Project.ListProjects)
	projects.Post("/", h.Project.CreateProject)
	projects.Get("/completed", h.Project.ListCompletedProjects)
	projects.Post("/join", h.Project.JoinProject)
	projects.Get("/:id/members", h.Project.ListMembers)
	projects.Get("/:id/tasks", h.Project.ListProjectTasks)
	projects.Post("/:id/tasks", h.Project.CreateProjectTask)
	projects.Put("/:id/complete", h.Project.CompleteProject)
}
