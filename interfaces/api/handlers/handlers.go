package handlers

import (
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/malikdawood-collab/collaborative-task-manager/domain/services"
)

// Services bundles everything the handler layer needs.
type Services struct {
	UserService    services.UserService
	ProjectService services.ProjectService
	TaskService    services.TaskService
	SessionStore   *session.Store
}

// Handlers holds all HTTP handlers.
type Handlers struct {
	Auth    *AuthHandler
	User    *UserHandler
	Project *ProjectHandler
	Task    *TaskHandler
}

func NewHandlers(svc *Services) *Handlers {
	return &Handlers{
		Auth:    NewAuthHandler(svc.UserService, svc.SessionStore),
		User:    NewUserHandler(svc.UserService),
		Project: NewProjectHandler(svc.ProjectService),
		Task:    NewTaskHandler(svc.TaskService),
	}
}
