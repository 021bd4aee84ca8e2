package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/malikdawood-collab/collaborative-task-manager/domain/dto"
	"github.com/malikdawood-collab/collaborative-task-manager/domain/services"
	"github.com/malikdawood-collab/collaborative-task-manager/pkg/logger"
	"github.com/malikdawood-collab/collaborative-task-manager/pkg/utils"
)

type ProjectHandler struct {
	projectService services.ProjectService
}

func NewProjectHandler(projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

func projectErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		return utils.NotFoundResponse(c, "Project not found")
	case errors.Is(err, services.ErrNotProjectMember):
		return utils.ForbiddenResponse(c, "")
	case errors.Is(err, services.ErrInvalidDueDate),
		errors.Is(err, services.ErrInvalidAssignee):
		return utils.BadRequestResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c)
	}
}

func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	return h.listProjects(c, false)
}

func (h *ProjectHandler) ListCompletedProjects(c *fiber.Ctx) error {
	return h.listProjects(c, true)
}

func (h *ProjectHandler) listProjects(c *fiber.Ctx, completed bool) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	projects, err := h.projectService.ListProjects(ctx, user.ID, completed)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list projects", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.ProjectsToProjectResponses(projects))
}

func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errs)
	}

	project, err := h.projectService.CreateProject(ctx, user.ID, &req)
	if err != nil {
		logger.ErrorContext(ctx, "Project creation failed", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	logger.InfoContext(ctx, "Project created", "project_id", project.ID, "creator_id", user.ID)

	return utils.CreatedResponse(c, dto.ProjectToProjectResponse(project))
}

func (h *ProjectHandler) JoinProject(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.JoinProjectRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errs)
	}

	project, alreadyMember, err := h.projectService.JoinProject(ctx, user.ID, req.JoinCode)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return utils.NotFoundResponse(c, "Invalid join code")
		}
		logger.ErrorContext(ctx, "Project join failed", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	message := "Joined project"
	if alreadyMember {
		message = "Already a member"
	} else {
		logger.InfoContext(ctx, "Member joined project", "project_id", project.ID, "user_id", user.ID)
	}

	return utils.SuccessResponse(c, dto.JoinProjectResponse{
		Message: message,
		Project: dto.ProjectToProjectResponse(project),
	})
}

func (h *ProjectHandler) ListMembers(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid project ID")
	}

	members, err := h.projectService.ListMembers(ctx, projectID, user.ID)
	if err != nil {
		return projectErrorResponse(c, err)
	}

	// Unlike the member summaries embedded in project payloads, this
	// endpoint exposes the full identity including email.
	return utils.SuccessResponse(c, dto.UsersToUserResponses(members))
}

func (h *ProjectHandler) ListProjectTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid project ID")
	}

	tasks, err := h.projectService.ListTasks(ctx, projectID, user.ID)
	if err != nil {
		return projectErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks))
}

func (h *ProjectHandler) CreateProjectTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid project ID")
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errs := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errs)
	}

	task, err := h.projectService.CreateTask(ctx, projectID, user.ID, &req)
	if err != nil {
		logger.WarnContext(ctx, "Project task creation failed", "project_id", projectID, "error", err)
		return projectErrorResponse(c, err)
	}

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

func (h *ProjectHandler) CompleteProject(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	projectID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid project ID")
	}

	project, err := h.projectService.CompleteProject(ctx, projectID, user.ID)
	if err != nil {
		return projectErrorResponse(c, err)
	}

	logger.InfoContext(ctx, "Project completed", "project_id", project.ID, "user_id", user.ID)

	return utils.SuccessResponse(c, dto.ProjectToProjectResponse(project))
}
