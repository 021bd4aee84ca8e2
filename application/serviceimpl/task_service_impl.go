package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/malikdawood-collab/collaborative-task-manager/domain/dto"
	"github.com/malikdawood-collab/collaborative-task-manager/domain/models"
	"github.com/malikdawood-collab/collaborative-task-manager/domain/repositories"
	"github.com/malikdawood-collab/collaborative-task-manager/domain/services"
	"github.com/malikdawood-collab/collaborative-task-manager/pkg/logger"
)

const (
	defaultStatus   = "pending"
	defaultPriority = "medium"
)

type TaskServiceImpl struct {
	taskRepo    repositories.TaskRepository
	userRepo    repositories.UserRepository
	projectRepo repositories.ProjectRepository
	tagRepo     repositories.TagRepository
}

func NewTaskService(
	taskRepo repositories.TaskRepository,
	userRepo repositories.UserRepository,
	projectRepo repositories.ProjectRepository,
	tagRepo repositories.TagRepository,
) services.TaskService {
	return &TaskServiceImpl{
		taskRepo:    taskRepo,
		userRepo:    userRepo,
		projectRepo: projectRepo,
		tagRepo:     tagRepo,
	}
}

// dueDateLayouts accepts the ISO-8601 shapes clients actually send; a
// trailing Z is covered by the RFC3339 layouts.
var dueDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseDueDate(value string) (time.Time, error) {
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, services.ErrInvalidDueDate
}

// resolveAssignee validates that a requested assignee exists.
func resolveAssignee(ctx context.Context, users repositories.UserRepository, id *uuid.UUID) (*uuid.UUID, error) {
	if id == nil {
		return nil, nil
	}
	if _, err := users.GetByID(ctx, *id); err != nil {
		return nil, services.ErrInvalidAssignee
	}
	return id, nil
}

// upsertTags resolves tag names to tag rows, creating missing ones.
// Duplicate names in the request collapse to one tag.
func upsertTags(ctx context.Context, tags repositories.TagRepository, names []string) ([]*models.Tag, error) {
	seen := make(map[string]bool, len(names))
	out := make([]*models.Tag, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		tag, err := tags.GetOrCreateByName(ctx, name)
		if err != nil {
			return nil, err
		}
		out = append(out, tag)
	}
	return out, nil
}

// buildTask assembles an unsaved task from a create request, validating the
// due date and assignee and upserting tags.
func buildTask(
	ctx context.Context,
	users repositories.UserRepository,
	tags repositories.TagRepository,
	creatorID uuid.UUID,
	projectID *uuid.UUID,
	req *dto.CreateTaskRequest,
) (*models.Task, error) {
	var dueDate *time.Time
	if req.DueDate != nil && *req.DueDate != "" {
		parsed, err := parseDueDate(*req.DueDate)
		if err != nil {
			return nil, err
		}
		dueDate = &parsed
	}

	assigneeID, err := resolveAssignee(ctx, users, req.AssigneeID)
	if err != nil {
		return nil, err
	}

	tagRows, err := upsertTags(ctx, tags, req.Tags)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = defaultStatus
	}
	priority := req.Priority
	if priority == "" {
		priority = defaultPriority
	}

	task := &models.Task{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Status:      status,
		Priority:    priority,
		CreatorID:   creatorID,
		AssigneeID:  assigneeID,
		ProjectID:   projectID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	for _, tag := range tagRows {
		task.Tags = append(task.Tags, *tag)
	}
	return task, nil
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	// An optional project scope on the personal endpoint is membership-gated
	// like the project-scoped endpoint.
	if req.ProjectID != nil {
		if _, err := s.projectRepo.GetByID(ctx, *req.ProjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, services.ErrProjectNotFound
			}
			return nil, err
		}
		member, err := s.projectRepo.IsMember(ctx, *req.ProjectID, userID)
		if err != nil {
			return nil, err
		}
		if !member {
			return nil, services.ErrNotProjectMember
		}
	}

	task, err := buildTask(ctx, s.userRepo, s.tagRepo, userID, req.ProjectID, req)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "creator_id", userID)

	// Reload so the response carries creator/assignee usernames.
	return s.taskRepo.GetByID(ctx, task.ID)
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	return s.taskRepo.ListByUser(ctx, userID)
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, taskID, userID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrTaskNotFound
		}
		return nil, err
	}
	if !task.VisibleTo(userID) {
		// Indistinguishable from a missing task on purpose.
		return nil, services.ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, taskID, userID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.GetTask(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	// Validate everything before touching the task, so a bad field leaves
	// prior state unmodified.
	var newDueDate *time.Time
	if req.DueDate.Present && req.DueDate.Value != nil {
		parsed, err := parseDueDate(*req.DueDate.Value)
		if err != nil {
			return nil, err
		}
		newDueDate = &parsed
	}

	var newAssigneeID *uuid.UUID
	if req.AssigneeID.Present && req.AssigneeID.Value != nil {
		newAssigneeID, err = resolveAssignee(ctx, s.userRepo, req.AssigneeID.Value)
		if err != nil {
			return nil, err
		}
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.DueDate.Present {
		task.DueDate = newDueDate
	}
	if req.AssigneeID.Present {
		task.AssigneeID = newAssigneeID
	}
	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Save(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}

	// A present tag list replaces the association wholesale; detached tags
	// stay in the tags table.
	if req.Tags != nil {
		tagRows, err := upsertTags(ctx, s.tagRepo, *req.Tags)
		if err != nil {
			return nil, err
		}
		if err := s.taskRepo.ReplaceTags(ctx, task, tagRows); err != nil {
			logger.ErrorContext(ctx, "Failed to replace tags", "task_id", taskID, "error", err)
			return nil, err
		}
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID, "user_id", userID)

	return s.taskRepo.GetByID(ctx, taskID)
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, taskID, userID uuid.UUID) error {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return services.ErrTaskNotFound
		}
		return err
	}
	// Deletion is creator-only; assignees get the same not-found answer as
	// strangers.
	if task.CreatorID != userID {
		return services.ErrTaskNotFound
	}

	if err := s.taskRepo.Delete(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID, "creator_id", userID)

	return nil
}

func (s *TaskServiceImpl) ListTags(ctx context.Context) ([]*models.Tag, error) {
	return s.tagRepo.List(ctx)
}
