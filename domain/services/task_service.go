package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/malikdawood-collab/collaborative-task-manager/domain/dto"
	"github.com/malikdawood-collab/collaborative-task-manager/domain/models"
)

type TaskService interface {
	CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error)
	// ListTasks returns the union of tasks the user created and tasks
	// assigned to the user, without duplicates.
	ListTasks(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
	GetTask(ctx context.Context, taskID, userID uuid.UUID) (*models.Task, error)
	UpdateTask(ctx context.Context, taskID, userID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	// DeleteTask succeeds only for the creator; everyone else gets
	// ErrTaskNotFound.
	DeleteTask(ctx context.Context, taskID, userID uuid.UUID) error
	ListTags(ctx context.Context) ([]*models.Tag, error)
}
