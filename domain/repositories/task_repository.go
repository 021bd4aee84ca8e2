package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/malikdawood-collab/collaborative-task-manager/domain/models"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	// ListByUser returns tasks the user created or is assigned to (set union).
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*models.Task, error)
	ListByCreator(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
	ListByAssignee(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
	Save(ctx context.Context, task *models.Task) error
	// ReplaceTags swaps the task's tag set wholesale; detached tags stay in
	// the tags table.
	ReplaceTags(ctx context.Context, task *models.Task, tags []*models.Tag) error
	Delete(ctx context.Context, task *models.Task) error
}
