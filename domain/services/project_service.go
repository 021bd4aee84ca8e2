package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/malikdawood-collab/collaborative-task-manager/domain/dto"
	"github.com/malikdawood-collab/collaborative-task-manager/domain/models"
)

type ProjectService interface {
	ListProjects(ctx context.Context, userID uuid.UUID, completed bool) ([]*models.Project, error)
	CreateProject(ctx context.Context, userID uuid.UUID, req *dto.CreateProjectRequest) (*models.Project, error)
	// JoinProject is idempotent; alreadyMember tells the handler which
	// success message to return.
	JoinProject(ctx context.Context, userID uuid.UUID, joinCode string) (project *models.Project, alreadyMember bool, err error)
	ListMembers(ctx context.Context, projectID, userID uuid.UUID) ([]*models.User, error)
	ListTasks(ctx context.Context, projectID, userID uuid.UUID) ([]*models.Task, error)
	CreateTask(ctx context.Context, projectID, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error)
	CompleteProject(ctx context.Context, projectID, userID uuid.UUID) (*models.Project, error)
}
