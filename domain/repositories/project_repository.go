package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/malikdawood-collab/collaborative-task-manager/domain/models"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	GetByJoinCode(ctx context.Context, code string) (*models.Project, error)
	// ListByMember returns the projects the user belongs to, filtered on the
	// completion flag.
	ListByMember(ctx context.Context, userID uuid.UUID, completed bool) ([]*models.Project, error)
	AddMember(ctx context.Context, project *models.Project, user *models.User) error
	IsMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error)
	Save(ctx context.Context, project *models.Project) error
}
