package repositories

import (
	"context"

	"github.com/malikdawood-collab/collaborative-task-manager/domain/models"
)

type TagRepository interface {
	// GetOrCreateByName upserts a tag by its exact, case-sensitive name.
	GetOrCreateByName(ctx context.Context, name string) (*models.Tag, error)
	List(ctx context.Context) ([]*models.Tag, error)
}
