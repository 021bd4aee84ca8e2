package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/malikdawood-collab/collaborative-task-manager/domain/dto"
	"github.com/malikdawood-collab/collaborative-task-manager/domain/models"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	// GetProfile returns the user plus the tasks they created and the tasks
	// assigned to them, as two separate lists.
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, []*models.Task, []*models.Task, error)
}
