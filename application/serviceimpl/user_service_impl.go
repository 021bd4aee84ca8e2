package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/malikdawood-collab/collaborative-task-manager/domain/dto"
	"github.com/malikdawood-collab/collaborative-task-manager/domain/models"
	"github.com/malikdawood-collab/collaborative-task-manager/domain/repositories"
	"github.com/malikdawood-collab/collaborative-task-manager/domain/services"
	"github.com/malikdawood-collab/collaborative-task-manager/pkg/logger"
)

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	taskRepo repositories.TaskRepository
}

func NewUserService(userRepo repositories.UserRepository, taskRepo repositories.TaskRepository) services.UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		taskRepo: taskRepo,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	existingUser, _ := s.userRepo.GetByUsername(ctx, req.Username)
	if existingUser != nil {
		logger.WarnContext(ctx, "Username already exists", "username", req.Username)
		return nil, services.ErrUsernameTaken
	}

	existingUser, _ = s.userRepo.GetByEmail(ctx, req.Email)
	if existingUser != nil {
		logger.WarnContext(ctx, "Email already registered", "email", req.Email)
		return nil, services.ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		ID:        uuid.New(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to create user", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "username", user.Username)

	return user, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		logger.WarnContext(ctx, "Login failed - unknown username", "username", req.Username)
		return nil, services.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Login failed - password mismatch", "user_id", user.ID)
		return nil, services.ErrInvalidCredentials
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID, "username", user.Username)

	return user, nil
}

func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, []*models.Task, []*models.Task, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, nil, services.ErrUserNotFound
	}

	created, err := s.taskRepo.ListByCreator(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list created tasks", "user_id", userID, "error", err)
		return nil, nil, nil, err
	}

	assigned, err := s.taskRepo.ListByAssignee(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list assigned tasks", "user_id", userID, "error", err)
		return nil, nil, nil, err
	}

	return user, created, assigned, nil
}
