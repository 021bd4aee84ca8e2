package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/malikdawood-collab/collaborative-task-manager/domain/dto"
	"github.com/malikdawood-collab/collaborative-task-manager/domain/models"
	"github.com/malikdawood-collab/collaborative-task-manager/domain/repositories"
	"github.com/malikdawood-collab/collaborative-task-manager/domain/services"
	"github.com/malikdawood-collab/collaborative-task-manager/pkg/logger"
	"github.com/malikdawood-collab/collaborative-task-manager/pkg/utils"
)

type ProjectServiceImpl struct {
	projectRepo repositories.ProjectRepository
	userRepo    repositories.UserRepository
	taskRepo    repositories.TaskRepository
	tagRepo     repositories.TagRepository
}

func NewProjectService(
	projectRepo repositories.ProjectRepository,
	userRepo repositories.UserRepository,
	taskRepo repositories.TaskRepository,
	tagRepo repositories.TagRepository,
) services.ProjectService {
	return &ProjectServiceImpl{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		taskRepo:    taskRepo,
		tagRepo:     tagRepo,
	}
}

func (s *ProjectServiceImpl) ListProjects(ctx context.Context, userID uuid.UUID, completed bool) ([]*models.Project, error) {
	return s.projectRepo.ListByMember(ctx, userID, completed)
}

func (s *ProjectServiceImpl) CreateProject(ctx context.Context, userID uuid.UUID, req *dto.CreateProjectRequest) (*models.Project, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, services.ErrUserNotFound
	}

	project := &models.Project{
		ID:        uuid.New(),
		Title:     req.Title,
		JoinCode:  utils.GenerateJoinCode(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Members:   []models.User{*user},
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		logger.ErrorContext(ctx, "Failed to create project", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Project created", "project_id", project.ID, "user_id", userID)

	return project, nil
}

func (s *ProjectServiceImpl) JoinProject(ctx context.Context, userID uuid.UUID, joinCode string) (*models.Project, bool, error) {
	project, err := s.projectRepo.GetByJoinCode(ctx, joinCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, services.ErrProjectNotFound
		}
		return nil, false, err
	}

	member, err := s.projectRepo.IsMember(ctx, project.ID, userID)
	if err != nil {
		return nil, false, err
	}
	if member {
		// Re-joining is a no-op.
		return project, true, nil
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, false, services.ErrUserNotFound
	}

	if err := s.projectRepo.AddMember(ctx, project, user); err != nil {
		logger.ErrorContext(ctx, "Failed to add member", "project_id", project.ID, "user_id", userID, "error", err)
		return nil, false, err
	}

	logger.InfoContext(ctx, "Member joined project", "project_id", project.ID, "user_id", userID)

	return project, false, nil
}

// requireMembership loads the project and enforces the member gate shared by
// every project-scoped operation.
func (s *ProjectServiceImpl) requireMembership(ctx context.Context, projectID, userID uuid.UUID) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrProjectNotFound
		}
		return nil, err
	}

	member, err := s.projectRepo.IsMember(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, services.ErrNotProjectMember
	}
	return project, nil
}

func (s *ProjectServiceImpl) ListMembers(ctx context.Context, projectID, userID uuid.UUID) ([]*models.User, error) {
	project, err := s.requireMembership(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	members := make([]*models.User, len(project.Members))
	for i := range project.Members {
		members[i] = &project.Members[i]
	}
	return members, nil
}

func (s *ProjectServiceImpl) ListTasks(ctx context.Context, projectID, userID uuid.UUID) ([]*models.Task, error) {
	if _, err := s.requireMembership(ctx, projectID, userID); err != nil {
		return nil, err
	}
	return s.taskRepo.ListByProject(ctx, projectID)
}

func (s *ProjectServiceImpl) CreateTask(ctx context.Context, projectID, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	if _, err := s.requireMembership(ctx, projectID, userID); err != nil {
		return nil, err
	}

	// The path pins the project scope regardless of the payload.
	task, err := buildTask(ctx, s.userRepo, s.tagRepo, userID, &projectID, req)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create project task", "project_id", projectID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Project task created", "task_id", task.ID, "project_id", projectID, "creator_id", userID)

	return s.taskRepo.GetByID(ctx, task.ID)
}

func (s *ProjectServiceImpl) CompleteProject(ctx context.Context, projectID, userID uuid.UUID) (*models.Project, error) {
	project, err := s.requireMembership(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	// Idempotent: completing a completed project is still a success.
	project.IsCompleted = true
	project.UpdatedAt = time.Now()

	if err := s.projectRepo.Save(ctx, project); err != nil {
		logger.ErrorContext(ctx, "Failed to complete project", "project_id", projectID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Project completed", "project_id", projectID, "user_id", userID)

	return project, nil
}
