package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/malikdawood-collab/collaborative-task-manager/domain/models"
	"github.com/malikdawood-collab/collaborative-task-manager/domain/repositories"
)

type ProjectRepositoryImpl struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) repositories.ProjectRepository {
	return &ProjectRepositoryImpl{db: db}
}

func (r *ProjectRepositoryImpl) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *ProjectRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).Preload("Members").Where("id = ?", id).First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) GetByJoinCode(ctx context.Context, code string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).Preload("Members").Where("join_code = ?", code).First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) ListByMember(ctx context.Context, userID uuid.UUID, completed bool) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.WithContext(ctx).
		Joins("JOIN project_members pm ON pm.project_id = projects.id").
		Where("pm.user_id = ? AND projects.is_completed = ?", userID, completed).
		Preload("Members").
		Find(&projects).Error
	return projects, err
}

func (r *ProjectRepositoryImpl) AddMember(ctx context.Context, project *models.Project, user *models.User) error {
	return r.db.WithContext(ctx).Model(project).Association("Members").Append(user)
}

func (r *ProjectRepositoryImpl) IsMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("project_members").
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *ProjectRepositoryImpl) Save(ctx context.Context, project *models.Project) error {
	// Omit associations so Save only touches project columns.
	return r.db.WithContext(ctx).Omit("Members", "Tasks").Save(project).Error
}
