package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/malikdawood-collab/collaborative-task-manager/domain/models"
	"github.com/malikdawood-collab/collaborative-task-manager/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) withPreloads(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Creator").
		Preload("Assignee").
		Preload("Tags")
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.withPreloads(ctx).Where("id = ?", id).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.withPreloads(ctx).
		Where("creator_id = ? OR assignee_id = ?", userID, userID).
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.withPreloads(ctx).Where("project_id = ?", projectID).Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) ListByCreator(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.withPreloads(ctx).Where("creator_id = ?", userID).Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) ListByAssignee(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.withPreloads(ctx).Where("assignee_id = ?", userID).Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) Save(ctx context.Context, task *models.Task) error {
	// Save writes every column, so cleared due dates and assignees become
	// NULL. Tag changes go through ReplaceTags.
	return r.db.WithContext(ctx).Omit("Creator", "Assignee", "Tags").Save(task).Error
}

func (r *TaskRepositoryImpl) ReplaceTags(ctx context.Context, task *models.Task, tags []*models.Tag) error {
	return r.db.WithContext(ctx).Model(task).Association("Tags").Replace(tags)
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, task *models.Task) error {
	// clause.Associations clears task_tags rows without deleting the tags.
	return r.db.WithContext(ctx).Select(clause.Associations).Delete(task).Error
}
