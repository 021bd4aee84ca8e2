package models

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title       string    `gorm:"size:100;not null"`
	Description string    `gorm:"type:text"`
	DueDate     *time.Time
	Status      string `gorm:"size:20;not null;default:'pending'"`
	Priority    string `gorm:"size:20;not null;default:'medium'"`

	// Foreign keys. ProjectID is nullable: tasks created through a project
	// are project-scoped, personal tasks are not.
	CreatorID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Creator    User       `gorm:"foreignKey:CreatorID"`
	AssigneeID *uuid.UUID `gorm:"type:uuid;index"`
	Assignee   *User      `gorm:"foreignKey:AssigneeID"`
	ProjectID  *uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Tags []Tag `gorm:"many2many:task_tags"`
}

func (Task) TableName() string {
	return "tasks"
}

// VisibleTo reports whether the user may read or update this task.
func (t *Task) VisibleTo(userID uuid.UUID) bool {
	if t.CreatorID == userID {
		return true
	}
	return t.AssigneeID != nil && *t.AssigneeID == userID
}
