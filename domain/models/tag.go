package models

import (
	"github.com/google/uuid"
)

// Tag names are unique and matched case-sensitively; tags are shared
// across tasks via the task_tags join table.
type Tag struct {
	ID   uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name string    `gorm:"size:50;uniqueIndex;not null"`
}

func (Tag) TableName() string {
	return "tags"
}
