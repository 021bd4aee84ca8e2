package models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title       string    `gorm:"size:100;not null"`
	JoinCode    string    `gorm:"size:36;uniqueIndex;not null"` // opaque token presented to join
	IsCompleted bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relations
	Tasks   []Task `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Members []User `gorm:"many2many:project_members"`
}

func (Project) TableName() string {
	return "projects"
}
