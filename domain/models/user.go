package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Username  string    `gorm:"size:64;uniqueIndex;not null"`
	Email     string    `gorm:"size:120;uniqueIndex;not null"`
	Password  string    `gorm:"size:128;not null"` // bcrypt hash
	CreatedAt time.Time
	UpdatedAt time.Time

	// Many-to-many membership via the project_members join table
	Projects []Project `gorm:"many2many:project_members"`
}

func (User) TableName() string {
	return "users"
}
