package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=100"`
	Description string     `json:"description" validate:"omitempty,max=2000"`
	Status      string     `json:"status" validate:"omitempty,max=20"`
	Priority    string     `json:"priority" validate:"omitempty,max=20"`
	DueDate     *string    `json:"due_date"`
	AssigneeID  *uuid.UUID `json:"assignee_id"`
	// ProjectID is optional on the personal endpoint and fixed by the path
	// on the project-scoped endpoint.
	ProjectID *uuid.UUID `json:"project_id"`
	Tags      []string   `json:"tags" validate:"omitempty,dive,min=1,max=50"`
}

// UpdateTaskRequest is a partial update: only fields present in the payload
// are applied. DueDate and AssigneeID use Optional so an explicit null
// clears the field.
type UpdateTaskRequest struct {
	Title       *string              `json:"title" validate:"omitempty,min=1,max=100"`
	Description *string              `json:"description" validate:"omitempty,max=2000"`
	Status      *string              `json:"status" validate:"omitempty,max=20"`
	Priority    *string              `json:"priority" validate:"omitempty,max=20"`
	DueDate     Optional[string]     `json:"due_date"`
	AssigneeID  Optional[uuid.UUID]  `json:"assignee_id"`
	Tags        *[]string            `json:"tags"`
}

type TaskResponse struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	DueDate          *time.Time `json:"due_date"`
	Status           string     `json:"status"`
	Priority         string     `json:"priority"`
	ProjectID        *uuid.UUID `json:"project_id"`
	CreatorID        uuid.UUID  `json:"creator_id"`
	CreatorUsername  string     `json:"creator_username"`
	AssigneeID       *uuid.UUID `json:"assignee_id"`
	AssigneeUsername *string    `json:"assignee_username"`
	Tags             []string   `json:"tags"`
}

type TagResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
