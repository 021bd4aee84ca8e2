package dto

import "github.com/google/uuid"

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// UserProfileResponse carries identity plus two intentionally separate task
// lists (not the union used by the personal task list).
type UserProfileResponse struct {
	ID            uuid.UUID      `json:"id"`
	Username      string         `json:"username"`
	Email         string         `json:"email"`
	CreatedTasks  []TaskResponse `json:"created_tasks"`
	AssignedTasks []TaskResponse `json:"assigned_tasks"`
}
