package dto

import "github.com/google/uuid"

type CreateProjectRequest struct {
	Title string `json:"title" validate:"required,min=1,max=100"`
}

type JoinProjectRequest struct {
	JoinCode string `json:"join_code" validate:"required"`
}

type ProjectMember struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type ProjectResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	JoinCode    string          `json:"join_code"`
	IsCompleted bool            `json:"is_completed"`
	Members     []ProjectMember `json:"members"`
}

type JoinProjectResponse struct {
	Message string           `json:"message"`
	Project *ProjectResponse `json:"project"`
}
