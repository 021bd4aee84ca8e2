package dto

import (
	"github.com/malikdawood-collab/collaborative-task-manager/domain/models"
)

func UserToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

func UsersToUserResponses(users []*models.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = *UserToUserResponse(u)
	}
	return out
}

func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}
	resp := &TaskResponse{
		ID:              task.ID,
		Title:           task.Title,
		Description:     task.Description,
		DueDate:         task.DueDate,
		Status:          task.Status,
		Priority:        task.Priority,
		ProjectID:       task.ProjectID,
		CreatorID:       task.CreatorID,
		CreatorUsername: task.Creator.Username,
		AssigneeID:      task.AssigneeID,
		Tags:            make([]string, 0, len(task.Tags)),
	}
	if task.Assignee != nil {
		resp.AssigneeUsername = &task.Assignee.Username
	}
	for _, tag := range task.Tags {
		resp.Tags = append(resp.Tags, tag.Name)
	}
	return resp
}

func TasksToTaskResponses(tasks []*models.Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = *TaskToTaskResponse(t)
	}
	return out
}

func ProjectToProjectResponse(project *models.Project) *ProjectResponse {
	if project == nil {
		return nil
	}
	resp := &ProjectResponse{
		ID:          project.ID,
		Title:       project.Title,
		JoinCode:    project.JoinCode,
		IsCompleted: project.IsCompleted,
		Members:     make([]ProjectMember, 0, len(project.Members)),
	}
	for _, m := range project.Members {
		resp.Members = append(resp.Members, ProjectMember{ID: m.ID, Username: m.Username})
	}
	return resp
}

func ProjectsToProjectResponses(projects []*models.Project) []ProjectResponse {
	out := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		out[i] = *ProjectToProjectResponse(p)
	}
	return out
}

func TagToTagResponse(tag *models.Tag) *TagResponse {
	if tag == nil {
		return nil
	}
	return &TagResponse{ID: tag.ID, Name: tag.Name}
}

func TagsToTagResponses(tags []*models.Tag) []TagResponse {
	out := make([]TagResponse, len(tags))
	for i, t := range tags {
		out[i] = *TagToTagResponse(t)
	}
	return out
}

func UserToProfileResponse(user *models.User, created, assigned []*models.Task) *UserProfileResponse {
	if user == nil {
		return nil
	}
	return &UserProfileResponse{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		CreatedTasks:  TasksToTaskResponses(created),
		AssignedTasks: TasksToTaskResponses(assigned),
	}
}
