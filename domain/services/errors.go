package services

import "errors"

// Sentinel errors returned by services; handlers map them to HTTP statuses
// with errors.Is.
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")

	ErrProjectNotFound  = errors.New("project not found")
	ErrNotProjectMember = errors.New("not a project member")

	// ErrTaskNotFound covers both a missing task and a task the caller may
	// not see, so responses never leak existence.
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidDueDate  = errors.New("invalid due_date format")
	ErrInvalidAssignee = errors.New("invalid assignee id")
)
