package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/malikdawood-collab/collaborative-task-manager/domain/dto"
	"github.com/malikdawood-collab/collaborative-task-manager/domain/services"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()

	userRepo := newFakeUserRepo()
	taskRepo := newFakeTaskRepo(userRepo)
	svc := NewUserService(userRepo, taskRepo)

	first, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if first.Password == "correct horse" {
		t.Error("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(first.Password), []byte("correct horse")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}

	tests := []struct {
		name    string
		req     dto.RegisterRequest
		wantErr error
	}{
		{
			name:    "duplicate username",
			req:     dto.RegisterRequest{Username: "alice", Email: "other@example.com", Password: "password123"},
			wantErr: services.ErrUsernameTaken,
		},
		{
			name:    "duplicate email",
			req:     dto.RegisterRequest{Username: "bob", Email: "alice@example.com", Password: "password123"},
			wantErr: services.ErrEmailTaken,
		},
		{
			// Username conflict wins when both collide
			name:    "both duplicated",
			req:     dto.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "password123"},
			wantErr: services.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, &tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	// Failed attempts must not clobber the original account
	stored, err := userRepo.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if stored.ID != first.ID || stored.Email != "alice@example.com" {
		t.Errorf("original account mutated by failed registrations: %+v", stored)
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	userRepo := newFakeUserRepo()
	taskRepo := newFakeTaskRepo(userRepo)
	svc := NewUserService(userRepo, taskRepo)

	alice := userRepo.addUser("alice", "s3cretpass")

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"valid credentials", "alice", "s3cretpass", nil},
		{"wrong password", "alice", "wrong", services.ErrInvalidCredentials},
		{"unknown username", "nobody", "s3cretpass", services.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Login(ctx, &dto.LoginRequest{Username: tt.username, Password: tt.password})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Login() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && user.ID != alice.ID {
				t.Errorf("Login() returned user %v, want %v", user.ID, alice.ID)
			}
		})
	}
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	userRepo := newFakeUserRepo()
	taskRepo := newFakeTaskRepo(userRepo)
	svc := NewUserService(userRepo, taskRepo)
	taskSvc := NewTaskService(taskRepo, userRepo, newFakeProjectRepo(), newFakeTagRepo())

	alice := userRepo.addUser("alice", "password123")
	bob := userRepo.addUser("bob", "password123")

	// alice creates one task for herself and assigns one to bob
	if _, err := taskSvc.CreateTask(ctx, alice.ID, &dto.CreateTaskRequest{Title: "mine"}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if _, err := taskSvc.CreateTask(ctx, alice.ID, &dto.CreateTaskRequest{Title: "for bob", AssigneeID: &bob.ID}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	user, created, assigned, err := svc.GetProfile(ctx, alice.ID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("username = %q, want alice", user.Username)
	}
	if len(created) != 2 {
		t.Errorf("created tasks = %d, want 2", len(created))
	}
	if len(assigned) != 0 {
		t.Errorf("assigned tasks = %d, want 0", len(assigned))
	}

	_, bobCreated, bobAssigned, err := svc.GetProfile(ctx, bob.ID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if len(bobCreated) != 0 || len(bobAssigned) != 1 {
		t.Errorf("bob profile: created=%d assigned=%d, want 0/1", len(bobCreated), len(bobAssigned))
	}

	if _, _, _, err := svc.GetProfile(ctx, uuid.New()); !errors.Is(err, services.ErrUserNotFound) {
		t.Errorf("GetProfile(unknown) error = %v, want %v", err, services.ErrUserNotFound)
	}
}
