package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/malikdawood-collab/collaborative-task-manager/domain/dto"
	"github.com/malikdawood-collab/collaborative-task-manager/domain/services"
)

type projectFixture struct {
	userRepo    *fakeUserRepo
	projectRepo *fakeProjectRepo
	taskRepo    *fakeTaskRepo
	tagRepo     *fakeTagRepo
	svc         services.ProjectService
}

func newProjectFixture() *projectFixture {
	userRepo := newFakeUserRepo()
	projectRepo := newFakeProjectRepo()
	taskRepo := newFakeTaskRepo(userRepo)
	tagRepo := newFakeTagRepo()
	return &projectFixture{
		userRepo:    userRepo,
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		tagRepo:     tagRepo,
		svc:         NewProjectService(projectRepo, userRepo, taskRepo, tagRepo),
	}
}

func TestCreateProject(t *testing.T) {
	ctx := context.Background()
	f := newProjectFixture()
	alice := f.userRepo.addUser("alice", "password123")

	project, err := f.svc.CreateProject(ctx, alice.ID, &dto.CreateProjectRequest{Title: "launch"})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	if project.JoinCode == "" {
		t.Error("join code not generated")
	}
	if project.IsCompleted {
		t.Error("new project marked completed")
	}
	if len(project.Members) != 1 || project.Members[0].ID != alice.ID {
		t.Errorf("creator not enrolled as member: %+v", project.Members)
	}

	other, err := f.svc.CreateProject(ctx, alice.ID, &dto.CreateProjectRequest{Title: "second"})
	if err != nil {
		t.Fatal(err)
	}
	if other.JoinCode == project.JoinCode {
		t.Error("join codes collide across projects")
	}
}

func TestJoinProject(t *testing.T) {
	ctx := context.Background()
	f := newProjectFixture()
	alice := f.userRepo.addUser("alice", "password123")
	bob := f.userRepo.addUser("bob", "password123")

	project, err := f.svc.CreateProject(ctx, alice.ID, &dto.CreateProjectRequest{Title: "launch"})
	if err != nil {
		t.Fatal(err)
	}

	joined, already, err := f.svc.JoinProject(ctx, bob.ID, project.JoinCode)
	if err != nil {
		t.Fatalf("JoinProject: %v", err)
	}
	if already {
		t.Error("first join reported as already a member")
	}
	if joined.ID != project.ID {
		t.Errorf("joined project %v, want %v", joined.ID, project.ID)
	}

	// Re-joining is a no-op, not an error, and does not duplicate the row
	_, already, err = f.svc.JoinProject(ctx, bob.ID, project.JoinCode)
	if err != nil {
		t.Fatalf("second join: %v", err)
	}
	if !already {
		t.Error("second join not reported as already a member")
	}

	members, err := f.svc.ListMembers(ctx, project.ID, bob.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(members) != 2 {
		t.Errorf("members = %d, want 2", len(members))
	}

	if _, _, err := f.svc.JoinProject(ctx, bob.ID, "bogus-code"); !errors.Is(err, services.ErrProjectNotFound) {
		t.Errorf("bad join code error = %v, want ErrProjectNotFound", err)
	}
}

func TestProjectMembershipGate(t *testing.T) {
	ctx := context.Background()
	f := newProjectFixture()
	alice := f.userRepo.addUser("alice", "password123")
	mallory := f.userRepo.addUser("mallory", "password123")

	project, err := f.svc.CreateProject(ctx, alice.ID, &dto.CreateProjectRequest{Title: "private"})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		call func() error
	}{
		{"list members", func() error {
			_, err := f.svc.ListMembers(ctx, project.ID, mallory.ID)
			return err
		}},
		{"list tasks", func() error {
			_, err := f.svc.ListTasks(ctx, project.ID, mallory.ID)
			return err
		}},
		{"create task", func() error {
			_, err := f.svc.CreateTask(ctx, project.ID, mallory.ID, &dto.CreateTaskRequest{Title: "x"})
			return err
		}},
		{"complete", func() error {
			_, err := f.svc.CompleteProject(ctx, project.ID, mallory.ID)
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, services.ErrNotProjectMember) {
				t.Errorf("error = %v, want ErrNotProjectMember", err)
			}
		})
	}

	// Unknown project answers not-found before the member gate
	if _, err := f.svc.ListMembers(ctx, uuid.New(), alice.ID); !errors.Is(err, services.ErrProjectNotFound) {
		t.Errorf("unknown project error = %v, want ErrProjectNotFound", err)
	}
}

func TestProjectTasks(t *testing.T) {
	ctx := context.Background()
	f := newProjectFixture()
	alice := f.userRepo.addUser("alice", "password123")
	bob := f.userRepo.addUser("bob", "password123")

	project, err := f.svc.CreateProject(ctx, alice.ID, &dto.CreateProjectRequest{Title: "launch"})
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := f.svc.JoinProject(ctx, bob.ID, project.JoinCode); err != nil {
		t.Fatal(err)
	}

	task, err := f.svc.CreateTask(ctx, project.ID, alice.ID, &dto.CreateTaskRequest{
		Title:      "ship it",
		AssigneeID: &bob.ID,
		Tags:       []string{"release"},
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.ProjectID == nil || *task.ProjectID != project.ID {
		t.Errorf("task project = %v, want %v", task.ProjectID, project.ID)
	}

	// Any member sees all project tasks, not just their own
	tasks, err := f.svc.ListTasks(ctx, project.ID, bob.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 || tasks[0].ID != task.ID {
		t.Errorf("ListTasks = %v, want the one project task", tasks)
	}
}

func TestCompleteProject(t *testing.T) {
	ctx := context.Background()
	f := newProjectFixture()
	alice := f.userRepo.addUser("alice", "password123")

	project, err := f.svc.CreateProject(ctx, alice.ID, &dto.CreateProjectRequest{Title: "launch"})
	if err != nil {
		t.Fatal(err)
	}

	completed, err := f.svc.CompleteProject(ctx, project.ID, alice.ID)
	if err != nil {
		t.Fatalf("CompleteProject: %v", err)
	}
	if !completed.IsCompleted {
		t.Error("project not marked completed")
	}

	// Idempotent
	if _, err := f.svc.CompleteProject(ctx, project.ID, alice.ID); err != nil {
		t.Errorf("second complete errored: %v", err)
	}

	active, err := f.svc.ListProjects(ctx, alice.ID, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(active) != 0 {
		t.Errorf("completed project still listed as active: %v", active)
	}

	done, err := f.svc.ListProjects(ctx, alice.ID, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(done) != 1 {
		t.Errorf("completed list = %d, want 1", len(done))
	}
}
