package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/malikdawood-collab/collaborative-task-manager/domain/models"
	"github.com/malikdawood-collab/collaborative-task-manager/domain/repositories"
)

// In-memory repositories backing the service tests. Missing rows answer
// with gorm.ErrRecordNotFound like the real implementations.

type fakeUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) addUser(username, password string) *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := &models.User{
		ID:       uuid.New(),
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
	}
	r.users[user.ID] = user
	return user
}

type fakeProjectRepo struct {
	projects map[uuid.UUID]*models.Project
	// membership mirrors the project_members join table
	members map[uuid.UUID]map[uuid.UUID]bool
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{
		projects: make(map[uuid.UUID]*models.Project),
		members:  make(map[uuid.UUID]map[uuid.UUID]bool),
	}
}

func (r *fakeProjectRepo) Create(_ context.Context, project *models.Project) error {
	r.projects[project.ID] = project
	r.members[project.ID] = make(map[uuid.UUID]bool)
	for _, m := range project.Members {
		r.members[project.ID][m.ID] = true
	}
	return nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Project, error) {
	if p, ok := r.projects[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProjectRepo) GetByJoinCode(_ context.Context, code string) (*models.Project, error) {
	for _, p := range r.projects {
		if p.JoinCode == code {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProjectRepo) ListByMember(_ context.Context, userID uuid.UUID, completed bool) ([]*models.Project, error) {
	var out []*models.Project
	for id, p := range r.projects {
		if r.members[id][userID] && p.IsCompleted == completed {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) AddMember(_ context.Context, project *models.Project, user *models.User) error {
	r.members[project.ID][user.ID] = true
	project.Members = append(project.Members, *user)
	return nil
}

func (r *fakeProjectRepo) IsMember(_ context.Context, projectID, userID uuid.UUID) (bool, error) {
	return r.members[projectID][userID], nil
}

func (r *fakeProjectRepo) Save(_ context.Context, project *models.Project) error {
	if _, ok := r.projects[project.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.projects[project.ID] = project
	return nil
}

type fakeTaskRepo struct {
	tasks map[uuid.UUID]*models.Task
	users *fakeUserRepo
	// getErr simulates an infrastructure failure on lookups
	getErr error
}

func newFakeTaskRepo(users *fakeUserRepo) *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uuid.UUID]*models.Task), users: users}
}

func (r *fakeTaskRepo) Create(_ context.Context, task *models.Task) error {
	r.tasks[task.ID] = task
	return nil
}

// GetByID mirrors the real repository's creator/assignee preloads.
func (r *fakeTaskRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Task, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	task, ok := r.tasks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if creator, ok := r.users.users[task.CreatorID]; ok {
		task.Creator = *creator
	}
	if task.AssigneeID != nil {
		if assignee, ok := r.users.users[*task.AssigneeID]; ok {
			task.Assignee = assignee
		}
	} else {
		task.Assignee = nil
	}
	return task, nil
}

func (r *fakeTaskRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*models.Task, error) {
	var out []*models.Task
	for _, task := range r.tasks {
		if task.VisibleTo(userID) {
			out = append(out, task)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) ListByProject(_ context.Context, projectID uuid.UUID) ([]*models.Task, error) {
	var out []*models.Task
	for _, task := range r.tasks {
		if task.ProjectID != nil && *task.ProjectID == projectID {
			out = append(out, task)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) ListByCreator(_ context.Context, userID uuid.UUID) ([]*models.Task, error) {
	var out []*models.Task
	for _, task := range r.tasks {
		if task.CreatorID == userID {
			out = append(out, task)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) ListByAssignee(_ context.Context, userID uuid.UUID) ([]*models.Task, error) {
	var out []*models.Task
	for _, task := range r.tasks {
		if task.AssigneeID != nil && *task.AssigneeID == userID {
			out = append(out, task)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Save(_ context.Context, task *models.Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	task.UpdatedAt = time.Now()
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) ReplaceTags(_ context.Context, task *models.Task, tags []*models.Tag) error {
	task.Tags = task.Tags[:0]
	for _, tag := range tags {
		task.Tags = append(task.Tags, *tag)
	}
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, task *models.Task) error {
	delete(r.tasks, task.ID)
	return nil
}

type fakeTagRepo struct {
	tags map[string]*models.Tag
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: make(map[string]*models.Tag)}
}

func (r *fakeTagRepo) GetOrCreateByName(_ context.Context, name string) (*models.Tag, error) {
	if tag, ok := r.tags[name]; ok {
		return tag, nil
	}
	tag := &models.Tag{ID: uuid.New(), Name: name}
	r.tags[name] = tag
	return tag, nil
}

func (r *fakeTagRepo) List(_ context.Context) ([]*models.Tag, error) {
	out := make([]*models.Tag, 0, len(r.tags))
	for _, tag := range r.tags {
		out = append(out, tag)
	}
	return out, nil
}

// interface conformance
var (
	_ repositories.UserRepository    = (*fakeUserRepo)(nil)
	_ repositories.ProjectRepository = (*fakeProjectRepo)(nil)
	_ repositories.TaskRepository    = (*fakeTaskRepo)(nil)
	_ repositories.TagRepository     = (*fakeTagRepo)(nil)
)
