// Package memory holds map-backed repositories used by tests in place of
// the mongodb backend. The implementations are mutex-guarded and generate
// ObjectIDs the same way the real backend does.
package memory

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskboard/internal/models"
	"taskboard/internal/storage"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]models.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[primitive.ObjectID]models.User)}
}

func (r *UserRepository) Insert(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return storage.ErrDuplicate
		}
	}

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*models.User, error) {
	return r.findBy(func(u models.User) bool { return u.Username == username })
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return r.findBy(func(u models.User) bool { return u.Email == email })
}

func (r *UserRepository) findBy(match func(models.User) bool) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if match(u) {
			user := u
			return &user, nil
		}
	}
	return nil, storage.ErrNotFound
}

type TaskRepository struct {
	mu    sync.RWMutex
	tasks map[primitive.ObjectID]models.Task
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{tasks: make(map[primitive.ObjectID]models.Task)}
}

func (r *TaskRepository) Insert(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	r.tasks[task.ID] = *task
	return nil
}

func (r *TaskRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &task, nil
}

func (r *TaskRepository) FindByOwner(_ context.Context, owner primitive.ObjectID) ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := []models.Task{}
	for _, t := range r.tasks {
		if t.Owner == owner {
			tasks = append(tasks, t)
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks, nil
}

func (r *TaskRepository) Update(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[task.ID]; !ok {
		return storage.ErrNotFound
	}
	r.tasks[task.ID] = *task
	return nil
}

func (r *TaskRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

type SubTaskRepository struct {
	mu       sync.RWMutex
	subTasks map[primitive.ObjectID]models.SubTask
}

func NewSubTaskRepository() *SubTaskRepository {
	return &SubTaskRepository{subTasks: make(map[primitive.ObjectID]models.SubTask)}
}

func (r *SubTaskRepository) Insert(_ context.Context, subTask *models.SubTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if subTask.ID.IsZero() {
		subTask.ID = primitive.NewObjectID()
	}
	r.subTasks[subTask.ID] = *subTask
	return nil
}

func (r *SubTaskRepository) FindOne(_ context.Context, id, parent, owner primitive.ObjectID) (*models.SubTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subTask, ok := r.subTasks[id]
	if !ok || subTask.Parent != parent || subTask.Owner != owner {
		return nil, storage.ErrNotFound
	}
	return &subTask, nil
}

func (r *SubTaskRepository) FindByParent(_ context.Context, parent, owner primitive.ObjectID) ([]models.SubTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subTasks := []models.SubTask{}
	for _, st := range r.subTasks {
		if st.Parent == parent && st.Owner == owner {
			subTasks = append(subTasks, st)
		}
	}
	sort.Slice(subTasks, func(i, j int) bool {
		return subTasks[i].CreatedAt.Before(subTasks[j].CreatedAt)
	})
	return subTasks, nil
}

func (r *SubTaskRepository) Update(_ context.Context, subTask *models.SubTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.subTasks[subTask.ID]; !ok {
		return storage.ErrNotFound
	}
	r.subTasks[subTask.ID] = *subTask
	return nil
}

func (r *SubTaskRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.subTasks[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.subTasks, id)
	return nil
}
