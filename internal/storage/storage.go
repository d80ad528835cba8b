package storage

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskboard/internal/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type UserRepository interface {
	// Insert stores a new user. It returns ErrDuplicate if the
	// username or email is already taken.
	Insert(ctx context.Context, user *models.User) error

	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type TaskRepository interface {
	Insert(ctx context.Context, task *models.Task) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Task, error)

	// FindByOwner returns the owner's tasks, newest-created first.
	FindByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Task, error)

	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type SubTaskRepository interface {
	Insert(ctx context.Context, subTask *models.SubTask) error

	// FindOne resolves a sub-task by id, scoped to its parent task
	// and owner. A record that exists under a different parent or
	// owner is reported as ErrNotFound.
	FindOne(ctx context.Context, id, parent, owner primitive.ObjectID) (*models.SubTask, error)

	// FindByParent returns the parent's sub-tasks, oldest-created first.
	FindByParent(ctx context.Context, parent, owner primitive.ObjectID) ([]models.SubTask, error)

	Update(ctx context.Context, subTask *models.SubTask) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
