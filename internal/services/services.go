package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskboard/internal/models"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUsernameTaken        = errors.New("username already exists")
	ErrEmailTaken           = errors.New("email already registered")
	ErrUserPasswordMismatch = errors.New("user password mismatch")
	ErrInvalidToken         = errors.New("invalid token")

	ErrTaskNotFound    = errors.New("task not found")
	ErrSubTaskNotFound = errors.New("sub-task not found")
	ErrNotOwner        = errors.New("caller does not own the record")
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrEmptyPatch      = errors.New("no update fields provided")
)

type AuthService interface {
	// Register stores a new user with a hashed password and issues a
	// signed token for it.
	//
	// It returns ErrUsernameTaken or ErrEmailTaken if another user
	// already holds the username or email.
	Register(ctx context.Context, params RegisterParams) (*AuthResult, error)

	// Login authenticates the user by username and password.
	//
	// It returns ErrUserNotFound if the username is unknown or
	// ErrUserPasswordMismatch if the password doesn't match.
	Login(ctx context.Context, params LoginParams) (*AuthResult, error)

	// VerifyToken parses and validates the given token and resolves
	// it to the current user record.
	//
	// It returns ErrInvalidToken if the token is malformed, expired,
	// carries a bad signature, or references a user that no longer
	// exists.
	VerifyToken(ctx context.Context, token string) (*models.User, error)
}

type TaskService interface {
	Create(ctx context.Context, owner primitive.ObjectID, params CreateTaskParams) (*models.Task, error)

	// ListByOwner returns the owner's tasks, newest-created first.
	ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Task, error)

	// GetWithSubTasks loads one task and its sub-tasks, oldest-created
	// first. The record is loaded before the ownership check, so a
	// task owned by someone else fails with ErrNotOwner rather than
	// ErrTaskNotFound.
	GetWithSubTasks(ctx context.Context, id, owner primitive.ObjectID) (*models.Task, []models.SubTask, error)

	// Update applies only the fields present in the patch. An empty
	// patch fails with ErrEmptyPatch.
	Update(ctx context.Context, id, owner primitive.ObjectID, patch UpdateTaskParams) (*models.Task, error)

	// Delete removes the task. Its sub-tasks are left in place.
	Delete(ctx context.Context, id, owner primitive.ObjectID) error
}

// SubTaskService operations resolve the parent task first and fail with
// ErrTaskNotFound if it is absent or ErrNotOwner if the caller does not
// own it.
type SubTaskService interface {
	Create(ctx context.Context, owner, parent primitive.ObjectID, params CreateSubTaskParams) (*models.SubTask, error)
	ListByParent(ctx context.Context, parent, owner primitive.ObjectID) ([]models.SubTask, error)
	Update(ctx context.Context, id, parent, owner primitive.ObjectID, patch UpdateSubTaskParams) (*models.SubTask, error)
	Delete(ctx context.Context, id, parent, owner primitive.ObjectID) error
}

type RegisterParams struct {
	Username string
	Email    string
	Password string
}

type LoginParams struct {
	Username string
	Password string
}

type AuthResult struct {
	Token string
	User  *models.User
}

type CreateTaskParams struct {
	Title       string
	Description string
	Status      string
}

type UpdateTaskParams struct {
	Title       *string
	Description *string
	Status      *string
}

func (p UpdateTaskParams) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil
}

type CreateSubTaskParams struct {
	Title       string
	Description string
	Status      string
}

type UpdateSubTaskParams struct {
	Title       *string
	Description *string
	Status      *string
}

func (p UpdateSubTaskParams) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil
}
