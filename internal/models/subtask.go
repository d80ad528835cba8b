package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SubTaskStatusTodo       = "todo"
	SubTaskStatusInProgress = "in-progress"
	SubTaskStatusReview     = "review"
	SubTaskStatusDone       = "done"
)

// SubTaskStatuses lists the kanban columns in board order.
var SubTaskStatuses = []string{
	SubTaskStatusTodo,
	SubTaskStatusInProgress,
	SubTaskStatusReview,
	SubTaskStatusDone,
}

type SubTask struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Owner       primitive.ObjectID `bson:"user" json:"user"`
	Parent      primitive.ObjectID `bson:"parentTask" json:"parentTask"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func ValidSubTaskStatus(status string) bool {
	for _, s := range SubTaskStatuses {
		if s == status {
			return true
		}
	}
	return false
}
