package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskboard/internal/models"
	"taskboard/internal/storage"
)

type SubTaskRepository struct {
	collection *mongo.Collection
}

func NewSubTaskRepository(db *mongo.Database) *SubTaskRepository {
	return &SubTaskRepository{collection: db.Collection(subTasksCollection)}
}

func (r *SubTaskRepository) Insert(ctx context.Context, subTask *models.SubTask) error {
	if subTask.ID.IsZero() {
		subTask.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, subTask)
	return err
}

func (r *SubTaskRepository) FindOne(ctx context.Context, id, parent, owner primitive.ObjectID) (*models.SubTask, error) {
	filter := bson.M{
		"_id":        id,
		"parentTask": parent,
		"user":       owner,
	}

	var subTask models.SubTask
	err := r.collection.FindOne(ctx, filter).Decode(&subTask)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &subTask, nil
}

func (r *SubTaskRepository) FindByParent(ctx context.Context, parent, owner primitive.ObjectID) ([]models.SubTask, error) {
	filter := bson.M{
		"parentTask": parent,
		"user":       owner,
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subTasks := []models.SubTask{}
	if err := cursor.All(ctx, &subTasks); err != nil {
		return nil, err
	}
	return subTasks, nil
}

func (r *SubTaskRepository) Update(ctx context.Context, subTask *models.SubTask) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": subTask.ID}, subTask)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *SubTaskRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}
