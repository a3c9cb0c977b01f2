package mongo

import (
	"context"
	"errors"
	"time"

	"arnold/tracker/internal/domain"
	"arnold/tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository using MongoDB.
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a workout repository on the given database.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

// EnsureWorkoutIndexes creates the unique (userId, date) index that backs the
// one-workout-per-day upsert key.
func EnsureWorkoutIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(workoutCollectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return mapError(err)
}

func (r *mongoWorkoutRepository) GetAll(ctx context.Context, userID string) ([]domain.Workout, error) {
	return r.fetchAll(ctx, userID)
}

func (r *mongoWorkoutRepository) fetchAll(ctx context.Context, userID string) ([]domain.Workout, error) {
	filter := bson.M{"userId": userID}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, mapError(err)
	}
	defer cursor.Close(ctx)

	workouts := []domain.Workout{}
	if err := cursor.All(ctx, &workouts); err != nil {
		return nil, mapError(err)
	}
	return workouts, nil
}

func (r *mongoWorkoutRepository) GetByDate(ctx context.Context, userID, date string) (*domain.Workout, error) {
	var workout domain.Workout
	filter := bson.M{"userId": userID, "date": date}

	err := r.collection.FindOne(ctx, filter).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, mapError(err)
	}
	return &workout, nil
}

// Upsert writes the workout under its (userId, date) key. The update is a
// field-level $set, so repeating a save for the same date merges over the
// stored document instead of duplicating it.
func (r *mongoWorkoutRepository) Upsert(ctx context.Context, userID string, workout domain.Workout) error {
	filter := bson.M{"userId": userID, "date": workout.Date}
	update := bson.M{"$set": bson.M{
		"id":        workout.ID,
		"userId":    userID,
		"date":      workout.Date,
		"split":     workout.Split,
		"exercises": workout.Exercises,
		"isRestDay": workout.IsRestDay,
		"updatedAt": time.Now().UTC(),
	}}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return mapError(err)
}

func (r *mongoWorkoutRepository) Delete(ctx context.Context, userID, date string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"userId": userID, "date": date})
	if err != nil {
		return mapError(err)
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// RenameSplit rewrites every workout of the user still referencing oldName.
// Zero matches is not an error: the split may simply never have been trained.
func (r *mongoWorkoutRepository) RenameSplit(ctx context.Context, userID, oldName, newName string) error {
	filter := bson.M{"userId": userID, "split": oldName}
	update := bson.M{"$set": bson.M{
		"split":     newName,
		"updatedAt": time.Now().UTC(),
	}}

	_, err := r.collection.UpdateMany(ctx, filter, update)
	return mapError(err)
}

func (r *mongoWorkoutRepository) Subscribe(ctx context.Context, userID string) (*repository.Subscription[domain.Workout], error) {
	return watchUserCollection(ctx, r.collection, userID, func(ctx context.Context) ([]domain.Workout, error) {
		return r.fetchAll(ctx, userID)
	})
}
