package mongo

import (
	"context"
	"time"

	"arnold/tracker/internal/domain"
	"arnold/tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const noteCollectionName = "notes"

// mongoNoteRepository implements repository.NoteRepository using MongoDB.
// Notes are keyed by (userId, date, id) so one date can hold several notes.
type mongoNoteRepository struct {
	collection *mongo.Collection
}

// NewMongoNoteRepository creates a note repository on the given database.
func NewMongoNoteRepository(db *mongo.Database) repository.NoteRepository {
	return &mongoNoteRepository{
		collection: db.Collection(noteCollectionName),
	}
}

// EnsureNoteIndexes creates the unique (userId, date, id) composite key index.
func EnsureNoteIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(noteCollectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}, {Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return mapError(err)
}

func (r *mongoNoteRepository) GetAll(ctx context.Context, userID string) ([]domain.QuickNote, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, mapError(err)
	}
	defer cursor.Close(ctx)

	notes := []domain.QuickNote{}
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, mapError(err)
	}
	return notes, nil
}

func (r *mongoNoteRepository) Upsert(ctx context.Context, userID string, note domain.QuickNote) error {
	filter := bson.M{"userId": userID, "date": note.Date, "id": note.ID}
	update := bson.M{"$set": bson.M{
		"id":        note.ID,
		"userId":    userID,
		"date":      note.Date,
		"content":   note.Content,
		"createdAt": note.CreatedAt,
		"color":     note.Color,
		"updatedAt": time.Now().UTC(),
	}}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return mapError(err)
}

func (r *mongoNoteRepository) Delete(ctx context.Context, userID, date string, id int64) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"userId": userID, "date": date, "id": id})
	if err != nil {
		return mapError(err)
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
