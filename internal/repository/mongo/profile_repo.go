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

const profileCollectionName = "profiles"

// mongoProfileRepository implements repository.ProfileRepository using
// MongoDB. Each user owns at most one profile document.
type mongoProfileRepository struct {
	collection *mongo.Collection
}

// NewMongoProfileRepository creates a profile repository on the given database.
func NewMongoProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &mongoProfileRepository{
		collection: db.Collection(profileCollectionName),
	}
}

// EnsureProfileIndexes creates the unique userId index for the singleton
// profile document.
func EnsureProfileIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(profileCollectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return mapError(err)
}

func (r *mongoProfileRepository) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	var profile domain.UserProfile

	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, mapError(err)
	}
	return &profile, nil
}

func (r *mongoProfileRepository) Save(ctx context.Context, userID string, profile domain.UserProfile) error {
	filter := bson.M{"userId": userID}
	update := bson.M{"$set": bson.M{
		"userId":          userID,
		"age":             profile.Age,
		"height":          profile.Height,
		"weight":          profile.Weight,
		"restDaysPerWeek": profile.RestDaysPerWeek,
		"updatedAt":       time.Now().UTC(),
	}}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return mapError(err)
}
