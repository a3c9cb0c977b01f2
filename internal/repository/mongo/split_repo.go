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

const settingsCollectionName = "settings"

// mongoSplitConfigRepository implements repository.SplitConfigRepository
// using MongoDB. The three split maps live in one settings document per user.
type mongoSplitConfigRepository struct {
	collection *mongo.Collection
}

// NewMongoSplitConfigRepository creates a split-config repository on the given database.
func NewMongoSplitConfigRepository(db *mongo.Database) repository.SplitConfigRepository {
	return &mongoSplitConfigRepository{
		collection: db.Collection(settingsCollectionName),
	}
}

// EnsureSettingsIndexes creates the unique userId index for the singleton
// settings document.
func EnsureSettingsIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(settingsCollectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return mapError(err)
}

func (r *mongoSplitConfigRepository) Get(ctx context.Context, userID string) (domain.SplitConfig, error) {
	var cfg domain.SplitConfig

	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&cfg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// No settings yet: report an empty config, the service seeds it.
			return domain.SplitConfig{}, nil
		}
		return domain.SplitConfig{}, mapError(err)
	}
	return cfg, nil
}

// Save merges the three maps into the stored document. Map keys absent from
// cfg survive; use Replace when keys must disappear.
func (r *mongoSplitConfigRepository) Save(ctx context.Context, userID string, cfg domain.SplitConfig) error {
	fields := bson.M{
		"userId":    userID,
		"updatedAt": time.Now().UTC(),
	}
	for name, exercises := range cfg.Splits {
		fields["splits."+name] = exercises
	}
	for name, color := range cfg.Colors {
		fields["colors."+name] = color
	}
	for name, muscles := range cfg.Muscles {
		fields["muscles."+name] = muscles
	}

	filter := bson.M{"userId": userID}
	_, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": fields}, options.Update().SetUpsert(true))
	return mapError(err)
}

// Replace overwrites the stored document entirely, which is what a rename or
// delete needs: a merge would leave the removed split's keys behind.
func (r *mongoSplitConfigRepository) Replace(ctx context.Context, userID string, cfg domain.SplitConfig) error {
	doc := bson.M{
		"userId":    userID,
		"splits":    cfg.Splits,
		"colors":    cfg.Colors,
		"muscles":   cfg.Muscles,
		"updatedAt": time.Now().UTC(),
	}

	filter := bson.M{"userId": userID}
	_, err := r.collection.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true))
	return mapError(err)
}
