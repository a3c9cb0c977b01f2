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

const measurementCollectionName = "measurements"

// mongoMeasurementRepository implements repository.MeasurementRepository using MongoDB.
type mongoMeasurementRepository struct {
	collection *mongo.Collection
}

// NewMongoMeasurementRepository creates a measurement repository on the given database.
func NewMongoMeasurementRepository(db *mongo.Database) repository.MeasurementRepository {
	return &mongoMeasurementRepository{
		collection: db.Collection(measurementCollectionName),
	}
}

// EnsureMeasurementIndexes creates the unique (userId, date) key index.
func EnsureMeasurementIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(measurementCollectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return mapError(err)
}

func (r *mongoMeasurementRepository) GetAll(ctx context.Context, userID string) ([]domain.BodyMeasurement, error) {
	return r.fetchAll(ctx, userID)
}

func (r *mongoMeasurementRepository) fetchAll(ctx context.Context, userID string) ([]domain.BodyMeasurement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, mapError(err)
	}
	defer cursor.Close(ctx)

	measurements := []domain.BodyMeasurement{}
	if err := cursor.All(ctx, &measurements); err != nil {
		return nil, mapError(err)
	}
	return measurements, nil
}

// Upsert merges the measurement into the document keyed by (userId, date).
// Optional tape fields are only written when present, so a weight-only save
// does not wipe previously recorded girths for the same date.
func (r *mongoMeasurementRepository) Upsert(ctx context.Context, userID string, m domain.BodyMeasurement) error {
	fields := bson.M{
		"id":        m.ID,
		"userId":    userID,
		"date":      m.Date,
		"weight":    m.Weight,
		"updatedAt": time.Now().UTC(),
	}
	for name, value := range map[string]*float64{
		"chest":  m.Chest,
		"waist":  m.Waist,
		"hips":   m.Hips,
		"biceps": m.Biceps,
		"thighs": m.Thighs,
	} {
		if value != nil {
			fields[name] = *value
		}
	}

	filter := bson.M{"userId": userID, "date": m.Date}
	_, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": fields}, options.Update().SetUpsert(true))
	return mapError(err)
}

func (r *mongoMeasurementRepository) Delete(ctx context.Context, userID, date string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"userId": userID, "date": date})
	if err != nil {
		return mapError(err)
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoMeasurementRepository) Subscribe(ctx context.Context, userID string) (*repository.Subscription[domain.BodyMeasurement], error) {
	return watchUserCollection(ctx, r.collection, userID, func(ctx context.Context) ([]domain.BodyMeasurement, error) {
		return r.fetchAll(ctx, userID)
	})
}
