package mongo

import (
	"context"

	"arnold/tracker/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// watchUserCollection opens a change stream on coll and turns it into a
// snapshot subscription: the current result of fetch is published
// immediately, then re-fetched and re-published after every change event
// touching the user's documents. Subscribers therefore always receive the
// complete, consistent list and never have to apply diffs.
func watchUserCollection[T any](
	ctx context.Context,
	coll *mongo.Collection,
	userID string,
	fetch func(context.Context) ([]T, error),
) (*repository.Subscription[T], error) {
	// Delete events carry no full document, so the match covers inserts,
	// updates and replaces by owner and lets deletes through unconditionally;
	// a foreign delete only costs one redundant re-query.
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"$or": bson.A{
			bson.M{"fullDocument.userId": userID},
			bson.M{"operationType": "delete"},
		}}}},
	}

	streamCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	stream, err := coll.Watch(streamCtx, pipeline)
	if err != nil {
		cancel()
		return nil, mapError(err)
	}

	sub := repository.NewSubscription[T](cancel)
	log := logrus.WithFields(logrus.Fields{
		"collection": coll.Name(),
		"userId":     userID,
	})

	go func() {
		defer sub.Close()
		defer func() {
			if err := stream.Close(context.Background()); err != nil {
				log.WithError(err).Warn("failed to close change stream")
			}
		}()

		publish := func() bool {
			snapshot, err := fetch(streamCtx)
			if err != nil {
				if streamCtx.Err() != nil {
					return false
				}
				log.WithError(err).Error("snapshot re-query failed")
				sub.Fail(mapError(err))
				return true
			}
			sub.Publish(snapshot)
			return true
		}

		if !publish() {
			return
		}

		for stream.Next(streamCtx) {
			if !publish() {
				return
			}
		}
		if err := stream.Err(); err != nil && streamCtx.Err() == nil {
			log.WithError(err).Error("change stream terminated")
			sub.Fail(mapError(err))
		}
	}()

	return sub, nil
}
