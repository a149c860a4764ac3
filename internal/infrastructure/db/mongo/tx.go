package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// withTransaction runs fn inside a MongoDB session transaction. All writes
// issued through the session context commit together or not at all.
func withTransaction(ctx context.Context, db *mongo.Database, fn func(sc mongo.SessionContext) error) error {
	session, err := db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
