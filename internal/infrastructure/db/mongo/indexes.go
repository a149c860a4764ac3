package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes each collection needs. Index creation
// is idempotent, so this doubles as the one-time migration step at startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		collectionPrincipals: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collectionClients: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		collectionContracts: {
			{Keys: bson.D{{Key: "client_id", Value: 1}}},
			{Keys: bson.D{{Key: "end_date", Value: 1}}},
		},
		collectionRequirements: {
			{Keys: bson.D{{Key: "client_id", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		collectionJobOpenings: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "department", Value: 1}}},
			{Keys: bson.D{{Key: "company_id", Value: 1}}},
		},
		collectionCandidates: {
			{Keys: bson.D{{Key: "job_opening_id", Value: 1}}},
			{Keys: bson.D{{Key: "interview_stage", Value: 1}}},
			{Keys: bson.D{{Key: "applied_at", Value: -1}}},
		},
		collectionFeedback: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		collectionTestimonials: {
			{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		collectionInquiries: {
			{Keys: bson.D{{Key: "is_read", Value: 1}, {Key: "created_at", Value: -1}}},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
