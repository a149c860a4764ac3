package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

type CandidateRepository struct {
	col *mongo.Collection
}

func NewCandidateRepository(db *mongo.Database) *CandidateRepository {
	return &CandidateRepository{col: db.Collection(collectionCandidates)}
}

func (r *CandidateRepository) Create(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CandidateRepository) FindByID(ctx context.Context, id string) (*domain.Candidate, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Candidate
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewNotFound("candidate", id)
		}
		return nil, err
	}
	return &c, nil
}

// List filters candidates by at most one predicate, in priority order
// job_opening_id > interview_stage > final_status, sorted by application
// time descending.
func (r *CandidateRepository) List(ctx context.Context, filter ports.CandidateFilter, page ports.PageRequest) ([]*domain.Candidate, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	switch {
	case filter.JobOpeningID != "":
		query["job_opening_id"] = filter.JobOpeningID
	case filter.InterviewStage != "":
		query["interview_stage"] = filter.InterviewStage
	case filter.FinalStatus != "":
		query["final_status"] = filter.FinalStatus
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "applied_at", Value: -1}}).
		SetSkip(page.Offset()).
		SetLimit(int64(page.Limit))

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var items []*domain.Candidate
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *CandidateRepository) Update(ctx context.Context, c *domain.Candidate) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFound("candidate", c.ID)
	}
	return nil
}

func (r *CandidateRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.NewNotFound("candidate", id)
	}
	return nil
}
