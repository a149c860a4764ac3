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

const (
	collectionJobOpenings = "job_openings"
	collectionCandidates  = "candidates"
)

type JobOpeningRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewJobOpeningRepository(db *mongo.Database) *JobOpeningRepository {
	return &JobOpeningRepository{db: db, col: db.Collection(collectionJobOpenings)}
}

func (r *JobOpeningRepository) Create(ctx context.Context, j *domain.JobOpening) (*domain.JobOpening, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	j.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

func (r *JobOpeningRepository) FindByID(ctx context.Context, id string) (*domain.JobOpening, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var j domain.JobOpening
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&j); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewNotFound("job opening", id)
		}
		return nil, err
	}
	return &j, nil
}

func (r *JobOpeningRepository) List(ctx context.Context, filter ports.JobOpeningFilter, page ports.PageRequest) ([]*domain.JobOpening, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.CompanyID != "" {
		query["company_id"] = filter.CompanyID
	} else {
		if filter.Status != "" {
			query["status"] = filter.Status
		}
		if filter.Department != "" {
			query["department"] = filter.Department
		}
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(page.Offset()).
		SetLimit(int64(page.Limit))

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var items []*domain.JobOpening
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *JobOpeningRepository) Update(ctx context.Context, j *domain.JobOpening) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": j.ID}, j)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFound("job opening", j.ID)
	}
	return nil
}

// DeleteCascade removes the opening and all candidates referencing it
// inside one transaction.
func (r *JobOpeningRepository) DeleteCascade(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return withTransaction(ctx, r.db, func(sc mongo.SessionContext) error {
		if _, err := r.db.Collection(collectionCandidates).DeleteMany(sc, bson.M{"job_opening_id": id}); err != nil {
			return err
		}
		res, err := r.col.DeleteOne(sc, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if res.DeletedCount == 0 {
			return domain.NewNotFound("job opening", id)
		}
		return nil
	})
}
