package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/khushalpatil0812/future-tech-career/internal/core/domain"
	"github.com/khushalpatil0812/future-tech-career/internal/core/ports"
)

const (
	collectionFeedback     = "feedback"
	collectionTestimonials = "testimonials"
)

type FeedbackRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewFeedbackRepository(db *mongo.Database) *FeedbackRepository {
	return &FeedbackRepository{db: db, col: db.Collection(collectionFeedback)}
}

func (r *FeedbackRepository) Create(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	f.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (r *FeedbackRepository) FindByID(ctx context.Context, id string) (*domain.Feedback, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var f domain.Feedback
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&f); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewNotFound("feedback", id)
		}
		return nil, err
	}
	return &f, nil
}

func (r *FeedbackRepository) List(ctx context.Context, status string, page ports.PageRequest) ([]*domain.Feedback, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if status != "" {
		query["status"] = status
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

	var items []*domain.Feedback
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ApprovePending flips the feedback to approved and inserts the
// testimonial inside one transaction. The status write is conditional on
// the current status still being pending; when the guard misses, nothing
// is written and the caller gets a conflict. This linearizes concurrent
// approvals across service instances without in-process locking.
func (r *FeedbackRepository) ApprovePending(ctx context.Context, id string, t *domain.Testimonial) (*domain.Testimonial, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := withTransaction(ctx, r.db, func(sc mongo.SessionContext) error {
		res, err := r.col.UpdateOne(sc,
			bson.M{"_id": id, "status": domain.FeedbackPending},
			bson.M{"$set": bson.M{"status": domain.FeedbackApproved, "updated_at": time.Now().UTC()}},
		)
		if err != nil {
			return err
		}
		if res.ModifiedCount == 0 {
			return domain.NewConflict("feedback is not pending")
		}

		t.ID = primitive.NewObjectID().Hex()
		_, err = r.db.Collection(collectionTestimonials).InsertOne(sc, t)
		return err
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// RejectPending flips the feedback to rejected, conditional on the
// current status still being pending.
func (r *FeedbackRepository) RejectPending(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "status": domain.FeedbackPending},
		bson.M{"$set": bson.M{"status": domain.FeedbackRejected, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return domain.NewConflict("feedback is not pending")
	}
	return nil
}

func (r *FeedbackRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{"status": status})
}
