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

const collectionInquiries = "inquiries"

type InquiryRepository struct {
	col *mongo.Collection
}

func NewInquiryRepository(db *mongo.Database) *InquiryRepository {
	return &InquiryRepository{col: db.Collection(collectionInquiries)}
}

func (r *InquiryRepository) Create(ctx context.Context, i *domain.Inquiry) (*domain.Inquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	i.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (r *InquiryRepository) FindByID(ctx context.Context, id string) (*domain.Inquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var i domain.Inquiry
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&i); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewNotFound("inquiry", id)
		}
		return nil, err
	}
	return &i, nil
}

func (r *InquiryRepository) List(ctx context.Context, isRead *bool, page ports.PageRequest) ([]*domain.Inquiry, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if isRead != nil {
		query["is_read"] = *isRead
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

	var items []*domain.Inquiry
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *InquiryRepository) Update(ctx context.Context, i *domain.Inquiry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": i.ID}, i)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFound("inquiry", i.ID)
	}
	return nil
}

func (r *InquiryRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.NewNotFound("inquiry", id)
	}
	return nil
}

func (r *InquiryRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *InquiryRepository) CountUnread(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{"is_read": false})
}
