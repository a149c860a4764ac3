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

type RequirementRepository struct {
	col *mongo.Collection
}

func NewRequirementRepository(db *mongo.Database) *RequirementRepository {
	return &RequirementRepository{col: db.Collection(collectionRequirements)}
}

func (r *RequirementRepository) Create(ctx context.Context, req *domain.ResourceRequirement) (*domain.ResourceRequirement, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	req.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (r *RequirementRepository) FindByID(ctx context.Context, id string) (*domain.ResourceRequirement, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var req domain.ResourceRequirement
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&req); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewNotFound("resource requirement", id)
		}
		return nil, err
	}
	return &req, nil
}

func (r *RequirementRepository) List(ctx context.Context, filter ports.RequirementFilter, page ports.PageRequest) ([]*domain.ResourceRequirement, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	switch {
	case filter.ClientID != "":
		query["client_id"] = filter.ClientID
	case filter.Status != "":
		query["status"] = filter.Status
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

	var items []*domain.ResourceRequirement
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *RequirementRepository) ListOpen(ctx context.Context) ([]*domain.ResourceRequirement, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"status": domain.RequirementOpen}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*domain.ResourceRequirement
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *RequirementRepository) Update(ctx context.Context, req *domain.ResourceRequirement) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": req.ID}, req)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFound("resource requirement", req.ID)
	}
	return nil
}

func (r *RequirementRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.NewNotFound("resource requirement", id)
	}
	return nil
}
