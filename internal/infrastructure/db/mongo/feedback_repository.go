package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mediquix/mediquix-server/internal/core/domain"
)

const collectionFeedbacks = "feedbacks"

// FeedbackRepository implements ports.FeedbackRepository.
type FeedbackRepository struct {
	collection
}

func NewFeedbackRepository(db *mongo.Database) *FeedbackRepository {
	return &FeedbackRepository{collection{col: db.Collection(collectionFeedbacks)}}
}

func (r *FeedbackRepository) Insert(ctx context.Context, doc domain.Document) (*domain.InsertResult, error) {
	return r.insert(ctx, doc)
}

func (r *FeedbackRepository) List(ctx context.Context) ([]domain.Document, error) {
	return r.find(ctx, bson.M{})
}
