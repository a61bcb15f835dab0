package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mediquix/mediquix-server/internal/core/domain"
)

const collectionJoins = "joinCamps"

// JoinRepository implements ports.JoinRepository.
type JoinRepository struct {
	collection
}

func NewJoinRepository(db *mongo.Database) *JoinRepository {
	return &JoinRepository{collection{col: db.Collection(collectionJoins)}}
}

func (r *JoinRepository) Insert(ctx context.Context, doc domain.Document) (*domain.InsertResult, error) {
	return r.insert(ctx, doc)
}

func (r *JoinRepository) List(ctx context.Context, email string) ([]domain.Document, error) {
	filter := bson.M{}
	if email != "" {
		filter[domain.FieldEmail] = email
	}
	return r.find(ctx, filter)
}

func (r *JoinRepository) FindByID(ctx context.Context, id string) (domain.Document, error) {
	return r.findByID(ctx, id)
}

func (r *JoinRepository) UpdateByID(ctx context.Context, id string, set domain.Document) (*domain.UpdateResult, error) {
	return r.setByID(ctx, id, set)
}

func (r *JoinRepository) DeleteByID(ctx context.Context, id string) (*domain.DeleteResult, error) {
	return r.deleteByID(ctx, id)
}
