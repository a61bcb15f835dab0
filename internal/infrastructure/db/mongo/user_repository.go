package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mediquix/mediquix-server/internal/core/domain"
)

const collectionUsers = "users"

// UserRepository implements ports.UserRepository.
type UserRepository struct {
	collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{collection{col: db.Collection(collectionUsers)}}
}

func (r *UserRepository) Insert(ctx context.Context, doc domain.Document) (*domain.InsertResult, error) {
	return r.insert(ctx, doc)
}

func (r *UserRepository) List(ctx context.Context) ([]domain.Document, error) {
	return r.find(ctx, bson.M{})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.Document, error) {
	return r.findByID(ctx, id)
}

// FindByEmail is the single point read behind the role gate.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.Document, error) {
	return r.findOne(ctx, bson.M{domain.FieldEmail: email})
}

func (r *UserRepository) UpdateByID(ctx context.Context, id string, set domain.Document) (*domain.UpdateResult, error) {
	return r.setByID(ctx, id, set)
}

func (r *UserRepository) UpdateByEmail(ctx context.Context, email string, set domain.Document) (*domain.UpdateResult, error) {
	return r.updateOne(ctx, bson.M{domain.FieldEmail: email}, setUpdate(set))
}

func (r *UserRepository) DeleteByID(ctx context.Context, id string) (*domain.DeleteResult, error) {
	return r.deleteByID(ctx, id)
}
