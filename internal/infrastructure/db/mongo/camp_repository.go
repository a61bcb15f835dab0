package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mediquix/mediquix-server/internal/core/domain"
)

const collectionCamps = "camps"

// CampRepository implements ports.CampRepository.
type CampRepository struct {
	collection
}

func NewCampRepository(db *mongo.Database) *CampRepository {
	return &CampRepository{collection{col: db.Collection(collectionCamps)}}
}

func (r *CampRepository) Insert(ctx context.Context, doc domain.Document) (*domain.InsertResult, error) {
	return r.insert(ctx, doc)
}

func (r *CampRepository) List(ctx context.Context) ([]domain.Document, error) {
	return r.find(ctx, bson.M{})
}

func (r *CampRepository) FindByID(ctx context.Context, id string) (domain.Document, error) {
	return r.findByID(ctx, id)
}

func (r *CampRepository) UpdateByID(ctx context.Context, id string, set domain.Document) (*domain.UpdateResult, error) {
	return r.setByID(ctx, id, set)
}

func (r *CampRepository) DeleteByID(ctx context.Context, id string) (*domain.DeleteResult, error) {
	return r.deleteByID(ctx, id)
}

// IncrementParticipants bumps participantCount on the first camp named campName.
func (r *CampRepository) IncrementParticipants(ctx context.Context, campName any) (*domain.UpdateResult, error) {
	return r.updateOne(ctx,
		bson.M{domain.FieldCampName: campName},
		bson.M{"$inc": bson.M{domain.FieldParticipantCount: 1}},
	)
}
