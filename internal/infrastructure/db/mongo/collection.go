package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mediquix/mediquix-server/internal/core/domain"
)

// collection holds the document operations every repository shares.
// Documents go in and come out as-is.
type collection struct {
	col *mongo.Collection
}

func (c collection) insert(ctx context.Context, doc domain.Document) (*domain.InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if doc == nil {
		doc = domain.Document{}
	}
	res, err := c.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &domain.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (c collection) find(ctx context.Context, filter bson.M) ([]domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := c.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	docs := []domain.Document{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// findOne returns nil without error when nothing matches.
func (c collection) findOne(ctx context.Context, filter bson.M) (domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc domain.Document
	if err := c.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

func (c collection) updateOne(ctx context.Context, filter, update bson.M) (*domain.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := c.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, err
	}
	return &domain.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

func (c collection) deleteOne(ctx context.Context, filter bson.M) (*domain.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := c.col.DeleteOne(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &domain.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func (c collection) findByID(ctx context.Context, id string) (domain.Document, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	return c.findOne(ctx, filter)
}

func (c collection) setByID(ctx context.Context, id string, set domain.Document) (*domain.UpdateResult, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	return c.updateOne(ctx, filter, setUpdate(set))
}

func (c collection) deleteByID(ctx context.Context, id string) (*domain.DeleteResult, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	return c.deleteOne(ctx, filter)
}

func idFilter(id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return bson.M{"_id": oid}, nil
}

func setUpdate(set domain.Document) bson.M {
	if set == nil {
		set = domain.Document{}
	}
	return bson.M{"$set": set}
}
