package repository

import (
	"context"

	"storefront-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Resolver implements ReferenceResolver with one batched $in query per
// collection. Dangling references are left out of the returned map; callers
// render them as absent.
type Resolver struct {
	db *mongo.Database
}

func NewResolver(db *mongo.Database) ReferenceResolver {
	return &Resolver{db: db}
}

func (r *Resolver) Products(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Product, error) {
	out := make(map[primitive.ObjectID]models.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cursor, err := r.db.Collection("products").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	for _, p := range products {
		out[p.ID] = p
	}
	return out, nil
}

func (r *Resolver) Categories(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Category, error) {
	out := make(map[primitive.ObjectID]models.Category, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cursor, err := r.db.Collection("categories").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	for _, c := range categories {
		out[c.ID] = c
	}
	return out, nil
}

func (r *Resolver) Addresses(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Address, error) {
	out := make(map[primitive.ObjectID]models.Address, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	cursor, err := r.db.Collection("addresses").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var addresses []models.Address
	if err := cursor.All(ctx, &addresses); err != nil {
		return nil, err
	}
	for _, a := range addresses {
		out[a.ID] = a
	}
	return out, nil
}
