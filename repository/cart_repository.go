package repository

import (
	"context"
	"errors"
	"time"

	"storefront-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCartRepository implements CartRepository against the carts collection.
type MongoCartRepository struct {
	collection *mongo.Collection
}

func NewMongoCartRepository(db *mongo.Database) CartRepository {
	return &MongoCartRepository{collection: db.Collection("carts")}
}

// FindByUser returns (nil, nil) when the user has no cart yet.
func (r *MongoCartRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := r.collection.FindOne(ctx, bson.M{"user": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// SetItems overwrites the cart's item list, creating the cart if it does not
// exist, and bumps updatedAt.
func (r *MongoCartRepository) SetItems(ctx context.Context, userID primitive.ObjectID, items []models.CartItem) error {
	update := bson.M{"$set": bson.M{"items": items, "updatedAt": time.Now().UTC()}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"user": userID}, update, options.Update().SetUpsert(true))
	return err
}
