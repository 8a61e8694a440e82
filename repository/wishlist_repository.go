package repository

import (
	"context"
	"errors"

	"storefront-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoWishlistRepository implements WishlistRepository against the
// wishlists collection.
type MongoWishlistRepository struct {
	collection *mongo.Collection
}

func NewMongoWishlistRepository(db *mongo.Database) WishlistRepository {
	return &MongoWishlistRepository{collection: db.Collection("wishlists")}
}

// FindByUser returns (nil, nil) when the user has no wishlist yet.
func (r *MongoWishlistRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	err := r.collection.FindOne(ctx, bson.M{"user": userID}).Decode(&wishlist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wishlist, nil
}

func (r *MongoWishlistRepository) SetProducts(ctx context.Context, userID primitive.ObjectID, products []primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{"products": products}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"user": userID}, update, options.Update().SetUpsert(true))
	return err
}
