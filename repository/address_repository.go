package repository

import (
	"context"

	"storefront-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAddressRepository implements AddressRepository against the addresses
// collection.
type MongoAddressRepository struct {
	collection *mongo.Collection
}

func NewMongoAddressRepository(db *mongo.Database) AddressRepository {
	return &MongoAddressRepository{collection: db.Collection("addresses")}
}

func (r *MongoAddressRepository) InsertMany(ctx context.Context, addresses []models.Address) error {
	docs := make([]interface{}, len(addresses))
	for i := range addresses {
		docs[i] = addresses[i]
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *MongoAddressRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *MongoAddressRepository) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"user": userID})
	return err
}
