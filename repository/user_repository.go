package repository

import (
	"context"

	"storefront-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserRepository implements UserRepository against the users collection.
type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &MongoUserRepository{collection: db.Collection("users")}
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) InsertMany(ctx context.Context, users []models.User) error {
	docs := make([]interface{}, len(users))
	for i := range users {
		docs[i] = users[i]
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *MongoUserRepository) PushAddresses(ctx context.Context, userID primitive.ObjectID, addressIDs []primitive.ObjectID) error {
	update := bson.M{"$push": bson.M{"addresses": bson.M{"$each": addressIDs}}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	return err
}

func (r *MongoUserRepository) SetAddresses(ctx context.Context, userID primitive.ObjectID, addressIDs []primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{"addresses": addressIDs}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	return err
}

func (r *MongoUserRepository) PullAddress(ctx context.Context, userID, addressID primitive.ObjectID) error {
	update := bson.M{"$pull": bson.M{"addresses": addressID}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	return err
}
