package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Wishlist struct {
	ID       primitive.ObjectID   `json:"_id,omitempty" bson:"_id,omitempty"`
	User     primitive.ObjectID   `json:"user" bson:"user"`
	Products []primitive.ObjectID `json:"products" bson:"products"`
}

// PopulatedWishlist expands the product references for response payloads.
type PopulatedWishlist struct {
	ID       primitive.ObjectID `json:"_id"`
	User     primitive.ObjectID `json:"user"`
	Products []Product          `json:"products"`
}
