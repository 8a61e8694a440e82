package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID        primitive.ObjectID   `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string               `json:"name" bson:"name"`
	Email     string               `json:"email" bson:"email"`
	Password  string               `json:"password,omitempty" bson:"password"`
	Wishlist  []primitive.ObjectID `json:"wishlist" bson:"wishlist"`
	Addresses []primitive.ObjectID `json:"addresses" bson:"addresses"`
	IsAdmin   bool                 `json:"isAdmin" bson:"isAdmin"`
}

// PopulatedUser is the GET /api/users/:userId response shape, with the
// wishlist and address references expanded into full documents.
type PopulatedUser struct {
	ID        primitive.ObjectID `json:"_id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Wishlist  []Product          `json:"wishlist"`
	Addresses []Address          `json:"addresses"`
	IsAdmin   bool               `json:"isAdmin"`
}
