package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Address struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	User       primitive.ObjectID `json:"user" bson:"user"`
	Street     string             `json:"street,omitempty" bson:"street,omitempty"`
	City       string             `json:"city,omitempty" bson:"city,omitempty"`
	State      string             `json:"state,omitempty" bson:"state,omitempty"`
	PostalCode string             `json:"postalCode,omitempty" bson:"postalCode,omitempty"`
	Country    string             `json:"country,omitempty" bson:"country,omitempty"`
	Phone      string             `json:"phone,omitempty" bson:"phone,omitempty"`
}
