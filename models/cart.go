package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartItem struct {
	Product  primitive.ObjectID `json:"product" bson:"product"`
	Quantity int                `json:"quantity" bson:"quantity"`
}

// Cart holds at most one item per distinct product.
type Cart struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	Items     []CartItem         `json:"items" bson:"items"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type PopulatedCartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type PopulatedCart struct {
	ID        primitive.ObjectID  `json:"_id"`
	User      primitive.ObjectID  `json:"user"`
	Items     []PopulatedCartItem `json:"items"`
	UpdatedAt time.Time           `json:"updatedAt"`
}
