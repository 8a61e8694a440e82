package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64            `json:"price" bson:"price"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Artist      string             `json:"artist,omitempty" bson:"artist,omitempty"`
	Dimensions  string             `json:"dimensions,omitempty" bson:"dimensions,omitempty"`
	Material    string             `json:"material,omitempty" bson:"material,omitempty"`
	Category    primitive.ObjectID `json:"category" bson:"category"` // Store only category ID
	Stock       int                `json:"stock" bson:"stock"`
	Tags        []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// PopulatedProduct is the response shape with the category reference
// expanded into the full category document.
type PopulatedProduct struct {
	ID          primitive.ObjectID `json:"_id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Price       float64            `json:"price"`
	Image       string             `json:"image,omitempty"`
	Artist      string             `json:"artist,omitempty"`
	Dimensions  string             `json:"dimensions,omitempty"`
	Material    string             `json:"material,omitempty"`
	Category    *Category          `json:"category"`
	Stock       int                `json:"stock"`
	Tags        []string           `json:"tags,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
}
