package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderItem struct {
	Product  primitive.ObjectID `json:"product" bson:"product"`
	Quantity int                `json:"quantity" bson:"quantity"`
}

// Order is immutable once created; totalAmount is computed server-side from
// product prices at placement time and never revised afterwards.
type Order struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	User            primitive.ObjectID `json:"user" bson:"user"`
	Items           []OrderItem        `json:"items" bson:"items"`
	TotalAmount     float64            `json:"totalAmount" bson:"totalAmount"`
	ShippingAddress primitive.ObjectID `json:"shippingAddress" bson:"shippingAddress"`
	PaymentMethod   string             `json:"paymentMethod" bson:"paymentMethod"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
}

type PopulatedOrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type PopulatedOrder struct {
	ID              primitive.ObjectID   `json:"_id"`
	User            primitive.ObjectID   `json:"user"`
	Items           []PopulatedOrderItem `json:"items"`
	TotalAmount     float64              `json:"totalAmount"`
	ShippingAddress *Address             `json:"shippingAddress"`
	PaymentMethod   string               `json:"paymentMethod"`
	CreatedAt       time.Time            `json:"createdAt"`
}
