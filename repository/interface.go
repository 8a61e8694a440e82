package repository

import (
	"context"

	"storefront-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductRepository defines data-access operations for products.
type ProductRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Find(ctx context.Context, filter bson.M) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
}

// CategoryRepository defines data-access operations for categories.
type CategoryRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	FindAll(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
}

// AddressRepository defines data-access operations for addresses.
type AddressRepository interface {
	InsertMany(ctx context.Context, addresses []models.Address) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
}

// UserRepository defines data-access operations for users, including the
// maintenance of their address reference lists (the store does not cascade).
type UserRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	InsertMany(ctx context.Context, users []models.User) error
	PushAddresses(ctx context.Context, userID primitive.ObjectID, addressIDs []primitive.ObjectID) error
	SetAddresses(ctx context.Context, userID primitive.ObjectID, addressIDs []primitive.ObjectID) error
	PullAddress(ctx context.Context, userID, addressID primitive.ObjectID) error
}

// WishlistRepository defines data-access operations for wishlists, keyed by
// the owning user.
type WishlistRepository interface {
	FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Wishlist, error)
	SetProducts(ctx context.Context, userID primitive.ObjectID, products []primitive.ObjectID) error
}

// CartRepository defines data-access operations for carts, keyed by the
// owning user. SetItems performs a create-or-update.
type CartRepository interface {
	FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error)
	SetItems(ctx context.Context, userID primitive.ObjectID, items []models.CartItem) error
}

// OrderRepository defines data-access operations for orders. Orders are
// immutable once created.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
}

// ReferenceResolver expands document references into full documents for
// response payloads. Lookups are batched; missing references are simply
// absent from the returned map.
type ReferenceResolver interface {
	Products(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Product, error)
	Categories(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Category, error)
	Addresses(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Address, error)
}
