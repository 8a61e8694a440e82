package services_test

import (
	"context"
	"net/http"
	"testing"

	"storefront-backend/apperrors"
	"storefront-backend/models"
	"storefront-backend/services"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddProductCreatesWishlistOnFirstAdd(t *testing.T) {
	user := primitive.NewObjectID()
	p1 := primitive.NewObjectID()
	wishlistRepo := &mockWishlistRepo{}
	svc := services.NewWishlistService(wishlistRepo, &mockResolver{})

	wishlist, created, err := svc.AddProduct(context.Background(), user, p1)
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, []primitive.ObjectID{p1}, wishlist.Products)
	assert.Len(t, wishlistRepo.setProductsLog, 1)
}

func TestAddProductIsIdempotent(t *testing.T) {
	user := primitive.NewObjectID()
	p1 := primitive.NewObjectID()
	wishlistRepo := &mockWishlistRepo{wishlist: &models.Wishlist{
		ID:       primitive.NewObjectID(),
		User:     user,
		Products: []primitive.ObjectID{p1},
	}}
	svc := services.NewWishlistService(wishlistRepo, &mockResolver{})

	wishlist, created, err := svc.AddProduct(context.Background(), user, p1)
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, []primitive.ObjectID{p1}, wishlist.Products)

	// Re-adding an existing product must not touch the store.
	assert.Empty(t, wishlistRepo.setProductsLog)
}

func TestAddProductAppendsNewReference(t *testing.T) {
	user := primitive.NewObjectID()
	p1 := primitive.NewObjectID()
	p2 := primitive.NewObjectID()
	wishlistRepo := &mockWishlistRepo{wishlist: &models.Wishlist{
		User:     user,
		Products: []primitive.ObjectID{p1},
	}}
	svc := services.NewWishlistService(wishlistRepo, &mockResolver{})

	wishlist, created, err := svc.AddProduct(context.Background(), user, p2)
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, []primitive.ObjectID{p1, p2}, wishlist.Products)
}

func TestGetWishlistPopulatesProducts(t *testing.T) {
	user := primitive.NewObjectID()
	p1 := primitive.NewObjectID()
	gone := primitive.NewObjectID()
	wishlistRepo := &mockWishlistRepo{wishlist: &models.Wishlist{
		ID:       primitive.NewObjectID(),
		User:     user,
		Products: []primitive.ObjectID{p1, gone},
	}}
	resolver := &mockResolver{products: map[primitive.ObjectID]models.Product{
		p1: {ID: p1, Title: "Print", Price: 10},
	}}
	svc := services.NewWishlistService(wishlistRepo, resolver)

	wishlist, err := svc.GetWishlist(context.Background(), user)
	assert.NoError(t, err)
	assert.Len(t, wishlist.Products, 1)
	assert.Equal(t, "Print", wishlist.Products[0].Title)
}

func TestGetWishlistAbsentIsNil(t *testing.T) {
	svc := services.NewWishlistService(&mockWishlistRepo{}, &mockResolver{})

	wishlist, err := svc.GetWishlist(context.Background(), primitive.NewObjectID())
	assert.NoError(t, err)
	assert.Nil(t, wishlist)
}

func TestRemoveProductDropsReference(t *testing.T) {
	user := primitive.NewObjectID()
	p1 := primitive.NewObjectID()
	p2 := primitive.NewObjectID()
	wishlistRepo := &mockWishlistRepo{wishlist: &models.Wishlist{
		User:     user,
		Products: []primitive.ObjectID{p1, p2},
	}}
	svc := services.NewWishlistService(wishlistRepo, &mockResolver{})

	wishlist, err := svc.RemoveProduct(context.Background(), user, p1)
	assert.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{p2}, wishlist.Products)
	assert.Equal(t, []primitive.ObjectID{p2}, wishlistRepo.setProductsLog[0])
}

func TestRemoveProductWithoutWishlistIsNotFound(t *testing.T) {
	svc := services.NewWishlistService(&mockWishlistRepo{}, &mockResolver{})

	_, err := svc.RemoveProduct(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	appErr := &apperrors.Error{}
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Equal(t, "Wishlist not found", appErr.Message)
}
