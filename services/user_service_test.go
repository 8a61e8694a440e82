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
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUsersHashesPasswords(t *testing.T) {
	userRepo := &mockUserRepo{}
	svc := services.NewUserService(userRepo, &mockResolver{})

	users, err := svc.CreateUsers(context.Background(), []services.UserCreateRequest{
		{Name: "Asha", Email: "asha@example.com", Password: "hunter2"},
	})
	assert.NoError(t, err)
	assert.Len(t, users, 1)

	// The stored credential is a bcrypt hash of the plaintext.
	assert.Len(t, userRepo.inserted, 1)
	stored := userRepo.inserted[0].Password
	assert.NotEqual(t, "hunter2", stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("hunter2")))

	// The response never echoes the credential back.
	assert.Empty(t, users[0].Password)
}

func TestCreateUsersRejectsEmptyBatch(t *testing.T) {
	svc := services.NewUserService(&mockUserRepo{}, &mockResolver{})

	_, err := svc.CreateUsers(context.Background(), nil)
	appErr := &apperrors.Error{}
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Equal(t, "No user data provided", appErr.Message)
}

func TestGetUserPopulatesWishlistAndAddresses(t *testing.T) {
	p1 := primitive.NewObjectID()
	a1 := primitive.NewObjectID()
	gone := primitive.NewObjectID()
	user := &models.User{
		ID:        primitive.NewObjectID(),
		Name:      "Asha",
		Email:     "asha@example.com",
		Password:  "hash",
		Wishlist:  []primitive.ObjectID{p1, gone},
		Addresses: []primitive.ObjectID{a1},
	}
	resolver := &mockResolver{
		products:  map[primitive.ObjectID]models.Product{p1: {ID: p1, Title: "Print"}},
		addresses: map[primitive.ObjectID]models.Address{a1: {ID: a1, City: "Jaipur"}},
	}
	svc := services.NewUserService(&mockUserRepo{user: user}, resolver)

	populated, err := svc.GetUser(context.Background(), user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Asha", populated.Name)
	assert.Len(t, populated.Wishlist, 1)
	assert.Equal(t, "Print", populated.Wishlist[0].Title)
	assert.Len(t, populated.Addresses, 1)
	assert.Equal(t, "Jaipur", populated.Addresses[0].City)
}

func TestGetUserMissingIsNotFound(t *testing.T) {
	svc := services.NewUserService(&mockUserRepo{}, &mockResolver{})

	_, err := svc.GetUser(context.Background(), primitive.NewObjectID())
	appErr := &apperrors.Error{}
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Equal(t, "User not found", appErr.Message)
}
