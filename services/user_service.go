package services

import (
	"context"
	"errors"

	"storefront-backend/apperrors"
	"storefront-backend/models"
	"storefront-backend/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// UserCreateRequest is one element of the POST /api/users body.
type UserCreateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

// UserService exposes user operations to the handlers.
type UserService interface {
	CreateUsers(ctx context.Context, reqs []UserCreateRequest) ([]models.User, error)
	GetUser(ctx context.Context, id primitive.ObjectID) (*models.PopulatedUser, error)
}

type userService struct {
	userRepo repository.UserRepository
	resolver repository.ReferenceResolver
}

func NewUserService(userRepo repository.UserRepository, resolver repository.ReferenceResolver) UserService {
	return &userService{userRepo: userRepo, resolver: resolver}
}

// CreateUsers persists a batch of users. Passwords are bcrypt-hashed before
// they reach the store and blanked in the returned documents.
func (s *userService) CreateUsers(ctx context.Context, reqs []UserCreateRequest) ([]models.User, error) {
	if len(reqs) == 0 {
		return nil, apperrors.Validation("No user data provided")
	}

	users := make([]models.User, 0, len(reqs))
	for _, req := range reqs {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperrors.Persistence("Failed to create users", err)
		}
		users = append(users, models.User{
			ID:        primitive.NewObjectID(),
			Name:      req.Name,
			Email:     req.Email,
			Password:  string(hashed),
			Wishlist:  []primitive.ObjectID{},
			Addresses: []primitive.ObjectID{},
			IsAdmin:   req.IsAdmin,
		})
	}

	if err := s.userRepo.InsertMany(ctx, users); err != nil {
		return nil, apperrors.Persistence("Failed to create users", err)
	}

	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

func (s *userService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.PopulatedUser, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound("User not found")
	}
	if err != nil {
		return nil, apperrors.Persistence("Failed to fetch user", err)
	}

	products, err := s.resolver.Products(ctx, user.Wishlist)
	if err != nil {
		return nil, apperrors.Persistence("Failed to fetch user", err)
	}
	addresses, err := s.resolver.Addresses(ctx, user.Addresses)
	if err != nil {
		return nil, apperrors.Persistence("Failed to fetch user", err)
	}

	populated := &models.PopulatedUser{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Wishlist:  []models.Product{},
		Addresses: []models.Address{},
		IsAdmin:   user.IsAdmin,
	}
	for _, pid := range user.Wishlist {
		if p, ok := products[pid]; ok {
			populated.Wishlist = append(populated.Wishlist, p)
		}
	}
	for _, aid := range user.Addresses {
		if a, ok := addresses[aid]; ok {
			populated.Addresses = append(populated.Addresses, a)
		}
	}
	return populated, nil
}
