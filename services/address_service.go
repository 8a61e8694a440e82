package services

import (
	"context"

	"storefront-backend/apperrors"
	"storefront-backend/models"
	"storefront-backend/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AddressCreateRequest is one element of the POST /api/addresses body.
type AddressCreateRequest struct {
	User       primitive.ObjectID `json:"user"`
	Street     string             `json:"street"`
	City       string             `json:"city"`
	State      string             `json:"state"`
	PostalCode string             `json:"postalCode"`
	Country    string             `json:"country"`
	Phone      string             `json:"phone"`
}

// AddressService exposes address operations to the handlers. The store does
// not cascade, so every mutation also maintains the owning user's address
// reference list.
type AddressService interface {
	CreateAddresses(ctx context.Context, reqs []AddressCreateRequest) ([]models.Address, error)
	ReplaceAddresses(ctx context.Context, userID primitive.ObjectID, reqs []AddressCreateRequest) ([]models.Address, error)
	DeleteAddress(ctx context.Context, userID, addressID primitive.ObjectID) error
}

type addressService struct {
	addressRepo repository.AddressRepository
	userRepo    repository.UserRepository
}

func NewAddressService(addressRepo repository.AddressRepository, userRepo repository.UserRepository) AddressService {
	return &addressService{addressRepo: addressRepo, userRepo: userRepo}
}

// CreateAddresses persists a batch of addresses and links each one to its
// owning user's address list.
func (s *addressService) CreateAddresses(ctx context.Context, reqs []AddressCreateRequest) ([]models.Address, error) {
	if len(reqs) == 0 {
		return nil, apperrors.Validation("No address data provided")
	}

	addresses := make([]models.Address, 0, len(reqs))
	for _, req := range reqs {
		if req.User.IsZero() {
			return nil, apperrors.Validation("Each address must include a user")
		}
		addresses = append(addresses, newAddress(req, req.User))
	}

	if err := s.addressRepo.InsertMany(ctx, addresses); err != nil {
		return nil, apperrors.Persistence("Failed to save addresses", err)
	}

	// Group the new address IDs by owner and push them onto each user.
	byUser := make(map[primitive.ObjectID][]primitive.ObjectID)
	for _, addr := range addresses {
		byUser[addr.User] = append(byUser[addr.User], addr.ID)
	}
	for userID, ids := range byUser {
		if err := s.userRepo.PushAddresses(ctx, userID, ids); err != nil {
			return nil, apperrors.Persistence("Failed to save addresses", err)
		}
	}

	return addresses, nil
}

// ReplaceAddresses swaps out the user's entire address set.
func (s *addressService) ReplaceAddresses(ctx context.Context, userID primitive.ObjectID, reqs []AddressCreateRequest) ([]models.Address, error) {
	if err := s.addressRepo.DeleteByUser(ctx, userID); err != nil {
		return nil, apperrors.Persistence("Error updating addresses", err)
	}

	addresses := make([]models.Address, 0, len(reqs))
	ids := make([]primitive.ObjectID, 0, len(reqs))
	for _, req := range reqs {
		addr := newAddress(req, userID)
		addresses = append(addresses, addr)
		ids = append(ids, addr.ID)
	}

	if len(addresses) > 0 {
		if err := s.addressRepo.InsertMany(ctx, addresses); err != nil {
			return nil, apperrors.Persistence("Error updating addresses", err)
		}
	}
	if err := s.userRepo.SetAddresses(ctx, userID, ids); err != nil {
		return nil, apperrors.Persistence("Error updating addresses", err)
	}

	return addresses, nil
}

// DeleteAddress removes the address document and pulls the dangling
// reference out of the owning user's list.
func (s *addressService) DeleteAddress(ctx context.Context, userID, addressID primitive.ObjectID) error {
	if err := s.addressRepo.Delete(ctx, addressID); err != nil {
		return apperrors.Persistence("Failed to delete address", err)
	}
	if err := s.userRepo.PullAddress(ctx, userID, addressID); err != nil {
		return apperrors.Persistence("Failed to delete address", err)
	}
	return nil
}

func newAddress(req AddressCreateRequest, userID primitive.ObjectID) models.Address {
	return models.Address{
		ID:         primitive.NewObjectID(),
		User:       userID,
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Phone:      req.Phone,
	}
}
