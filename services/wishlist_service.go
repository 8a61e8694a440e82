package services

import (
	"context"

	"storefront-backend/apperrors"
	"storefront-backend/models"
	"storefront-backend/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistService exposes wishlist operations to the handlers. A wishlist is
// created lazily on first add and never holds duplicate product references.
type WishlistService interface {
	// AddProduct returns the resulting wishlist and whether it was newly
	// created. Adding a product that is already present is a no-op.
	AddProduct(ctx context.Context, userID, productID primitive.ObjectID) (*models.Wishlist, bool, error)
	GetWishlist(ctx context.Context, userID primitive.ObjectID) (*models.PopulatedWishlist, error)
	RemoveProduct(ctx context.Context, userID, productID primitive.ObjectID) (*models.Wishlist, error)
}

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	resolver     repository.ReferenceResolver
}

func NewWishlistService(wishlistRepo repository.WishlistRepository, resolver repository.ReferenceResolver) WishlistService {
	return &wishlistService{wishlistRepo: wishlistRepo, resolver: resolver}
}

func (s *wishlistService) AddProduct(ctx context.Context, userID, productID primitive.ObjectID) (*models.Wishlist, bool, error) {
	wishlist, err := s.wishlistRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, false, apperrors.Persistence("Failed to update wishlist", err)
	}

	if wishlist == nil {
		wishlist = &models.Wishlist{User: userID, Products: []primitive.ObjectID{productID}}
		if err := s.wishlistRepo.SetProducts(ctx, userID, wishlist.Products); err != nil {
			return nil, false, apperrors.Persistence("Failed to update wishlist", err)
		}
		return wishlist, true, nil
	}

	for _, pid := range wishlist.Products {
		if pid == productID {
			return wishlist, false, nil
		}
	}

	wishlist.Products = append(wishlist.Products, productID)
	if err := s.wishlistRepo.SetProducts(ctx, userID, wishlist.Products); err != nil {
		return nil, false, apperrors.Persistence("Failed to update wishlist", err)
	}
	return wishlist, false, nil
}

// GetWishlist returns (nil, nil) when the user has no wishlist; the handler
// renders that as an empty product list.
func (s *wishlistService) GetWishlist(ctx context.Context, userID primitive.ObjectID) (*models.PopulatedWishlist, error) {
	wishlist, err := s.wishlistRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Persistence("Failed to fetch wishlist", err)
	}
	if wishlist == nil {
		return nil, nil
	}

	products, err := s.resolver.Products(ctx, wishlist.Products)
	if err != nil {
		return nil, apperrors.Persistence("Failed to fetch wishlist", err)
	}

	populated := &models.PopulatedWishlist{
		ID:       wishlist.ID,
		User:     wishlist.User,
		Products: []models.Product{},
	}
	for _, pid := range wishlist.Products {
		if p, ok := products[pid]; ok {
			populated.Products = append(populated.Products, p)
		}
	}
	return populated, nil
}

func (s *wishlistService) RemoveProduct(ctx context.Context, userID, productID primitive.ObjectID) (*models.Wishlist, error) {
	wishlist, err := s.wishlistRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Persistence("Failed to remove from wishlist", err)
	}
	if wishlist == nil {
		return nil, apperrors.NotFound("Wishlist not found")
	}

	kept := wishlist.Products[:0]
	for _, pid := range wishlist.Products {
		if pid != productID {
			kept = append(kept, pid)
		}
	}
	wishlist.Products = kept

	if err := s.wishlistRepo.SetProducts(ctx, userID, wishlist.Products); err != nil {
		return nil, apperrors.Persistence("Failed to remove from wishlist", err)
	}
	return wishlist, nil
}
