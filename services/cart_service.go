package services

import (
	"context"
	"time"

	"storefront-backend/apperrors"
	"storefront-backend/models"
	"storefront-backend/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartService exposes cart operations to the handlers. A cart is created
// lazily on first write and holds at most one line item per product.
type CartService interface {
	GetCart(ctx context.Context, userID primitive.ObjectID) (*models.PopulatedCart, error)
	// UpdateItem adds the product line or overwrites its quantity if the
	// product is already in the cart.
	UpdateItem(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*models.Cart, error)
	RemoveItem(ctx context.Context, userID, productID primitive.ObjectID) (*models.Cart, error)
}

type cartService struct {
	cartRepo repository.CartRepository
	resolver repository.ReferenceResolver
}

func NewCartService(cartRepo repository.CartRepository, resolver repository.ReferenceResolver) CartService {
	return &cartService{cartRepo: cartRepo, resolver: resolver}
}

// GetCart returns (nil, nil) when the user has no cart; the handler renders
// that as an empty item list.
func (s *cartService) GetCart(ctx context.Context, userID primitive.ObjectID) (*models.PopulatedCart, error) {
	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Persistence("Failed to fetch cart", err)
	}
	if cart == nil {
		return nil, nil
	}

	ids := make([]primitive.ObjectID, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.Product)
	}
	products, err := s.resolver.Products(ctx, ids)
	if err != nil {
		return nil, apperrors.Persistence("Failed to fetch cart", err)
	}

	populated := &models.PopulatedCart{
		ID:        cart.ID,
		User:      cart.User,
		Items:     []models.PopulatedCartItem{},
		UpdatedAt: cart.UpdatedAt,
	}
	for _, item := range cart.Items {
		if p, ok := products[item.Product]; ok {
			populated.Items = append(populated.Items, models.PopulatedCartItem{Product: p, Quantity: item.Quantity})
		}
	}
	return populated, nil
}

func (s *cartService) UpdateItem(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, apperrors.Validation("Quantity must be a positive integer")
	}

	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Persistence("Failed to update cart", err)
	}
	if cart == nil {
		cart = &models.Cart{User: userID, Items: []models.CartItem{}}
	}

	found := false
	for i, item := range cart.Items {
		if item.Product == productID {
			cart.Items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, models.CartItem{Product: productID, Quantity: quantity})
	}

	if err := s.cartRepo.SetItems(ctx, userID, cart.Items); err != nil {
		return nil, apperrors.Persistence("Failed to update cart", err)
	}
	cart.UpdatedAt = time.Now().UTC()
	return cart, nil
}

func (s *cartService) RemoveItem(ctx context.Context, userID, productID primitive.ObjectID) (*models.Cart, error) {
	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Persistence("Failed to remove from cart", err)
	}
	if cart == nil {
		return nil, apperrors.NotFound("Cart not found")
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.Product != productID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept

	if err := s.cartRepo.SetItems(ctx, userID, cart.Items); err != nil {
		return nil, apperrors.Persistence("Failed to remove from cart", err)
	}
	cart.UpdatedAt = time.Now().UTC()
	return cart, nil
}
