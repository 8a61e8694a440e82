package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront-backend/apperrors"
	"storefront-backend/models"
	"storefront-backend/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DefaultPaymentMethod is used when the request omits paymentMethod.
const DefaultPaymentMethod = "Paid"

// PlaceOrderRequest is the POST /api/orders body.
type PlaceOrderRequest struct {
	User            primitive.ObjectID `json:"user"`
	ShippingAddress primitive.ObjectID `json:"shippingAddress"`
	PaymentMethod   string             `json:"paymentMethod"`
	Items           []models.OrderItem `json:"items"`
}

// OrderService exposes order operations to the handlers.
type OrderService interface {
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*models.Order, error)
	GetOrders(ctx context.Context, userID primitive.ObjectID) ([]models.PopulatedOrder, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
	resolver    repository.ReferenceResolver
}

func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, cartRepo repository.CartRepository, resolver repository.ReferenceResolver) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		resolver:    resolver,
	}
}

// PlaceOrder computes the order total from live product prices, persists the
// order, and empties the placing user's cart.
//
// Every product reference is resolved before any write; a single missing
// product aborts the whole call and no partial order is created. The total
// is a point-in-time snapshot of Σ(price × quantity) and is never
// client-supplied. The cart is cleared only after the order insert succeeds;
// if the insert fails the cart is untouched.
func (s *orderService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*models.Order, error) {
	if req.User.IsZero() || req.ShippingAddress.IsZero() || len(req.Items) == 0 {
		return nil, apperrors.Validation("Missing required fields")
	}
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, apperrors.Validation("Quantity must be a positive integer")
		}
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}

	// All-or-nothing pre-check: resolve every product and accumulate the
	// total before the first write.
	var totalAmount float64
	for _, item := range req.Items {
		product, err := s.productRepo.FindByID(ctx, item.Product)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound(fmt.Sprintf("Product not found: %s", item.Product.Hex()))
		}
		if err != nil {
			return nil, apperrors.Persistence("Failed to place order", err)
		}
		totalAmount += product.Price * float64(item.Quantity)
	}

	order := &models.Order{
		ID:              primitive.NewObjectID(),
		User:            req.User,
		Items:           req.Items,
		TotalAmount:     totalAmount,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   paymentMethod,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, apperrors.Persistence("Failed to place order", err)
	}

	// The order exists at this point, so a failed cart clear must not fail
	// the call.
	if err := s.cartRepo.SetItems(ctx, req.User, []models.CartItem{}); err != nil {
		zap.L().Error("Failed to clear cart after order placement",
			zap.String("user", req.User.Hex()),
			zap.String("order", order.ID.Hex()),
			zap.Error(err),
		)
	}

	return order, nil
}

// GetOrders returns the user's orders newest first, with item products and
// the shipping address expanded.
func (s *orderService) GetOrders(ctx context.Context, userID primitive.ObjectID) ([]models.PopulatedOrder, error) {
	orders, err := s.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Persistence("Failed to fetch orders", err)
	}

	var productIDs, addressIDs []primitive.ObjectID
	for _, order := range orders {
		for _, item := range order.Items {
			productIDs = append(productIDs, item.Product)
		}
		addressIDs = append(addressIDs, order.ShippingAddress)
	}

	products, err := s.resolver.Products(ctx, productIDs)
	if err != nil {
		return nil, apperrors.Persistence("Failed to fetch orders", err)
	}
	addresses, err := s.resolver.Addresses(ctx, addressIDs)
	if err != nil {
		return nil, apperrors.Persistence("Failed to fetch orders", err)
	}

	populated := make([]models.PopulatedOrder, 0, len(orders))
	for _, order := range orders {
		view := models.PopulatedOrder{
			ID:            order.ID,
			User:          order.User,
			Items:         []models.PopulatedOrderItem{},
			TotalAmount:   order.TotalAmount,
			PaymentMethod: order.PaymentMethod,
			CreatedAt:     order.CreatedAt,
		}
		for _, item := range order.Items {
			if p, ok := products[item.Product]; ok {
				view.Items = append(view.Items, models.PopulatedOrderItem{Product: p, Quantity: item.Quantity})
			}
		}
		if addr, ok := addresses[order.ShippingAddress]; ok {
			view.ShippingAddress = &addr
		}
		populated = append(populated, view)
	}
	return populated, nil
}
