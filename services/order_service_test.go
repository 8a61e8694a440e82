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

func newOrderFixture() (*mockOrderRepo, *mockProductRepo, *mockCartRepo, services.OrderService) {
	orderRepo := &mockOrderRepo{}
	productRepo := &mockProductRepo{products: map[primitive.ObjectID]models.Product{}}
	cartRepo := &mockCartRepo{}
	svc := services.NewOrderService(orderRepo, productRepo, cartRepo, &mockResolver{})
	return orderRepo, productRepo, cartRepo, svc
}

func TestPlaceOrderComputesTotalFromLivePrices(t *testing.T) {
	orderRepo, productRepo, cartRepo, svc := newOrderFixture()

	p1 := primitive.NewObjectID()
	p2 := primitive.NewObjectID()
	productRepo.products[p1] = models.Product{ID: p1, Title: "Print", Price: 10}
	productRepo.products[p2] = models.Product{ID: p2, Title: "Canvas", Price: 3.5}

	req := services.PlaceOrderRequest{
		User:            primitive.NewObjectID(),
		ShippingAddress: primitive.NewObjectID(),
		PaymentMethod:   "Card",
		Items: []models.OrderItem{
			{Product: p1, Quantity: 2},
			{Product: p2, Quantity: 4},
		},
	}

	order, err := svc.PlaceOrder(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, 34.0, order.TotalAmount)
	assert.Equal(t, "Card", order.PaymentMethod)
	assert.Equal(t, req.Items, order.Items, "items persist by reference in input order")

	assert.Len(t, orderRepo.created, 1)
	assert.Equal(t, order, orderRepo.created[0])

	// Cart cleared after the order insert.
	assert.Len(t, cartRepo.setItemsLog, 1)
	assert.Empty(t, cartRepo.setItemsLog[0])
	assert.Equal(t, req.User, cartRepo.setItemsUser[0])
}

func TestPlaceOrderDefaultsPaymentMethod(t *testing.T) {
	_, productRepo, _, svc := newOrderFixture()

	p1 := primitive.NewObjectID()
	productRepo.products[p1] = models.Product{ID: p1, Price: 10}

	order, err := svc.PlaceOrder(context.Background(), services.PlaceOrderRequest{
		User:            primitive.NewObjectID(),
		ShippingAddress: primitive.NewObjectID(),
		Items:           []models.OrderItem{{Product: p1, Quantity: 2}},
	})
	assert.NoError(t, err)
	assert.Equal(t, services.DefaultPaymentMethod, order.PaymentMethod)
	assert.Equal(t, 20.0, order.TotalAmount)
}

func TestPlaceOrderMissingProductAbortsWholeCall(t *testing.T) {
	orderRepo, productRepo, cartRepo, svc := newOrderFixture()

	known := primitive.NewObjectID()
	missing := primitive.NewObjectID()
	productRepo.products[known] = models.Product{ID: known, Price: 10}

	_, err := svc.PlaceOrder(context.Background(), services.PlaceOrderRequest{
		User:            primitive.NewObjectID(),
		ShippingAddress: primitive.NewObjectID(),
		Items: []models.OrderItem{
			{Product: known, Quantity: 1},
			{Product: missing, Quantity: 1},
		},
	})

	appErr := &apperrors.Error{}
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Contains(t, appErr.Message, missing.Hex())

	// No partial order, cart untouched.
	assert.Empty(t, orderRepo.created)
	assert.Empty(t, cartRepo.setItemsLog)
}

func TestPlaceOrderValidation(t *testing.T) {
	_, productRepo, _, svc := newOrderFixture()

	p1 := primitive.NewObjectID()
	productRepo.products[p1] = models.Product{ID: p1, Price: 10}
	user := primitive.NewObjectID()
	addr := primitive.NewObjectID()
	items := []models.OrderItem{{Product: p1, Quantity: 1}}

	cases := []struct {
		name string
		req  services.PlaceOrderRequest
	}{
		{"missing user", services.PlaceOrderRequest{ShippingAddress: addr, Items: items}},
		{"missing shipping address", services.PlaceOrderRequest{User: user, Items: items}},
		{"empty items", services.PlaceOrderRequest{User: user, ShippingAddress: addr}},
		{"zero quantity", services.PlaceOrderRequest{User: user, ShippingAddress: addr, Items: []models.OrderItem{{Product: p1, Quantity: 0}}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.PlaceOrder(context.Background(), tc.req)
			appErr := &apperrors.Error{}
			assert.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.Code)
		})
	}
}

func TestPlaceOrderCartUntouchedWhenInsertFails(t *testing.T) {
	orderRepo, productRepo, cartRepo, svc := newOrderFixture()
	orderRepo.createErr = assert.AnError

	p1 := primitive.NewObjectID()
	productRepo.products[p1] = models.Product{ID: p1, Price: 10}

	_, err := svc.PlaceOrder(context.Background(), services.PlaceOrderRequest{
		User:            primitive.NewObjectID(),
		ShippingAddress: primitive.NewObjectID(),
		Items:           []models.OrderItem{{Product: p1, Quantity: 1}},
	})

	appErr := &apperrors.Error{}
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Empty(t, cartRepo.setItemsLog)
}

func TestPlaceOrderSucceedsWhenCartClearFails(t *testing.T) {
	orderRepo, productRepo, cartRepo, svc := newOrderFixture()
	cartRepo.setItemsErr = assert.AnError

	p1 := primitive.NewObjectID()
	productRepo.products[p1] = models.Product{ID: p1, Price: 10}

	order, err := svc.PlaceOrder(context.Background(), services.PlaceOrderRequest{
		User:            primitive.NewObjectID(),
		ShippingAddress: primitive.NewObjectID(),
		Items:           []models.OrderItem{{Product: p1, Quantity: 3}},
	})
	assert.NoError(t, err)
	assert.Equal(t, 30.0, order.TotalAmount)
	assert.Len(t, orderRepo.created, 1)
}

func TestGetOrdersPopulatesReferences(t *testing.T) {
	p1 := primitive.NewObjectID()
	a1 := primitive.NewObjectID()
	user := primitive.NewObjectID()

	orderRepo := &mockOrderRepo{orders: []models.Order{{
		ID:              primitive.NewObjectID(),
		User:            user,
		Items:           []models.OrderItem{{Product: p1, Quantity: 2}},
		TotalAmount:     20,
		ShippingAddress: a1,
	}}}
	resolver := &mockResolver{
		products:  map[primitive.ObjectID]models.Product{p1: {ID: p1, Title: "Print", Price: 10}},
		addresses: map[primitive.ObjectID]models.Address{a1: {ID: a1, User: user, City: "Jaipur"}},
	}
	svc := services.NewOrderService(orderRepo, &mockProductRepo{}, &mockCartRepo{}, resolver)

	orders, err := svc.GetOrders(context.Background(), user)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Print", orders[0].Items[0].Product.Title)
	assert.Equal(t, 2, orders[0].Items[0].Quantity)
	assert.NotNil(t, orders[0].ShippingAddress)
	assert.Equal(t, "Jaipur", orders[0].ShippingAddress.City)
}
