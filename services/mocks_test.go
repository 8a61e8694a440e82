package services_test

import (
	"context"

	"storefront-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ---- mock repositories ----

type mockProductRepo struct {
	products map[primitive.ObjectID]models.Product
	findErr  error
	created  []*models.Product
}

func (m *mockProductRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if p, ok := m.products[id]; ok {
		return &p, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockProductRepo) Find(_ context.Context, filter bson.M) ([]models.Product, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	var out []models.Product
	for _, p := range m.products {
		if category, ok := filter["category"]; ok && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *mockProductRepo) Create(_ context.Context, product *models.Product) error {
	m.created = append(m.created, product)
	return nil
}

type mockOrderRepo struct {
	createErr error
	created   []*models.Order
	orders    []models.Order
	findErr   error
}

func (m *mockOrderRepo) Create(_ context.Context, order *models.Order) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, order)
	return nil
}

func (m *mockOrderRepo) FindByUser(_ context.Context, _ primitive.ObjectID) ([]models.Order, error) {
	return m.orders, m.findErr
}

type mockCartRepo struct {
	cart         *models.Cart
	findErr      error
	setItemsErr  error
	setItemsLog  [][]models.CartItem
	setItemsUser []primitive.ObjectID
}

func (m *mockCartRepo) FindByUser(_ context.Context, _ primitive.ObjectID) (*models.Cart, error) {
	return m.cart, m.findErr
}

func (m *mockCartRepo) SetItems(_ context.Context, userID primitive.ObjectID, items []models.CartItem) error {
	if m.setItemsErr != nil {
		return m.setItemsErr
	}
	m.setItemsLog = append(m.setItemsLog, items)
	m.setItemsUser = append(m.setItemsUser, userID)
	return nil
}

type mockWishlistRepo struct {
	wishlist       *models.Wishlist
	findErr        error
	setProductsErr error
	setProductsLog [][]primitive.ObjectID
}

func (m *mockWishlistRepo) FindByUser(_ context.Context, _ primitive.ObjectID) (*models.Wishlist, error) {
	return m.wishlist, m.findErr
}

func (m *mockWishlistRepo) SetProducts(_ context.Context, _ primitive.ObjectID, products []primitive.ObjectID) error {
	if m.setProductsErr != nil {
		return m.setProductsErr
	}
	m.setProductsLog = append(m.setProductsLog, products)
	return nil
}

type mockAddressRepo struct {
	inserted      []models.Address
	deleted       []primitive.ObjectID
	deletedByUser []primitive.ObjectID
}

func (m *mockAddressRepo) InsertMany(_ context.Context, addresses []models.Address) error {
	m.inserted = append(m.inserted, addresses...)
	return nil
}

func (m *mockAddressRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockAddressRepo) DeleteByUser(_ context.Context, userID primitive.ObjectID) error {
	m.deletedByUser = append(m.deletedByUser, userID)
	return nil
}

type pushCall struct {
	userID primitive.ObjectID
	ids    []primitive.ObjectID
}

type mockUserRepo struct {
	user       *models.User
	findErr    error
	inserted   []models.User
	pushed     []pushCall
	setCalls   []pushCall
	pulledUser []primitive.ObjectID
	pulledAddr []primitive.ObjectID
}

func (m *mockUserRepo) FindByID(_ context.Context, _ primitive.ObjectID) (*models.User, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if m.user == nil {
		return nil, mongo.ErrNoDocuments
	}
	return m.user, nil
}

func (m *mockUserRepo) InsertMany(_ context.Context, users []models.User) error {
	m.inserted = append(m.inserted, users...)
	return nil
}

func (m *mockUserRepo) PushAddresses(_ context.Context, userID primitive.ObjectID, ids []primitive.ObjectID) error {
	m.pushed = append(m.pushed, pushCall{userID: userID, ids: ids})
	return nil
}

func (m *mockUserRepo) SetAddresses(_ context.Context, userID primitive.ObjectID, ids []primitive.ObjectID) error {
	m.setCalls = append(m.setCalls, pushCall{userID: userID, ids: ids})
	return nil
}

func (m *mockUserRepo) PullAddress(_ context.Context, userID, addressID primitive.ObjectID) error {
	m.pulledUser = append(m.pulledUser, userID)
	m.pulledAddr = append(m.pulledAddr, addressID)
	return nil
}

// ---- mock resolver ----

type mockResolver struct {
	products   map[primitive.ObjectID]models.Product
	categories map[primitive.ObjectID]models.Category
	addresses  map[primitive.ObjectID]models.Address
}

func (m *mockResolver) Products(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Product, error) {
	out := make(map[primitive.ObjectID]models.Product)
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (m *mockResolver) Categories(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Category, error) {
	out := make(map[primitive.ObjectID]models.Category)
	for _, id := range ids {
		if c, ok := m.categories[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

func (m *mockResolver) Addresses(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Address, error) {
	out := make(map[primitive.ObjectID]models.Address)
	for _, id := range ids {
		if a, ok := m.addresses[id]; ok {
			out[id] = a
		}
	}
	return out, nil
}
