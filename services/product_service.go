package services

import (
	"context"
	"errors"
	"time"

	"storefront-backend/apperrors"
	"storefront-backend/models"
	"storefront-backend/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProductCreateRequest is the POST /api/products body.
type ProductCreateRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Price       float64            `json:"price"`
	Image       string             `json:"image"`
	Artist      string             `json:"artist"`
	Dimensions  string             `json:"dimensions"`
	Material    string             `json:"material"`
	Category    primitive.ObjectID `json:"category"`
	Stock       int                `json:"stock"`
	Tags        []string           `json:"tags"`
}

// ProductService exposes product operations to the handlers.
type ProductService interface {
	CreateProduct(ctx context.Context, req ProductCreateRequest) (*models.Product, error)
	ListProducts(ctx context.Context, category *primitive.ObjectID) ([]models.PopulatedProduct, error)
	GetProduct(ctx context.Context, id primitive.ObjectID) (*models.PopulatedProduct, error)
}

type productService struct {
	productRepo repository.ProductRepository
	resolver    repository.ReferenceResolver
}

func NewProductService(productRepo repository.ProductRepository, resolver repository.ReferenceResolver) ProductService {
	return &productService{productRepo: productRepo, resolver: resolver}
}

func (s *productService) CreateProduct(ctx context.Context, req ProductCreateRequest) (*models.Product, error) {
	if req.Title == "" || req.Price <= 0 || req.Category.IsZero() {
		return nil, apperrors.Validation("Missing required fields (title, price, category)")
	}

	product := &models.Product{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Artist:      req.Artist,
		Dimensions:  req.Dimensions,
		Material:    req.Material,
		Category:    req.Category,
		Stock:       req.Stock,
		Tags:        req.Tags,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, apperrors.Persistence("Failed to create product", err)
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, category *primitive.ObjectID) ([]models.PopulatedProduct, error) {
	filter := bson.M{}
	if category != nil {
		filter["category"] = *category
	}

	products, err := s.productRepo.Find(ctx, filter)
	if err != nil {
		return nil, apperrors.Persistence("Failed to fetch products", err)
	}

	return s.populate(ctx, products)
}

func (s *productService) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.PopulatedProduct, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound("Product not found")
	}
	if err != nil {
		return nil, apperrors.Persistence("Failed to fetch product", err)
	}

	populated, err := s.populate(ctx, []models.Product{*product})
	if err != nil {
		return nil, err
	}
	return &populated[0], nil
}

// populate expands each product's category reference.
func (s *productService) populate(ctx context.Context, products []models.Product) ([]models.PopulatedProduct, error) {
	ids := make([]primitive.ObjectID, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.Category)
	}

	categories, err := s.resolver.Categories(ctx, ids)
	if err != nil {
		return nil, apperrors.Persistence("Failed to fetch products", err)
	}

	populated := make([]models.PopulatedProduct, 0, len(products))
	for _, p := range products {
		view := models.PopulatedProduct{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Price:       p.Price,
			Image:       p.Image,
			Artist:      p.Artist,
			Dimensions:  p.Dimensions,
			Material:    p.Material,
			Stock:       p.Stock,
			Tags:        p.Tags,
			CreatedAt:   p.CreatedAt,
		}
		if cat, ok := categories[p.Category]; ok {
			view.Category = &cat
		}
		populated = append(populated, view)
	}
	return populated, nil
}
