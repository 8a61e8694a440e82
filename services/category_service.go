package services

import (
	"context"
	"errors"

	"storefront-backend/apperrors"
	"storefront-backend/models"
	"storefront-backend/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CategoryCreateRequest is the POST /api/categories body.
type CategoryCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryService exposes category operations to the handlers.
type CategoryService interface {
	CreateCategory(ctx context.Context, req CategoryCreateRequest) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(ctx context.Context, req CategoryCreateRequest) (*models.Category, error) {
	if req.Name == "" {
		return nil, apperrors.Validation("Category name is required")
	}

	category := &models.Category{
		ID:          primitive.NewObjectID(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, apperrors.Persistence("Failed to create category", err)
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Persistence("Failed to fetch categories", err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound("Category not found")
	}
	if err != nil {
		return nil, apperrors.Persistence("Failed to fetch category", err)
	}
	return category, nil
}
