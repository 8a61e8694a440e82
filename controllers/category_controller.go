package controllers

import (
	"net/http"

	"storefront-backend/apperrors"
	"storefront-backend/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CategoryController struct {
	service services.CategoryService
}

func NewCategoryController(service services.CategoryService) *CategoryController {
	return &CategoryController{service: service}
}

// CreateCategory handles POST /api/categories.
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req services.CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	category, err := cc.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "category": category})
}

// GetCategories handles GET /api/categories. The response is a bare array.
func (cc *CategoryController) GetCategories(c *gin.Context) {
	categories, err := cc.service.ListCategories(c.Request.Context())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategoryByID handles GET /api/categories/:categoryId.
func (cc *CategoryController) GetCategoryByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("categoryId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category ID"})
		return
	}

	category, err := cc.service.GetCategory(c.Request.Context(), id)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"category": category}})
}
