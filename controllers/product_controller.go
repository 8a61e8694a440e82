package controllers

import (
	"net/http"

	"storefront-backend/apperrors"
	"storefront-backend/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ProductController struct {
	service services.ProductService
	cache   *CacheManager
}

func NewProductController(service services.ProductService, cache *CacheManager) *ProductController {
	return &ProductController{service: service, cache: cache}
}

// CreateProduct handles POST /api/products.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req services.ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	product, err := pc.service.CreateProduct(c.Request.Context(), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	pc.cache.InvalidateProductLists(c.Request.Context())
	zap.L().Info("Product created", zap.String("id", product.ID.Hex()), zap.String("title", product.Title))
	c.JSON(http.StatusCreated, gin.H{"message": "Product created successfully", "product": product})
}

// GetProducts handles GET /api/products with an optional ?category filter.
func (pc *ProductController) GetProducts(c *gin.Context) {
	var category *primitive.ObjectID
	cacheFilter := "all"

	if raw := c.Query("category"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category ID"})
			return
		}
		category = &id
		cacheFilter = id.Hex()
	}

	if products, ok := pc.cache.GetProductList(c.Request.Context(), cacheFilter); ok {
		c.JSON(http.StatusOK, gin.H{"data": gin.H{"products": products}})
		return
	}

	products, err := pc.service.ListProducts(c.Request.Context(), category)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	pc.cache.SetProductListAsync(cacheFilter, products)
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"products": products}})
}

// GetProductByID handles GET /api/products/:productId.
func (pc *ProductController) GetProductByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
		return
	}

	product, err := pc.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"product": product}})
}
