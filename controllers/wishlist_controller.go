package controllers

import (
	"net/http"

	"storefront-backend/apperrors"
	"storefront-backend/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WishlistController struct {
	service services.WishlistService
}

func NewWishlistController(service services.WishlistService) *WishlistController {
	return &WishlistController{service: service}
}

type wishlistRequest struct {
	UserID    primitive.ObjectID `json:"userId"`
	ProductID primitive.ObjectID `json:"productId"`
}

// AddToWishlist handles POST /api/wishlist. Returns 201 when the wishlist is
// created on first add, 200 otherwise.
func (wc *WishlistController) AddToWishlist(c *gin.Context) {
	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if req.UserID.IsZero() || req.ProductID.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "userId and productId are required"})
		return
	}

	wishlist, created, err := wc.service.AddProduct(c.Request.Context(), req.UserID, req.ProductID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	if created {
		c.JSON(http.StatusCreated, gin.H{"message": "Wishlist created", "wishlist": wishlist})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product added to wishlist", "wishlist": wishlist})
}

// GetWishlist handles GET /api/wishlist/:userId. A user without a wishlist
// gets an empty product list, not a 404.
func (wc *WishlistController) GetWishlist(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	wishlist, err := wc.service.GetWishlist(c.Request.Context(), userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	if wishlist == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Empty wishlist", "data": gin.H{"products": []any{}}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Wishlist fetched", "data": wishlist})
}

// RemoveFromWishlist handles POST /api/wishlist/remove.
func (wc *WishlistController) RemoveFromWishlist(c *gin.Context) {
	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if req.UserID.IsZero() || req.ProductID.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "userId and productId are required"})
		return
	}

	wishlist, err := wc.service.RemoveProduct(c.Request.Context(), req.UserID, req.ProductID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product removed from wishlist", "wishlist": wishlist})
}
