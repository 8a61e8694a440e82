package controllers

import (
	"net/http"

	"storefront-backend/apperrors"
	"storefront-backend/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartController struct {
	service services.CartService
}

func NewCartController(service services.CartService) *CartController {
	return &CartController{service: service}
}

// GetCart handles GET /api/cart/:userId. A user without a cart gets an
// empty item list, not a 404.
func (cc *CartController) GetCart(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	cart, err := cc.service.GetCart(c.Request.Context(), userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	if cart == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Empty cart", "data": gin.H{"items": []any{}}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart fetched", "data": cart})
}

// UpdateCart handles POST /api/cart/update, adding a line item or
// overwriting the quantity of an existing one.
func (cc *CartController) UpdateCart(c *gin.Context) {
	var req struct {
		UserID    primitive.ObjectID `json:"userId"`
		ProductID primitive.ObjectID `json:"productId"`
		Quantity  *int               `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if req.UserID.IsZero() || req.ProductID.IsZero() || req.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	cart, err := cc.service.UpdateItem(c.Request.Context(), req.UserID, req.ProductID, *req.Quantity)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart updated", "cart": cart})
}

// RemoveFromCart handles POST /api/cart/remove.
func (cc *CartController) RemoveFromCart(c *gin.Context) {
	var req struct {
		UserID    primitive.ObjectID `json:"userId"`
		ProductID primitive.ObjectID `json:"productId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if req.UserID.IsZero() || req.ProductID.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	cart, err := cc.service.RemoveItem(c.Request.Context(), req.UserID, req.ProductID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product removed from cart", "cart": cart})
}
