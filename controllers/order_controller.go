package controllers

import (
	"net/http"

	"storefront-backend/apperrors"
	"storefront-backend/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type OrderController struct {
	service services.OrderService
}

func NewOrderController(service services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// PlaceOrder handles POST /api/orders.
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	var req services.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	order, err := oc.service.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	zap.L().Info("Order placed",
		zap.String("order", order.ID.Hex()),
		zap.String("user", order.User.Hex()),
		zap.Float64("totalAmount", order.TotalAmount),
	)
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}

// GetOrders handles GET /api/orders/:userId, newest first with products and
// the shipping address populated.
func (oc *OrderController) GetOrders(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	orders, err := oc.service.GetOrders(c.Request.Context(), userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"orders": orders}})
}
