package controllers

import (
	"net/http"

	"storefront-backend/apperrors"
	"storefront-backend/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserController struct {
	service services.UserService
}

func NewUserController(service services.UserService) *UserController {
	return &UserController{service: service}
}

// CreateUsers handles POST /api/users. The body is a bare array of user
// objects.
func (uc *UserController) CreateUsers(c *gin.Context) {
	var reqs []services.UserCreateRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	users, err := uc.service.CreateUsers(c.Request.Context(), reqs)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Users created", "users": users})
}

// GetUserByID handles GET /api/users/:userId, returning the user with the
// wishlist and address references populated.
func (uc *UserController) GetUserByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	user, err := uc.service.GetUser(c.Request.Context(), id)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User fetched", "data": gin.H{"user": user}})
}
