package controllers

import (
	"net/http"

	"storefront-backend/apperrors"
	"storefront-backend/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AddressController struct {
	service services.AddressService
}

func NewAddressController(service services.AddressService) *AddressController {
	return &AddressController{service: service}
}

// CreateAddresses handles POST /api/addresses. The body wraps the batch in
// an "addresses" array; each address is linked to its owning user.
func (ac *AddressController) CreateAddresses(c *gin.Context) {
	var req struct {
		Addresses []services.AddressCreateRequest `json:"addresses"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	addresses, err := ac.service.CreateAddresses(c.Request.Context(), req.Addresses)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Addresses saved and linked to user", "addresses": addresses})
}

// ReplaceUserAddresses handles PUT /api/users/:userId/address, replacing the
// user's full address set.
func (ac *AddressController) ReplaceUserAddresses(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	var req struct {
		Addresses *[]services.AddressCreateRequest `json:"addresses"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Addresses == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Addresses should be an array"})
		return
	}

	addresses, err := ac.service.ReplaceAddresses(c.Request.Context(), userID, *req.Addresses)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Addresses updated", "addresses": addresses})
}

// DeleteUserAddress handles DELETE /api/users/:userId/address/:addressId.
func (ac *AddressController) DeleteUserAddress(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}
	addressID, err := primitive.ObjectIDFromHex(c.Param("addressId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid address ID"})
		return
	}

	if err := ac.service.DeleteAddress(c.Request.Context(), userID, addressID); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address deleted successfully"})
}
