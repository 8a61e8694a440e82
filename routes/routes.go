package routes

import (
	"net/http"

	"storefront-backend/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint under /api.
func RegisterRoutes(
	r *gin.Engine,
	productController *controllers.ProductController,
	categoryController *controllers.CategoryController,
	addressController *controllers.AddressController,
	userController *controllers.UserController,
	wishlistController *controllers.WishlistController,
	cartController *controllers.CartController,
	orderController *controllers.OrderController,
) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "E-Commerce API Running")
	})

	api := r.Group("/api")
	{
		api.POST("/products", productController.CreateProduct)
		api.GET("/products", productController.GetProducts)
		api.GET("/products/:productId", productController.GetProductByID)

		api.POST("/categories", categoryController.CreateCategory)
		api.GET("/categories", categoryController.GetCategories)
		api.GET("/categories/:categoryId", categoryController.GetCategoryByID)

		api.POST("/addresses", addressController.CreateAddresses)

		api.POST("/users", userController.CreateUsers)
		api.GET("/users/:userId", userController.GetUserByID)
		api.PUT("/users/:userId/address", addressController.ReplaceUserAddresses)
		api.DELETE("/users/:userId/address/:addressId", addressController.DeleteUserAddress)

		api.POST("/wishlist", wishlistController.AddToWishlist)
		api.POST("/wishlist/remove", wishlistController.RemoveFromWishlist)
		api.GET("/wishlist/:userId", wishlistController.GetWishlist)

		api.GET("/cart/:userId", cartController.GetCart)
		api.POST("/cart/update", cartController.UpdateCart)
		api.POST("/cart/remove", cartController.RemoveFromCart)

		api.GET("/orders/:userId", orderController.GetOrders)
		api.POST("/orders", orderController.PlaceOrder)
	}
}
