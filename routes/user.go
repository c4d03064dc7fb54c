package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/gunstvlad/WEB-LaBa/auth"
	cartControllers "github.com/gunstvlad/WEB-LaBa/controllers/cart"
	orderControllers "github.com/gunstvlad/WEB-LaBa/controllers/order"
	reviewControllers "github.com/gunstvlad/WEB-LaBa/controllers/review"
	userControllers "github.com/gunstvlad/WEB-LaBa/controllers/user"
	"github.com/gunstvlad/WEB-LaBa/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers every endpoint that requires a resolved identity.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.TokenService) {
	requireAuth := middleware.RequireAuth(db, tokens)

	r.POST("/reviews", requireAuth, reviewControllers.SubmitHandler(db)) // POST /reviews

	userGroup := r.Group("/user")
	userGroup.Use(requireAuth)
	{
		userGroup.GET("/", userControllers.GetProfile()) // GET /user

		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCartHandler(db))           // GET /user/cart
			cartGroup.POST("/", cartControllers.AddItemHandler(db))          // POST /user/cart
			cartGroup.PUT("/:id", cartControllers.SetQuantityHandler(db))    // PUT /user/cart/:id
			cartGroup.DELETE("/:id", cartControllers.RemoveItemHandler(db))  // DELETE /user/cart/:id
			cartGroup.DELETE("/", cartControllers.ClearCartHandler(db))      // DELETE /user/cart
		}

		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.POST("/", orderControllers.PlaceOrderHandler(db)) // POST /user/orders
			orderGroup.GET("/", orderControllers.ListOrdersHandler(db))  // GET /user/orders
			orderGroup.GET("/:id", orderControllers.GetOrderHandler(db)) // GET /user/orders/:id
		}
	}
}
