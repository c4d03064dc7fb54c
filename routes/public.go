package routes

import (
	"github.com/gin-gonic/gin"
	productControllers "github.com/gunstvlad/WEB-LaBa/controllers/product"
	reviewControllers "github.com/gunstvlad/WEB-LaBa/controllers/review"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the unauthenticated catalog and review reads.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("/", productControllers.GetProducts(db))                           // GET /products
		products.GET("/:id", productControllers.GetProductByID(db))                     // GET /products/:id
		products.GET("/category/:category", productControllers.GetProductsByCategory(db)) // GET /products/category/:category
	}

	r.GET("/reviews", reviewControllers.ListHandler(db)) // GET /reviews
}
