package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/gunstvlad/WEB-LaBa/controllers/order"
	productControllers "github.com/gunstvlad/WEB-LaBa/controllers/product"
	"github.com/gunstvlad/WEB-LaBa/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the API-key-protected catalog management surface.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey)
	{
		admin.POST("/products", productControllers.CreateProduct(db))          // POST /admin/products
		admin.POST("/products/seed", productControllers.SeedProducts(db))      // POST /admin/products/seed
		admin.GET("/products/export", productControllers.ExportProductsToExcel(db)) // GET /admin/products/export
		admin.GET("/orders", orderControllers.GetAllOrdersHandler(db))         // GET /admin/orders
	}
}
