package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gunstvlad/WEB-LaBa/models"
	"gorm.io/gorm"
)

// seedCatalog is the showroom starter set. One wardrobe ships out of stock so
// the storefront's unavailable state is visible out of the box.
var seedCatalog = []models.Product{
	{Name: "Sofa Aurora", Description: "Corner sofa with a pull-out sleeping mechanism, eco-leather upholstery, birch frame. 220x160 cm.", Price: 89900, Category: models.CategorySofa, ImageURL: "/img/sofa1.png", InStock: true},
	{Name: "Sofa Luna", Description: "Straight sofa on solid oak legs, orthopedic latex filling. 200x90 cm.", Price: 124500, Category: models.CategorySofa, ImageURL: "/img/sofa2.png", InStock: true},
	{Name: "Sofa Cosmo", Description: "Compact sofa with linen storage box and adjustable cushions. 180x120 cm.", Price: 76300, Category: models.CategorySofa, ImageURL: "/img/sofa3.png", InStock: true},
	{Name: "Wardrobe Milano", Description: "Sliding-door wardrobe with mirrored fronts, shelves, rails and drawers. 240x60x220 cm.", Price: 45200, Category: models.CategoryWardrobe, ImageURL: "/img/wardrobe1.png", InStock: true},
	{Name: "Wardrobe Vienna", Description: "Classic hinged wardrobe in solid wood, hand finished. 200x55x210 cm.", Price: 38700, Category: models.CategoryWardrobe, ImageURL: "/img/wardrobe2.png", InStock: true},
	{Name: "Wardrobe Modern", Description: "Walk-in wardrobe system with sliding doors and configurable interior. 300x65x230 cm.", Price: 67900, Category: models.CategoryWardrobe, ImageURL: "/img/wardrobe3.png", InStock: false},
	{Name: "Bed Valencia", Description: "Double bed with a tall velour headboard and lift-up storage. Sleeping area 200x160 cm.", Price: 68700, Category: models.CategoryBed, ImageURL: "/img/bed1.png", InStock: true},
	{Name: "Bed Oslo", Description: "Scandinavian pine bed with minimalist lines and eco lacquer finish. Sleeping area 200x140 cm.", Price: 52400, Category: models.CategoryBed, ImageURL: "/img/bed2.png", InStock: true},
	{Name: "Bed Imperial", Description: "Premium bed with carved woodwork and an orthopedic slatted base. Sleeping area 200x180 cm.", Price: 95800, Category: models.CategoryBed, ImageURL: "/img/bed3.png", InStock: true},
}

// POST /admin/products/seed
//
// Populates an empty catalog with fixtures. A non-empty catalog is left alone.
func SeedProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var existing int64
		if err := db.Model(&models.Product{}).Count(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}
		if existing > 0 {
			c.JSON(http.StatusOK, gin.H{
				"message":        "catalog already populated, nothing seeded",
				"existing_count": existing,
			})
			return
		}

		products := make([]models.Product, len(seedCatalog))
		copy(products, seedCatalog)
		if err := db.Create(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":     "catalog seeded",
			"added_count": len(products),
		})
	}
}
