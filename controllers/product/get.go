package productControllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gunstvlad/WEB-LaBa/config"
	"github.com/gunstvlad/WEB-LaBa/models"
	"gorm.io/gorm"
)

const (
	maxPageSize     = 100
	productCacheTTL = 5 * time.Minute
)

// GET /products?skip=&limit=
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if skip < 0 {
			skip = 0
		}
		if limit <= 0 {
			limit = 20
		}
		if limit > maxPageSize {
			limit = maxPageSize
		}

		products := []models.Product{}
		if err := db.Order("id").Offset(skip).Limit(limit).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/:id
//
// Read-through cache: product rows are read-mostly, so a short redis TTL
// absorbs the storefront's hottest endpoint. Without redis it is a plain read.
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		cacheKey := "product:" + id

		if config.RedisClient != nil {
			cacheCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if cached, err := config.RedisClient.Get(cacheCtx, cacheKey).Result(); err == nil {
				var product models.Product
				if err := json.Unmarshal([]byte(cached), &product); err == nil {
					c.JSON(http.StatusOK, product)
					return
				}
			}
		}

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if config.RedisClient != nil {
			if payload, err := json.Marshal(product); err == nil {
				setCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				config.RedisClient.Set(setCtx, cacheKey, payload, productCacheTTL)
			}
		}

		c.JSON(http.StatusOK, product)
	}
}

// GET /products/category/:category
//
// Exact-match filter over the open category set; no search or ranking.
func GetProductsByCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Param("category")

		products := []models.Product{}
		if err := db.Where("category = ?", category).Order("id").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
