package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/gunstvlad/WEB-LaBa/auth"
	userControllers "github.com/gunstvlad/WEB-LaBa/controllers/user"
	"github.com/gunstvlad/WEB-LaBa/middleware"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.TokenService) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", middleware.RateLimiter(), userControllers.RegisterHandler(db, tokens))
		authGroup.POST("/login", middleware.RateLimiter(), userControllers.LoginHandler(db, tokens))
	}
}
