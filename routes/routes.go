package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/gunstvlad/WEB-LaBa/auth"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public, user and
// admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.TokenService) {
	// Public auth routes (rate-limited, no token required)
	SetupAuthRoutes(r, db, tokens)

	// Public catalog and review reads
	SetupPublicRoutes(r, db)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db, tokens)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)
}
