package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gunstvlad/WEB-LaBa/auth"
	"github.com/gunstvlad/WEB-LaBa/models"
	"gorm.io/gorm"
)

// credentialsMessage is deliberately the same for a missing token, a bad
// signature, an expired token and a token whose user no longer exists, so the
// response shape aids no one probing for valid accounts.
const credentialsMessage = "could not validate credentials"

// RequireAuth verifies the bearer token and resolves it to a live user row.
// The resolved user is stored in the context under "user" (and its id under
// "user_id") for downstream handlers. This is the single gate in front of all
// user-scoped routes.
func RequireAuth(db *gorm.DB, tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": credentialsMessage})
			return
		}

		email, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": credentialsMessage})
			return
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": credentialsMessage})
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Next()
	}
}

// bearerToken extracts the credential from the Authorization header, falling
// back to the "token" query parameter. A present but malformed header is not
// forgiven by the query parameter: the header takes precedence.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		token := strings.TrimPrefix(header, "Bearer ")
		if token == header {
			return ""
		}
		return token
	}
	return c.Query("token")
}

// CurrentUser returns the user resolved by RequireAuth.
func CurrentUser(c *gin.Context) (models.User, bool) {
	val, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	user, ok := val.(models.User)
	return user, ok
}
