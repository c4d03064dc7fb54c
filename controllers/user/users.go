package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gunstvlad/WEB-LaBa/apperr"
	"github.com/gunstvlad/WEB-LaBa/auth"
	"github.com/gunstvlad/WEB-LaBa/middleware"
	"github.com/gunstvlad/WEB-LaBa/models"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// -------- Core Logic --------

// Register creates a user and issues a first token. A taken email fails with
// Conflict and leaves the existing account untouched.
func Register(db *gorm.DB, tokens *auth.TokenService, input RegisterInput) (*models.User, string, error) {
	var existing models.User
	err := db.Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		return nil, "", apperr.New(apperr.Conflict, "email already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", apperr.Wrap(apperr.Storage, "failed to check email", err)
	}

	digest, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, "", apperr.New(apperr.InvalidInput, "password could not be hashed")
	}

	user := models.User{
		Email:        input.Email,
		PasswordHash: digest,
		FullName:     input.FullName,
		Phone:        input.Phone,
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		// The unique index is the backstop for registrations racing past the
		// existence check above.
		return nil, "", apperr.Wrap(apperr.Conflict, "email already registered", err)
	}

	token, err := tokens.Issue(user.Email)
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Storage, "failed to issue token", err)
	}
	return &user, token, nil
}

// Login authenticates by email and password. Unknown email and wrong password
// fail identically.
func Login(db *gorm.DB, tokens *auth.TokenService, input LoginInput) (*models.User, string, error) {
	var user models.User
	if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
		return nil, "", apperr.New(apperr.Unauthenticated, "invalid email or password")
	}
	if !auth.CheckPassword(input.Password, user.PasswordHash) {
		return nil, "", apperr.New(apperr.Unauthenticated, "invalid email or password")
	}

	token, err := tokens.Issue(user.Email)
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Storage, "failed to issue token", err)
	}
	return &user, token, nil
}

// -------- Handlers --------

func authResponse(user *models.User, token string) gin.H {
	return gin.H{
		"id":           user.ID,
		"email":        user.Email,
		"full_name":    user.FullName,
		"is_active":    user.IsActive,
		"created_at":   user.CreatedAt,
		"access_token": token,
		"token_type":   "bearer",
	}
}

// POST /auth/register
func RegisterHandler(db *gorm.DB, tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		user, token, err := Register(db, tokens, input)
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, authResponse(user, token))
	}
}

// POST /auth/login
func LoginHandler(db *gorm.DB, tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		user, token, err := Login(db, tokens, input)
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, authResponse(user, token))
	}
}

// GET /user
func GetProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
