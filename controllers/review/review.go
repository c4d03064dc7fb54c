package reviewControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gunstvlad/WEB-LaBa/apperr"
	"github.com/gunstvlad/WEB-LaBa/middleware"
	"github.com/gunstvlad/WEB-LaBa/models"
	"gorm.io/gorm"
)

const maxReviewPageSize = 100

type ReviewInput struct {
	Rating int    `json:"rating" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

// -------- Core Logic --------

// Submit appends a review. The author's display name is copied into the row
// at write time; reviews are approved by default (no moderation queue).
func Submit(db *gorm.DB, user models.User, input ReviewInput) (*models.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperr.New(apperr.InvalidInput, "rating must be between 1 and 5")
	}

	review := models.Review{
		UserID:     user.ID,
		UserName:   user.FullName,
		Rating:     input.Rating,
		Text:       input.Text,
		IsApproved: true,
	}
	if err := db.Create(&review).Error; err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to save review", err)
	}
	return &review, nil
}

// List returns approved reviews in creation order, bounded by skip/limit.
func List(db *gorm.DB, skip, limit int) ([]models.Review, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > maxReviewPageSize {
		limit = maxReviewPageSize
	}

	reviews := []models.Review{}
	if err := db.
		Where("is_approved = ?", true).
		Order("created_at").
		Offset(skip).
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to fetch reviews", err)
	}
	return reviews, nil
}

// -------- Handlers --------

// POST /reviews
func SubmitHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		review, err := Submit(db, user, input)
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

// GET /reviews
func ListHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

		reviews, err := List(db, skip, limit)
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}
