package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gunstvlad/WEB-LaBa/apperr"
	"github.com/gunstvlad/WEB-LaBa/models"
	"gorm.io/gorm"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type SetQuantityInput struct {
	Quantity int `json:"quantity"`
}

// -------- Core Logic --------

// AddItem puts qty units of a product into the user's cart. If the product is
// already there the quantities accumulate; repeated adds never create a second
// row. The increment is a single UPDATE statement, so concurrent adds of the
// same product cannot lose each other's writes.
func AddItem(db *gorm.DB, userID uint, input CartItemInput) (*models.CartItem, error) {
	var product models.Product
	if err := db.First(&product, input.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Newf(apperr.NotFound, "product with id %d not found", input.ProductID)
		}
		return nil, apperr.Wrap(apperr.Storage, "failed to validate product", err)
	}

	res := db.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, input.ProductID).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", input.Quantity))
	if res.Error != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to update cart item", res.Error)
	}

	if res.RowsAffected == 0 {
		item := models.CartItem{
			UserID:    userID,
			ProductID: product.ID,
			Quantity:  input.Quantity,
		}
		if createErr := db.Create(&item).Error; createErr != nil {
			// A concurrent first add won the unique index; fold into it.
			res = db.Model(&models.CartItem{}).
				Where("user_id = ? AND product_id = ?", userID, input.ProductID).
				UpdateColumn("quantity", gorm.Expr("quantity + ?", input.Quantity))
			if res.Error != nil || res.RowsAffected == 0 {
				return nil, apperr.Wrap(apperr.Storage, "failed to add item to cart", createErr)
			}
		}
	}

	return findItemWithProduct(db, userID, input.ProductID)
}

// SetQuantity overwrites a cart item's quantity. A quantity of zero or less
// removes the row; that is a supported idiom, not an error.
func SetQuantity(db *gorm.DB, userID, itemID uint, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	if err := db.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "cart item not found")
		}
		return nil, apperr.Wrap(apperr.Storage, "failed to fetch cart item", err)
	}

	if quantity <= 0 {
		if err := db.Delete(&item).Error; err != nil {
			return nil, apperr.Wrap(apperr.Storage, "failed to remove cart item", err)
		}
		return nil, nil
	}

	if err := db.Model(&item).UpdateColumn("quantity", quantity).Error; err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to update cart item", err)
	}
	item.Quantity = quantity
	return &item, nil
}

// RemoveItem deletes one cart item. Removing an absent item is NotFound.
func RemoveItem(db *gorm.DB, userID, itemID uint) error {
	res := db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.CartItem{})
	if res.Error != nil {
		return apperr.Wrap(apperr.Storage, "failed to delete cart item", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "cart item not found")
	}
	return nil
}

// ClearCart deletes every item in the user's cart. Clearing an already empty
// cart succeeds.
func ClearCart(db *gorm.DB, userID uint) error {
	if err := db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		return apperr.Wrap(apperr.Storage, "failed to clear cart", err)
	}
	return nil
}

// ListItems returns the user's cart with products loaded in one query pass, so
// callers never traverse item→product lazily.
func ListItems(db *gorm.DB, userID uint) ([]models.CartItem, error) {
	items := []models.CartItem{}
	if err := db.Preload("Product").Where("user_id = ?", userID).Order("id").Find(&items).Error; err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to fetch cart", err)
	}
	return items, nil
}

func findItemWithProduct(db *gorm.DB, userID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := db.Preload("Product").
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error; err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to fetch cart item", err)
	}
	return &item, nil
}

// -------- Handlers --------

func requestUserID(c *gin.Context) (uint, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	id, ok := val.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return id, true
}

func itemIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item id"})
		return 0, false
	}
	return uint(id), true
}

// GET /user/cart
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}
		items, err := ListItems(db, userID)
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /user/cart
func AddItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		item, err := AddItem(db, userID, input)
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /user/cart/:id
func SetQuantityHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}
		itemID, ok := itemIDParam(c)
		if !ok {
			return
		}
		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		item, err := SetQuantity(db, userID, itemID, input.Quantity)
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		if item == nil {
			c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /user/cart/:id
func RemoveItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}
		itemID, ok := itemIDParam(c)
		if !ok {
			return
		}
		if err := RemoveItem(db, userID, itemID); err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}
		if err := ClearCart(db, userID); err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
