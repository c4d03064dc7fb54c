package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gunstvlad/WEB-LaBa/apperr"
	"github.com/gunstvlad/WEB-LaBa/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type OrderItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
	// Price is accepted for wire compatibility but carries no authority: the
	// server recomputes every line from the stored product price.
	Price float64 `json:"price"`
}

type PlaceOrderRequest struct {
	Items []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// -------- Helpers --------

// generateOrderRef returns a unique, human-sortable order reference.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Core Logic --------

// PlaceOrder validates every requested line against the catalog, recomputes
// pricing from stored product data and writes the order with its items as one
// transaction. Any validation failure aborts the whole order; no partial rows
// survive a mid-write fault.
func PlaceOrder(db *gorm.DB, userID uint, req PlaceOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, apperr.New(apperr.InvalidInput, "order must contain at least one item")
	}

	var order models.Order
	txErr := db.Transaction(func(tx *gorm.DB) error {
		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(req.Items))

		for _, line := range req.Items {
			var product models.Product
			if err := tx.First(&product, line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.Newf(apperr.NotFound, "product with id %d not found", line.ProductID)
				}
				return apperr.Wrap(apperr.Storage, "failed to load product", err)
			}
			if !product.InStock {
				return apperr.Newf(apperr.OutOfStock, "product %s is out of stock", product.Name)
			}

			price := decimal.NewFromFloat(product.Price)
			total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))

			items = append(items, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Price:       product.Price,
				Quantity:    line.Quantity,
			})
		}

		order = models.Order{
			Ref:         generateOrderRef(),
			UserID:      userID,
			Items:       items,
			TotalAmount: total.InexactFloat64(),
			Status:      models.OrderStatusPending,
		}
		if err := tx.Create(&order).Error; err != nil {
			return apperr.Wrap(apperr.Storage, "failed to persist order", err)
		}
		return nil
	})
	if txErr != nil {
		if apperr.KindOf(txErr) != 0 {
			return nil, txErr
		}
		return nil, apperr.Wrap(apperr.Storage, "failed to place order", txErr)
	}
	return &order, nil
}

// ListOrders returns the user's orders, newest first, items included.
func ListOrders(db *gorm.DB, userID uint) ([]models.Order, error) {
	orders := []models.Order{}
	if err := db.
		Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, apperr.Wrap(apperr.Storage, "failed to fetch orders", err)
	}
	return orders, nil
}

// GetOrder returns one order, only if it belongs to the user. An order owned
// by someone else is indistinguishable from a missing one.
func GetOrder(db *gorm.DB, userID, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := db.
		Where("id = ? AND user_id = ?", orderID, userID).
		Preload("Items").
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "order not found")
		}
		return nil, apperr.Wrap(apperr.Storage, "failed to fetch order", err)
	}
	return &order, nil
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

// POST /user/orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		order, err := PlaceOrder(db, userID, req)
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GET /user/orders
func ListOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}
		orders, err := ListOrders(db, userID)
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/orders/:id
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}
		orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}
		order, getErr := GetOrder(db, userID, uint(orderID))
		if getErr != nil {
			c.JSON(apperr.HTTPStatus(getErr), gin.H{"error": getErr.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
