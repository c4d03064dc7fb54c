package orderControllers

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gunstvlad/WEB-LaBa/apperr"
	"github.com/gunstvlad/WEB-LaBa/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}))
	return db
}

func createProduct(t *testing.T, db *gorm.DB, name string, price float64, inStock bool) models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: price, Category: models.CategoryBed, InStock: inStock}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func countRows(t *testing.T, db *gorm.DB) (orders, items int64) {
	t.Helper()
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&items).Error)
	return orders, items
}

func TestPlaceOrderComputesTotalServerSide(t *testing.T) {
	db := setupTestDB(t)
	cheap := createProduct(t, db, "Bed Oslo", 100, true)
	dear := createProduct(t, db, "Bed Imperial", 200, true)

	order, err := PlaceOrder(db, 1, PlaceOrderRequest{Items: []OrderItemInput{
		// Client-supplied prices are lies; they must change nothing.
		{ProductID: cheap.ID, Quantity: 1, Price: 0.01},
		{ProductID: dear.ID, Quantity: 3, Price: 0.01},
	}})
	require.NoError(t, err)

	assert.Equal(t, float64(700), order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.NotEmpty(t, order.Ref)
	require.Len(t, order.Items, 2)
	assert.Equal(t, float64(100), order.Items[0].Price)
	assert.Equal(t, float64(200), order.Items[1].Price)
	assert.Equal(t, "Bed Oslo", order.Items[0].ProductName)
}

func TestPlaceOrderOutOfStockRollsBack(t *testing.T) {
	db := setupTestDB(t)
	ok1 := createProduct(t, db, "Bed Oslo", 100, true)
	gone := createProduct(t, db, "Wardrobe Modern", 67900, false)
	ok2 := createProduct(t, db, "Bed Imperial", 200, true)

	_, err := PlaceOrder(db, 1, PlaceOrderRequest{Items: []OrderItemInput{
		{ProductID: ok1.ID, Quantity: 1},
		{ProductID: gone.ID, Quantity: 1},
		{ProductID: ok2.ID, Quantity: 1},
	}})
	require.Error(t, err)
	assert.Equal(t, apperr.OutOfStock, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "Wardrobe Modern")

	orders, items := countRows(t, db)
	assert.Zero(t, orders, "no partial order may survive")
	assert.Zero(t, items, "no partial order items may survive")
}

func TestPlaceOrderUnknownProductFailsWhole(t *testing.T) {
	db := setupTestDB(t)
	known := createProduct(t, db, "Bed Oslo", 100, true)

	_, err := PlaceOrder(db, 1, PlaceOrderRequest{Items: []OrderItemInput{
		{ProductID: known.ID, Quantity: 1},
		{ProductID: 777, Quantity: 2},
	}})
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "777")

	orders, items := countRows(t, db)
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestPlaceOrderEmptyIsInvalid(t *testing.T) {
	db := setupTestDB(t)

	_, err := PlaceOrder(db, 1, PlaceOrderRequest{})
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))
}

func TestOrderItemsFreezePriceAtOrderTime(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "Bed Valencia", 68700, true)

	order, err := PlaceOrder(db, 1, PlaceOrderRequest{Items: []OrderItemInput{
		{ProductID: product.ID, Quantity: 1},
	}})
	require.NoError(t, err)

	// Catalog price changes after the fact...
	require.NoError(t, db.Model(&product).UpdateColumn("price", 99999).Error)

	// ...but the historical order keeps the price it was placed at.
	reloaded, err := GetOrder(db, 1, order.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, float64(68700), reloaded.Items[0].Price)
	assert.Equal(t, float64(68700), reloaded.TotalAmount)
}

func TestGetOrderScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "Bed Oslo", 100, true)

	order, err := PlaceOrder(db, 1, PlaceOrderRequest{Items: []OrderItemInput{
		{ProductID: product.ID, Quantity: 1},
	}})
	require.NoError(t, err)

	_, err = GetOrder(db, 2, order.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err), "foreign orders look exactly like missing ones")

	mine, err := GetOrder(db, 1, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Ref, mine.Ref)
}

func TestListOrdersOnlyOwn(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "Bed Oslo", 100, true)

	_, err := PlaceOrder(db, 1, PlaceOrderRequest{Items: []OrderItemInput{{ProductID: product.ID, Quantity: 1}}})
	require.NoError(t, err)
	_, err = PlaceOrder(db, 1, PlaceOrderRequest{Items: []OrderItemInput{{ProductID: product.ID, Quantity: 2}}})
	require.NoError(t, err)
	_, err = PlaceOrder(db, 2, PlaceOrderRequest{Items: []OrderItemInput{{ProductID: product.ID, Quantity: 3}}})
	require.NoError(t, err)

	mine, err := ListOrders(db, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	theirs, err := ListOrders(db, 2)
	require.NoError(t, err)
	assert.Len(t, theirs, 1)
	require.Len(t, theirs[0].Items, 1)
	assert.Equal(t, 3, theirs[0].Items[0].Quantity)
}
