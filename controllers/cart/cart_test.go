package cartControllers

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
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.CartItem{}))
	return db
}

func createProduct(t *testing.T, db *gorm.DB, name string, price float64) models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: price, Category: models.CategorySofa, InStock: true}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestAddItemMergesQuantities(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "Sofa Aurora", 89900)

	first, err := AddItem(db, 1, CartItemInput{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, first.Quantity)

	second, err := AddItem(db, 1, CartItemInput{ProductID: product.ID, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 5, second.Quantity)
	assert.Equal(t, first.ID, second.ID, "merge must reuse the existing row")

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddItemKeepsUsersApart(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "Sofa Aurora", 89900)

	_, err := AddItem(db, 1, CartItemInput{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)
	other, err := AddItem(db, 2, CartItemInput{ProductID: product.ID, Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, other.Quantity)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestAddItemUnknownProduct(t *testing.T) {
	db := setupTestDB(t)

	_, err := AddItem(db, 1, CartItemInput{ProductID: 999, Quantity: 1})
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "999")
}

func TestAddItemReturnsProduct(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "Bed Oslo", 52400)

	item, err := AddItem(db, 1, CartItemInput{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, "Bed Oslo", item.Product.Name)
}

func TestSetQuantityOverwrites(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "Sofa Aurora", 89900)

	item, err := AddItem(db, 1, CartItemInput{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	updated, err := SetQuantity(db, 1, item.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)

	var reloaded models.CartItem
	require.NoError(t, db.First(&reloaded, item.ID).Error)
	assert.Equal(t, 7, reloaded.Quantity)
}

func TestSetQuantityZeroDeletesRow(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "Sofa Aurora", 89900)

	item, err := AddItem(db, 1, CartItemInput{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	removed, err := SetQuantity(db, 1, item.ID, 0)
	require.NoError(t, err, "removal via zero quantity is success, not an error")
	assert.Nil(t, removed)

	err = RemoveItem(db, 1, item.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestSetQuantityUnownedItem(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "Sofa Aurora", 89900)

	item, err := AddItem(db, 1, CartItemInput{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)

	_, err = SetQuantity(db, 2, item.ID, 5)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	var reloaded models.CartItem
	require.NoError(t, db.First(&reloaded, item.ID).Error)
	assert.Equal(t, 2, reloaded.Quantity, "foreign user must not touch the row")
}

func TestRemoveItemAbsentIsNotFound(t *testing.T) {
	db := setupTestDB(t)

	err := RemoveItem(db, 1, 42)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestClearCartIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "Sofa Aurora", 89900)
	other := createProduct(t, db, "Bed Oslo", 52400)

	_, err := AddItem(db, 1, CartItemInput{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = AddItem(db, 1, CartItemInput{ProductID: other.ID, Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, ClearCart(db, 1))
	require.NoError(t, ClearCart(db, 1), "clearing an empty cart succeeds")

	items, err := ListItems(db, 1)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListItemsPreloadsProducts(t *testing.T) {
	db := setupTestDB(t)
	sofa := createProduct(t, db, "Sofa Aurora", 89900)
	bed := createProduct(t, db, "Bed Oslo", 52400)

	_, err := AddItem(db, 1, CartItemInput{ProductID: sofa.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = AddItem(db, 1, CartItemInput{ProductID: bed.ID, Quantity: 2})
	require.NoError(t, err)

	items, err := ListItems(db, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Sofa Aurora", items[0].Product.Name)
	assert.Equal(t, "Bed Oslo", items[1].Product.Name)
}
