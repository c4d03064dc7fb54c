package productControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gunstvlad/WEB-LaBa/models"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Product{}))

	r := gin.New()
	r.GET("/products", GetProducts(db))
	r.GET("/products/:id", GetProductByID(db))
	r.GET("/products/category/:category", GetProductsByCategory(db))
	return r, db
}

func seed(t *testing.T, db *gorm.DB, name, category string) models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: 100, Category: category, InStock: true}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func getJSON(t *testing.T, r *gin.Engine, target string, out interface{}) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if out != nil && w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w.Code
}

func TestGetProductsPagination(t *testing.T) {
	r, db := setupRouter(t)
	for _, name := range []string{"Sofa Aurora", "Sofa Luna", "Sofa Cosmo"} {
		seed(t, db, name, models.CategorySofa)
	}

	var page []models.Product
	code := getJSON(t, r, "/products?skip=1&limit=1", &page)
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, page, 1)
	assert.Equal(t, "Sofa Luna", page[0].Name)

	var all []models.Product
	code = getJSON(t, r, "/products?skip=-3&limit=99999", &all)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, all, 3, "bad bounds are clamped, not rejected")
}

func TestGetProductByID(t *testing.T) {
	r, db := setupRouter(t)
	bed := seed(t, db, "Bed Oslo", models.CategoryBed)

	var got models.Product
	code := getJSON(t, r, "/products/"+strconv.Itoa(int(bed.ID)), &got)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Bed Oslo", got.Name)

	code = getJSON(t, r, "/products/99999", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestGetProductsByCategoryExactMatch(t *testing.T) {
	r, db := setupRouter(t)
	seed(t, db, "Bed Oslo", models.CategoryBed)
	seed(t, db, "Sofa Aurora", models.CategorySofa)

	var beds []models.Product
	code := getJSON(t, r, "/products/category/bed", &beds)
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, beds, 1)
	assert.Equal(t, "Bed Oslo", beds[0].Name)

	// Exact match only: no prefix or fuzzy behavior.
	var none []models.Product
	code = getJSON(t, r, "/products/category/be", &none)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, none)
}
