package internal

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"vendswift-backend/config"
	"vendswift-backend/internal/api"
	"vendswift-backend/internal/db"
	"vendswift-backend/internal/model"
	"vendswift-backend/internal/store"
)

func strptr(s string) *string { return &s }

// setupCatalogStack builds the full HTTP stack on an in-memory SQLite
// database seeded with the test catalog.
func setupCatalogStack(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// A per-test shared-cache DSN keeps the database alive across the
	// pool's connections without leaking state between tests.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, err := testDB.DB()
		require.NoError(t, err)
		sqlDB.Close()
	})

	appStore := store.NewGormStore(testDB)
	require.NoError(t, db.Migrate(appStore.DB()))

	machines := []model.Machine{
		{ID: 7, Code: "M12", Name: "Lobby Vendor", IsActive: true},
		{ID: 8, Code: "M13", Name: "Basement Vendor", IsActive: false},
		{ID: 9, Code: "M14", Name: "Empty Vendor", IsActive: true},
		{ID: 10, Code: "M15", Name: "Precision Vendor", IsActive: true},
	}
	require.NoError(t, testDB.Create(&machines).Error)

	products := []model.Product{
		{ID: 1, SKU: "COKE-330", Name: "Coke", ImageURL: strptr("https://img.example/coke.png")},
		{ID: 2, SKU: "CHIPS-45", Name: "Chips", Description: strptr("45g bag")},
		{ID: 3, SKU: "WATER-500", Name: "Water"},
	}
	require.NoError(t, testDB.Create(&products).Error)

	joins := []model.MachineProduct{
		{ID: 1, MachineID: 7, ProductID: 1, Price: decimal.RequireFromString("1.50"), Currency: "USD", IsActive: true},
		{ID: 2, MachineID: 7, ProductID: 2, Price: decimal.RequireFromString("2.25"), Currency: "USD", IsActive: true},
		// Inactive pricing row: must never show up in the catalog.
		{ID: 3, MachineID: 7, ProductID: 3, Price: decimal.RequireFromString("0.99"), Currency: "USD", IsActive: false},
		{ID: 4, MachineID: 10, ProductID: 3, Price: decimal.RequireFromString("12.503"), Currency: "USD", IsActive: true},
	}
	require.NoError(t, testDB.Create(&joins).Error)

	return api.NewRouter(appStore, &config.ServerConfig{RateLimitPerSec: 1000, RateLimitBurst: 1000})
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestMachineCatalogLookup(t *testing.T) {
	router := setupCatalogStack(t)

	t.Run("health does not touch the store", func(t *testing.T) {
		w := get(router, "/health")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("active machine returns catalog sorted by product name", func(t *testing.T) {
		w := get(router, "/machines/M12/products")
		assert.Equal(t, http.StatusOK, w.Code)
		// Chips sorts before Coke by name even though its SKU sorts
		// after, and the inactive Water row is filtered out. The
		// machine_id field carries the scan code, not internal id 7.
		assert.JSONEq(t, `{
			"machine_id": "M12",
			"machine_name": "Lobby Vendor",
			"products": [
				{"id":"CHIPS-45","name":"Chips","description":"45g bag","price":2.25,"currency":"USD","image_url":null},
				{"id":"COKE-330","name":"Coke","description":null,"price":1.5,"currency":"USD","image_url":"https://img.example/coke.png"}
			]
		}`, w.Body.String())
	})

	t.Run("unknown machine code returns 404", func(t *testing.T) {
		w := get(router, "/machines/ZZZ/products")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"detail":"Machine not found"}`, w.Body.String())
	})

	t.Run("inactive machine is indistinguishable from a missing one", func(t *testing.T) {
		w := get(router, "/machines/M13/products")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"detail":"Machine not found"}`, w.Body.String())
	})

	t.Run("active machine with no active rows returns an empty list", func(t *testing.T) {
		w := get(router, "/machines/M14/products")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"machine_id":"M14","machine_name":"Empty Vendor","products":[]}`, w.Body.String())
	})

	t.Run("price digits survive the float conversion", func(t *testing.T) {
		w := get(router, "/machines/M15/products")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"price":12.503`)
	})
}
