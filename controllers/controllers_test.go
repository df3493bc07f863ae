package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Kimanzi/duka-api/cache"
	"github.com/Kimanzi/duka-api/controllers"
	"github.com/Kimanzi/duka-api/initializers"
	"github.com/Kimanzi/duka-api/models"
	"github.com/Kimanzi/duka-api/routes"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer wires the real routes against an in-memory sqlite database.
// Redis is absent, so the product cache runs disabled.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, initializers.SyncDatabase(db))

	cfg := initializers.Config{JWTSecret: testSecret}
	server := gin.New()
	registerRoutes(server, db, cfg)
	return server, db
}

func createTestUser(t *testing.T, db *gorm.DB, email string, isAdmin bool) (models.User, string) {
	t.Helper()

	user := models.User{Name: "Test User", Email: email, Password: "not-a-real-hash", IsAdmin: isAdmin}
	require.NoError(t, db.Create(&user).Error)

	token, err := controllers.GenerateJWT(user, testSecret)
	require.NoError(t, err)
	return user, token
}

func createTestCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()

	category := models.Category{Name: name, Icon: "icon-" + name, Color: "#ffffff"}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, price float64, categoryId uint) models.Product {
	t.Helper()

	product := models.Product{Name: name, Price: price, CategoryID: categoryId, CountInStock: 100}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func performRequest(server *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	return recorder
}

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var response map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response), "body: %s", recorder.Body.String())
	return response
}

func requireStatus(t *testing.T, recorder *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, recorder.Code, "body: %s", recorder.Body.String())
}

func registerRoutes(server *gin.Engine, db *gorm.DB, cfg initializers.Config) {
	productCache := cache.NewProductCache(nil)
	routes.DefaultRoutes(server)
	routes.UserRoutes(server, db, cfg)
	routes.CategoryRoutes(server, db, cfg)
	routes.ProductRoutes(server, db, productCache, cfg)
	routes.OrderRoutes(server, db, cfg)
	routes.ProjectRoutes(server, db, cfg)
}
