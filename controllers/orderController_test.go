package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Kimanzi/duka-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeOrderBody(items []gin.H) gin.H {
	return gin.H{
		"orderItems":       items,
		"shippingAddress1": "Moi Avenue 12",
		"city":             "Nairobi",
		"zip":              "00100",
		"country":          "Kenya",
		"phone":            "+254700000000",
	}
}

func TestCreateOrderComputesTotalFromPriceSnapshots(t *testing.T) {
	server, db := newTestServer(t)
	_, token := createTestUser(t, db, "buyer@example.com", false)
	category := createTestCategory(t, db, "Furniture")
	productA := createTestProduct(t, db, "Chair", 10, category.ID)
	productB := createTestProduct(t, db, "Lamp", 7, category.ID)

	recorder := performRequest(server, http.MethodPost, "/api/v1/orders", token, placeOrderBody([]gin.H{
		{"product": productA.ID, "quantity": 2},
		{"product": productB.ID, "quantity": 1},
	}))
	requireStatus(t, recorder, http.StatusOK)

	response := decodeResponse(t, recorder)
	data := response["data"].(map[string]any)
	assert.Equal(t, 27.0, data["totalPrice"])

	var items []models.OrderItem
	require.NoError(t, db.Order("id").Find(&items).Error)
	require.Len(t, items, 2)
	assert.Equal(t, productA.ID, items[0].ProductID)
	assert.Equal(t, 20.0, items[0].Price)
	assert.Equal(t, productB.ID, items[1].ProductID)
	assert.Equal(t, 7.0, items[1].Price)

	// Later price changes must not rewrite the stored order.
	require.NoError(t, db.Model(&productA).Update("price", 99).Error)
	var order models.Order
	require.NoError(t, db.First(&order).Error)
	assert.Equal(t, 27.0, order.TotalPrice)
}

func TestCreateOrderRejectsBadItems(t *testing.T) {
	server, db := newTestServer(t)
	_, token := createTestUser(t, db, "buyer@example.com", false)
	category := createTestCategory(t, db, "Furniture")
	product := createTestProduct(t, db, "Chair", 10, category.ID)

	tests := []struct {
		name  string
		items []gin.H
	}{
		{"negative quantity", []gin.H{{"product": product.ID, "quantity": -1}}},
		{"zero quantity", []gin.H{{"product": product.ID, "quantity": 0}}},
		{"unknown product", []gin.H{{"product": 9999, "quantity": 1}}},
		{"no items", []gin.H{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := performRequest(server, http.MethodPost, "/api/v1/orders", token, placeOrderBody(tt.items))
			requireStatus(t, recorder, http.StatusBadRequest)
		})
	}

	// No order or order item survives a failed placement.
	var orderCount, itemCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
}

func TestCreateOrderRequiresAuth(t *testing.T) {
	server, db := newTestServer(t)
	category := createTestCategory(t, db, "Furniture")
	product := createTestProduct(t, db, "Chair", 10, category.ID)

	recorder := performRequest(server, http.MethodPost, "/api/v1/orders", "", placeOrderBody([]gin.H{
		{"product": product.ID, "quantity": 1},
	}))
	requireStatus(t, recorder, http.StatusUnauthorized)

	var orderCount, itemCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
}

func TestGetOrderJoinsProductAndCategory(t *testing.T) {
	server, db := newTestServer(t)
	_, token := createTestUser(t, db, "buyer@example.com", false)
	category := createTestCategory(t, db, "Furniture")
	product := createTestProduct(t, db, "Chair", 10, category.ID)

	recorder := performRequest(server, http.MethodPost, "/api/v1/orders", token, placeOrderBody([]gin.H{
		{"product": product.ID, "quantity": 2},
	}))
	requireStatus(t, recorder, http.StatusOK)
	orderId := decodeResponse(t, recorder)["data"].(map[string]any)["ID"].(float64)

	recorder = performRequest(server, http.MethodGet, fmt.Sprintf("/api/v1/orders/%d", int(orderId)), token, nil)
	requireStatus(t, recorder, http.StatusOK)

	data := decodeResponse(t, recorder)["data"].(map[string]any)
	items := data["orderItems"].([]any)
	require.Len(t, items, 1)
	joinedProduct := items[0].(map[string]any)["product"].(map[string]any)
	assert.Equal(t, "Chair", joinedProduct["name"])
	joinedCategory := joinedProduct["category"].(map[string]any)
	assert.Equal(t, "Furniture", joinedCategory["name"])
}

func TestGetOrderNotFound(t *testing.T) {
	server, db := newTestServer(t)
	_, token := createTestUser(t, db, "buyer@example.com", false)

	recorder := performRequest(server, http.MethodGet, "/api/v1/orders/42", token, nil)
	requireStatus(t, recorder, http.StatusNotFound)
}

func TestListOrdersFiltersByUser(t *testing.T) {
	server, db := newTestServer(t)
	userA, token := createTestUser(t, db, "a@example.com", false)
	userB, _ := createTestUser(t, db, "b@example.com", false)

	require.NoError(t, db.Create(&models.Order{UserID: userA.ID, Status: "Pending", TotalPrice: 10}).Error)
	require.NoError(t, db.Create(&models.Order{UserID: userB.ID, Status: "Pending", TotalPrice: 25}).Error)

	recorder := performRequest(server, http.MethodGet, fmt.Sprintf("/api/v1/orders?user=%d", userA.ID), token, nil)
	requireStatus(t, recorder, http.StatusOK)

	orders := decodeResponse(t, recorder)["data"].([]any)
	require.Len(t, orders, 1)
	assert.Equal(t, float64(userA.ID), orders[0].(map[string]any)["userId"])
}

func TestUpdateOrderStatus(t *testing.T) {
	server, db := newTestServer(t)
	user, token := createTestUser(t, db, "buyer@example.com", false)

	order := models.Order{UserID: user.ID, Status: "Pending", TotalPrice: 10}
	require.NoError(t, db.Create(&order).Error)

	recorder := performRequest(server, http.MethodPut, fmt.Sprintf("/api/v1/orders/%d", order.ID), token, gin.H{"status": "Shipped"})
	requireStatus(t, recorder, http.StatusOK)

	var updated models.Order
	require.NoError(t, db.First(&updated, order.ID).Error)
	assert.Equal(t, "Shipped", updated.Status)

	recorder = performRequest(server, http.MethodPut, "/api/v1/orders/4242", token, gin.H{"status": "Shipped"})
	requireStatus(t, recorder, http.StatusNotFound)
}

func TestDeleteOrderCascadesToItems(t *testing.T) {
	server, db := newTestServer(t)
	_, token := createTestUser(t, db, "buyer@example.com", false)
	category := createTestCategory(t, db, "Furniture")
	product := createTestProduct(t, db, "Chair", 10, category.ID)

	recorder := performRequest(server, http.MethodPost, "/api/v1/orders", token, placeOrderBody([]gin.H{
		{"product": product.ID, "quantity": 2},
		{"product": product.ID, "quantity": 1},
	}))
	requireStatus(t, recorder, http.StatusOK)
	orderId := int(decodeResponse(t, recorder)["data"].(map[string]any)["ID"].(float64))

	recorder = performRequest(server, http.MethodDelete, fmt.Sprintf("/api/v1/orders/%d", orderId), token, nil)
	requireStatus(t, recorder, http.StatusOK)

	var itemCount int64
	require.NoError(t, db.Model(&models.OrderItem{}).Where("order_id = ?", orderId).Count(&itemCount).Error)
	assert.Zero(t, itemCount)

	recorder = performRequest(server, http.MethodGet, fmt.Sprintf("/api/v1/orders/%d", orderId), token, nil)
	requireStatus(t, recorder, http.StatusNotFound)

	recorder = performRequest(server, http.MethodDelete, fmt.Sprintf("/api/v1/orders/%d", orderId), token, nil)
	requireStatus(t, recorder, http.StatusNotFound)
}

func TestTotalSales(t *testing.T) {
	server, db := newTestServer(t)
	user, token := createTestUser(t, db, "buyer@example.com", false)

	recorder := performRequest(server, http.MethodGet, "/api/v1/orders/get/totalsales", token, nil)
	requireStatus(t, recorder, http.StatusOK)
	assert.Equal(t, 0.0, decodeResponse(t, recorder)["data"])

	for _, total := range []float64{10, 25, 5} {
		require.NoError(t, db.Create(&models.Order{UserID: user.ID, Status: "Pending", TotalPrice: total}).Error)
	}

	recorder = performRequest(server, http.MethodGet, "/api/v1/orders/get/totalsales", token, nil)
	requireStatus(t, recorder, http.StatusOK)
	assert.Equal(t, 40.0, decodeResponse(t, recorder)["data"])

	recorder = performRequest(server, http.MethodGet, "/api/v1/orders/get/count", token, nil)
	requireStatus(t, recorder, http.StatusOK)
	assert.Equal(t, 3.0, decodeResponse(t, recorder)["data"])
}
