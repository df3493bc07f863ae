package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Kimanzi/duka-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderItemInput struct {
	Product  uint `json:"product" binding:"required"`
	Quantity int  `json:"quantity" binding:"required"`
}

type PlaceOrderInput struct {
	OrderItems       []OrderItemInput `json:"orderItems" binding:"required,min=1"`
	ShippingAddress1 string           `json:"shippingAddress1" binding:"required"`
	ShippingAddress2 string           `json:"shippingAddress2"`
	City             string           `json:"city" binding:"required"`
	Zip              string           `json:"zip"`
	Country          string           `json:"country" binding:"required"`
	Phone            string           `json:"phone" binding:"required"`
	Status           string           `json:"status"`
}

// CreateOrder prices every requested line item against the current product
// price, sums the line totals into the order total and writes the order
// together with its items. The whole fan-out runs in a single transaction:
// either the order and all of its items land, or nothing does. The item
// prices are snapshots; later product price changes never rewrite an order.
func CreateOrder(ctx *gin.Context, db *gorm.DB) {
	var input PlaceOrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Printf("JSON binding error: %v", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	userId := ctx.GetUint("userId")

	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()
	if tx.Error != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to start transaction")
		return
	}

	var orderItems []models.OrderItem
	totalPrice := 0.0

	for _, item := range input.OrderItems {
		if item.Quantity <= 0 {
			tx.Rollback()
			sendErrorResponse(ctx, http.StatusBadRequest, "Quantity must be greater than zero")
			return
		}

		var product models.Product
		if err := tx.First(&product, item.Product).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusBadRequest, "Product not found")
			} else {
				log.Println(err)
				sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to look up product")
			}
			return
		}

		lineTotal := product.Price * float64(item.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			Price:     lineTotal,
		})
		totalPrice += lineTotal
	}

	status := input.Status
	if status == "" {
		status = "Pending"
	}

	order := models.Order{
		UserID:           userId,
		ShippingAddress1: input.ShippingAddress1,
		ShippingAddress2: input.ShippingAddress2,
		City:             input.City,
		Zip:              input.Zip,
		Country:          input.Country,
		Phone:            input.Phone,
		Status:           status,
		TotalPrice:       totalPrice,
		OrderItems:       orderItems,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
		return
	}

	if err := tx.Commit().Error; err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to save order")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Order created successfully.",
		"data":    order,
	})
}

func GetOrders(ctx *gin.Context, db *gorm.DB) {
	query := db.
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Preload("OrderItems.Product.Category").
		Order("created_at desc")

	if user := ctx.Query("user"); user != "" {
		query = query.Where("user_id = ?", user)
	}

	var orders []models.Order
	if result := query.Find(&orders); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch orders.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Orders fetched successfully.",
		"data":    orders,
	})
}

func GetOrder(ctx *gin.Context, db *gorm.DB) {
	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var order models.Order
	result := db.
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Preload("OrderItems.Product.Category").
		First(&order, orderId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found!")
		} else {
			log.Println(result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch order.")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Order fetched successfully.",
		"data":    order,
	})
}

func UpdateOrderStatus(ctx *gin.Context, db *gorm.DB) {
	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var order models.Order
	if result := db.First(&order, orderId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found!")
		} else {
			log.Println(result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch order.")
		}
		return
	}

	if result := db.Model(&order).Update("status", input.Status); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Order status updated successfully.",
		"data":    order,
	})
}

// DeleteOrder removes the order's items and then the order itself, in one
// transaction so a partial cascade never survives.
func DeleteOrder(ctx *gin.Context, db *gorm.DB) {
	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var order models.Order
	if result := db.First(&order, orderId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found!")
		} else {
			log.Println(result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch order.")
		}
		return
	}

	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if result := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}); result.Error != nil {
		tx.Rollback()
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete order items.")
		return
	}
	if result := tx.Delete(&order); result.Error != nil {
		tx.Rollback()
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete order.")
		return
	}
	if err := tx.Commit().Error; err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete order.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Order deleted successfully.",
	})
}

func GetTotalSales(ctx *gin.Context, db *gorm.DB) {
	var totalSales float64
	result := db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&totalSales)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to compute total sales.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Total sales computed successfully.",
		"data":    totalSales,
	})
}

func GetOrderCount(ctx *gin.Context, db *gorm.DB) {
	var count int64
	if result := db.Model(&models.Order{}).Count(&count); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to count orders.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Orders counted successfully.",
		"data":    count,
	})
}
