package models

import "gorm.io/gorm"

type Order struct {
	gorm.Model
	UserID           uint        `json:"userId"`
	ShippingAddress1 string      `json:"shippingAddress1"`
	ShippingAddress2 string      `json:"shippingAddress2"`
	City             string      `json:"city"`
	Zip              string      `json:"zip"`
	Country          string      `json:"country"`
	Phone            string      `json:"phone"`
	Status           string      `json:"status"`
	TotalPrice       float64     `json:"totalPrice"`
	OrderItems       []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	gorm.Model
	OrderID   uint    `json:"orderId"`
	ProductID uint    `json:"productId"`
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
	// Price is the line total snapshot taken when the item was created:
	// product price at that instant times quantity. It never tracks later
	// product price changes, so orders stay auditable.
	Price float64 `json:"price"`
}
