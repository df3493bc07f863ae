package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	RichDescription string         `json:"richDescription"`
	Brand           string         `json:"brand"`
	Image           string         `json:"image"`
	Images          datatypes.JSON `json:"images"`
	Price           float64        `json:"price"`
	CategoryID      uint           `json:"categoryId"`
	Category        Category       `json:"category"`
	CountInStock    int            `json:"countInStock"`
	Rating          float64        `json:"rating"`
	NumReviews      int            `json:"numReviews"`
	IsFeatured      bool           `json:"isFeatured"`
}
