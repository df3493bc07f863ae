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

func GetCategories(ctx *gin.Context, db *gorm.DB) {
	var categories []models.Category
	if result := db.Find(&categories); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch categories.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Categories fetched successfully.",
		"data":    categories,
	})
}

func GetCategory(ctx *gin.Context, db *gorm.DB) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var category models.Category
	if result := db.First(&category, categoryId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Category not found!")
		} else {
			log.Println(result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch category.")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Category fetched successfully.",
		"data":    category,
	})
}

func CreateCategory(ctx *gin.Context, db *gorm.DB) {
	var category models.Category
	if err := ctx.ShouldBindJSON(&category); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if result := db.Create(&category); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Category cannot be created.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Category created successfully.",
		"data":    category,
	})
}

func UpdateCategory(ctx *gin.Context, db *gorm.DB) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var input models.Category
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var category models.Category
	if result := db.First(&category, categoryId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Category not found!")
		} else {
			log.Println(result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch category.")
		}
		return
	}

	updates := map[string]any{
		"name":  input.Name,
		"icon":  input.Icon,
		"color": input.Color,
	}
	if result := db.Model(&category).Updates(updates); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Category cannot be updated.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Category updated successfully.",
		"data":    category,
	})
}

// DeleteCategory removes a category unless a product still references it.
// The check and the delete are separate statements, so a product created
// against this category between them can slip through; MySQL keeps the
// window small but callers should not rely on it being zero.
func DeleteCategory(ctx *gin.Context, db *gorm.DB) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var category models.Category
	if result := db.First(&category, categoryId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Category not found!")
		} else {
			log.Println(result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch category.")
		}
		return
	}

	var productCount int64
	if result := db.Model(&models.Product{}).Where("category_id = ?", category.ID).Count(&productCount); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to check category usage.")
		return
	}
	if productCount > 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Category is in use and cannot be deleted.")
		return
	}

	if result := db.Delete(&category); result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete category.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Category deleted successfully.",
	})
}
