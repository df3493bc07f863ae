package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Kimanzi/duka-api/cache"
	"github.com/Kimanzi/duka-api/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	if err != nil {
		log.Println(message+":", err)
	}
	ctx.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}

type ProductInput struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	RichDescription string  `json:"richDescription"`
	Brand           string  `json:"brand"`
	Image           string  `json:"image"`
	Price           float64 `json:"price" binding:"gte=0"`
	Category        uint    `json:"category" binding:"required"`
	CountInStock    int     `json:"countInStock" binding:"gte=0"`
	Rating          float64 `json:"rating"`
	NumReviews      int     `json:"numReviews"`
	IsFeatured      bool    `json:"isFeatured"`
}

// categoryExists resolves the referenced category before a product write is
// accepted.
func categoryExists(db *gorm.DB, categoryId uint) (bool, error) {
	var category models.Category
	err := db.First(&category, categoryId).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func GetProducts(ctx *gin.Context, db *gorm.DB, productCache *cache.ProductCache) {
	// The unfiltered list is served from Redis when possible.
	if ctx.Query("categories") == "" {
		if products, ok := productCache.Get(ctx.Request.Context()); ok {
			sendJSONResponse(ctx, http.StatusOK, gin.H{
				"success": true,
				"message": "Products fetched successfully.",
				"data":    products,
			})
			return
		}
	}

	query := db.Preload("Category")
	if categories := ctx.Query("categories"); categories != "" {
		ids := strings.Split(categories, ",")
		query = query.Where("category_id IN ?", ids)
	}

	var products []models.Product
	if result := query.Find(&products); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", result.Error)
		return
	}

	if ctx.Query("categories") == "" {
		productCache.Set(ctx.Request.Context(), products)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Products fetched successfully.",
		"data":    products,
	})
}

func GetProduct(ctx *gin.Context, db *gorm.DB) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var product models.Product
	result := db.Preload("Category").First(&product, productId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", result.Error)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Product fetched successfully.",
		"data":    product,
	})
}

func CreateProduct(ctx *gin.Context, db *gorm.DB, productCache *cache.ProductCache) {
	var input ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	exists, err := categoryExists(db, input.Category)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to validate category", err)
		return
	}
	if !exists {
		respondWithError(ctx, http.StatusBadRequest, "Invalid category", nil)
		return
	}

	product := models.Product{
		Name:            input.Name,
		Description:     input.Description,
		RichDescription: input.RichDescription,
		Brand:           input.Brand,
		Image:           input.Image,
		Price:           input.Price,
		CategoryID:      input.Category,
		CountInStock:    input.CountInStock,
		Rating:          input.Rating,
		NumReviews:      input.NumReviews,
		IsFeatured:      input.IsFeatured,
	}
	if err := db.Create(&product).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create product", err)
		return
	}

	productCache.Invalidate(ctx.Request.Context())

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"success": true,
		"message": "Product created successfully.",
		"data":    product,
	})
}

// UpdateProduct re-validates the category reference before touching any
// field. A bad category leaves the stored product exactly as it was.
func UpdateProduct(ctx *gin.Context, db *gorm.DB, productCache *cache.ProductCache) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var input ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	exists, err := categoryExists(db, input.Category)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to validate category", err)
		return
	}
	if !exists {
		respondWithError(ctx, http.StatusBadRequest, "Invalid category", nil)
		return
	}

	var product models.Product
	if result := db.First(&product, productId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", result.Error)
		}
		return
	}

	updates := map[string]any{
		"name":             input.Name,
		"description":      input.Description,
		"rich_description": input.RichDescription,
		"brand":            input.Brand,
		"image":            input.Image,
		"price":            input.Price,
		"category_id":      input.Category,
		"count_in_stock":   input.CountInStock,
		"rating":           input.Rating,
		"num_reviews":      input.NumReviews,
		"is_featured":      input.IsFeatured,
	}
	if result := db.Model(&product).Updates(updates); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update product", result.Error)
		return
	}

	productCache.Invalidate(ctx.Request.Context())

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Product updated successfully.",
		"data":    product,
	})
}

// DeleteProduct is unconditional: historical order items keep the price
// snapshot they were created with, so removing a product never touches them.
func DeleteProduct(ctx *gin.Context, db *gorm.DB, productCache *cache.ProductCache) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var product models.Product
	if result := db.First(&product, productId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", result.Error)
		}
		return
	}

	if result := db.Delete(&product); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete product", result.Error)
		return
	}

	productCache.Invalidate(ctx.Request.Context())

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Product deleted successfully.",
	})
}

func GetProductCount(ctx *gin.Context, db *gorm.DB) {
	var count int64
	if result := db.Model(&models.Product{}).Count(&count); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to count products", result.Error)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Products counted successfully.",
		"data":    count,
	})
}

func GetFeaturedProducts(ctx *gin.Context, db *gorm.DB) {
	count := 0
	if countParam := ctx.Param("count"); countParam != "" {
		parsed, err := strconv.Atoi(countParam)
		if err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid count", err)
			return
		}
		count = parsed
	}

	query := db.Where("is_featured = ?", true)
	if count > 0 {
		query = query.Limit(count)
	}

	var products []models.Product
	if result := query.Find(&products); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch featured products", result.Error)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"message": "Featured products fetched successfully.",
		"data":    products,
	})
}

// getAWSUploader returns a configured AWS S3 uploader
func getAWSUploader(ctx context.Context) (*manager.Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

func UploadProductImages(ctx *gin.Context, db *gorm.DB, productCache *cache.ProductCache, bucket string) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "No files uploaded", nil)
		return
	}

	var product models.Product
	if result := db.First(&product, productId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", result.Error)
		}
		return
	}

	uploader, err := getAWSUploader(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
		return
	}

	var imageUrls []string
	if len(product.Images) > 0 {
		if err := json.Unmarshal(product.Images, &imageUrls); err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to read existing images", err)
			return
		}
	}

	var uploadedUrls []string
	var failedUploads []string

	for _, file := range files {
		f, openErr := file.Open()
		if openErr != nil {
			log.Printf("Error opening file %s: %v", file.Filename, openErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		// Unique key so concurrent uploads never overwrite each other
		uniqueFilename := fmt.Sprintf("%d-%s-%s", productId, time.Now().Format("20060102150405"), file.Filename)

		result, uploadErr := uploader.Upload(ctx.Request.Context(), &s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(uniqueFilename),
			Body:        f,
			ACL:         "public-read",
			ContentType: aws.String(file.Header.Get("Content-Type")),
		})
		f.Close()

		if uploadErr != nil {
			log.Printf("Error uploading file %s: %v", file.Filename, uploadErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		uploadedUrls = append(uploadedUrls, result.Location)
	}

	if len(uploadedUrls) > 0 {
		imageUrls = append(imageUrls, uploadedUrls...)
		payload, err := json.Marshal(imageUrls)
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to encode image list", err)
			return
		}
		if result := db.Model(&product).Update("images", payload); result.Error != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to save image list", result.Error)
			return
		}
		productCache.Invalidate(ctx.Request.Context())
	}

	response := gin.H{
		"success": true,
		"message": "Files processed",
		"data":    uploadedUrls,
	}
	if len(failedUploads) > 0 {
		response["failed"] = failedUploads
	}

	sendJSONResponse(ctx, http.StatusOK, response)
}
