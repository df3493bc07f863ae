package routes

import (
	"github.com/Kimanzi/duka-api/cache"
	"github.com/Kimanzi/duka-api/controllers"
	"github.com/Kimanzi/duka-api/initializers"
	"github.com/Kimanzi/duka-api/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ProductRoutes(server *gin.Engine, db *gorm.DB, productCache *cache.ProductCache, cfg initializers.Config) {
	products := server.Group("/api/v1/products")
	{
		products.GET("", func(ctx *gin.Context) {
			controllers.GetProducts(ctx, db, productCache)
		})
		products.GET("/:id", func(ctx *gin.Context) {
			controllers.GetProduct(ctx, db)
		})
		products.GET("/get/count", func(ctx *gin.Context) {
			controllers.GetProductCount(ctx, db)
		})
		products.GET("/get/featured/:count", func(ctx *gin.Context) {
			controllers.GetFeaturedProducts(ctx, db)
		})

		protected := products.Group("", middlewares.RequireAuth(cfg.JWTSecret))
		{
			protected.POST("", func(ctx *gin.Context) {
				controllers.CreateProduct(ctx, db, productCache)
			})
			protected.PUT("/:id", func(ctx *gin.Context) {
				controllers.UpdateProduct(ctx, db, productCache)
			})
			protected.DELETE("/:id", func(ctx *gin.Context) {
				controllers.DeleteProduct(ctx, db, productCache)
			})
			protected.POST("/:id/images", func(ctx *gin.Context) {
				controllers.UploadProductImages(ctx, db, productCache, cfg.S3Bucket)
			})
		}
	}
}
