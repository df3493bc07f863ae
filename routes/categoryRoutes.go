package routes

import (
	"github.com/Kimanzi/duka-api/controllers"
	"github.com/Kimanzi/duka-api/initializers"
	"github.com/Kimanzi/duka-api/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CategoryRoutes(server *gin.Engine, db *gorm.DB, cfg initializers.Config) {
	categories := server.Group("/api/v1/categories")
	{
		categories.GET("", func(ctx *gin.Context) {
			controllers.GetCategories(ctx, db)
		})
		categories.GET("/:id", func(ctx *gin.Context) {
			controllers.GetCategory(ctx, db)
		})

		protected := categories.Group("", middlewares.RequireAuth(cfg.JWTSecret))
		{
			protected.POST("", func(ctx *gin.Context) {
				controllers.CreateCategory(ctx, db)
			})
			protected.PUT("/:id", func(ctx *gin.Context) {
				controllers.UpdateCategory(ctx, db)
			})
		}

		admin := categories.Group("", middlewares.RequireAuth(cfg.JWTSecret), middlewares.RequireAdmin())
		{
			admin.DELETE("/:id", func(ctx *gin.Context) {
				controllers.DeleteCategory(ctx, db)
			})
		}
	}
}
