package routes

import (
	"github.com/Kimanzi/duka-api/controllers"
	"github.com/Kimanzi/duka-api/initializers"
	"github.com/Kimanzi/duka-api/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func UserRoutes(server *gin.Engine, db *gorm.DB, cfg initializers.Config) {
	users := server.Group("/api/v1/users")
	{
		users.POST("/register", func(ctx *gin.Context) {
			controllers.Register(ctx, db)
		})
		users.POST("/login", func(ctx *gin.Context) {
			controllers.Login(ctx, db, cfg.JWTSecret)
		})

		protected := users.Group("", middlewares.RequireAuth(cfg.JWTSecret))
		{
			protected.GET("/:id", func(ctx *gin.Context) {
				controllers.GetUser(ctx, db)
			})
			protected.PUT("/:id", func(ctx *gin.Context) {
				controllers.UpdateUser(ctx, db)
			})
			protected.GET("/get/count", func(ctx *gin.Context) {
				controllers.GetUserCount(ctx, db)
			})
		}

		admin := users.Group("", middlewares.RequireAuth(cfg.JWTSecret), middlewares.RequireAdmin())
		{
			admin.GET("", func(ctx *gin.Context) {
				controllers.GetUsers(ctx, db)
			})
			admin.DELETE("/:id", func(ctx *gin.Context) {
				controllers.DeleteUser(ctx, db)
			})
		}
	}
}
