package routes

import (
	"github.com/Kimanzi/duka-api/controllers"
	"github.com/Kimanzi/duka-api/initializers"
	"github.com/Kimanzi/duka-api/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func OrderRoutes(server *gin.Engine, db *gorm.DB, cfg initializers.Config) {
	orders := server.Group("/api/v1/orders", middlewares.RequireAuth(cfg.JWTSecret))
	{
		orders.GET("", func(ctx *gin.Context) {
			controllers.GetOrders(ctx, db)
		})
		orders.GET("/:id", func(ctx *gin.Context) {
			controllers.GetOrder(ctx, db)
		})
		orders.POST("", func(ctx *gin.Context) {
			controllers.CreateOrder(ctx, db)
		})
		orders.PUT("/:id", func(ctx *gin.Context) {
			controllers.UpdateOrderStatus(ctx, db)
		})
		orders.DELETE("/:id", func(ctx *gin.Context) {
			controllers.DeleteOrder(ctx, db)
		})
		orders.GET("/get/totalsales", func(ctx *gin.Context) {
			controllers.GetTotalSales(ctx, db)
		})
		orders.GET("/get/count", func(ctx *gin.Context) {
			controllers.GetOrderCount(ctx, db)
		})
	}
}
