package routes

import (
	"github.com/Kimanzi/duka-api/controllers"
	"github.com/Kimanzi/duka-api/initializers"
	"github.com/Kimanzi/duka-api/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ProjectRoutes(server *gin.Engine, db *gorm.DB, cfg initializers.Config) {
	projects := server.Group("/api/v1/projects", middlewares.RequireAuth(cfg.JWTSecret))
	{
		projects.GET("", func(ctx *gin.Context) {
			controllers.GetProjects(ctx, db)
		})
		projects.GET("/:id", func(ctx *gin.Context) {
			controllers.GetProject(ctx, db)
		})
		projects.POST("", func(ctx *gin.Context) {
			controllers.CreateProject(ctx, db)
		})
		projects.PUT("/:id", func(ctx *gin.Context) {
			controllers.UpdateProject(ctx, db)
		})
		projects.DELETE("/:id", func(ctx *gin.Context) {
			controllers.DeleteProject(ctx, db)
		})
	}
}
