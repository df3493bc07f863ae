package main

import (
	"log"
	"time"

	"github.com/Kimanzi/duka-api/cache"
	"github.com/Kimanzi/duka-api/initializers"
	"github.com/Kimanzi/duka-api/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	initializers.LoadEnv()
	cfg := initializers.LoadConfig()

	db, err := initializers.ConnectToDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := initializers.SyncDatabase(db); err != nil {
		log.Fatal("Failed to sync database:", err)
	}

	rdb := initializers.ConnectToRedis(cfg)
	productCache := cache.NewProductCache(rdb)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.UserRoutes(server, db, cfg)
	routes.CategoryRoutes(server, db, cfg)
	routes.ProductRoutes(server, db, productCache, cfg)
	routes.OrderRoutes(server, db, cfg)
	routes.ProjectRoutes(server, db, cfg)

	server.Run(":" + cfg.Port)
}
