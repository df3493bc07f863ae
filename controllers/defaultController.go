package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to Duka API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/api/v1/users/register" - Create user account
- POST "/api/v1/users/login" - Access user account

CATEGORY
- GET "/api/v1/categories" - Get all categories
- GET "/api/v1/categories/:id" - Get category by ID
- POST "/api/v1/categories" - Create a category
- PUT "/api/v1/categories/:id" - Update a category
- DELETE "/api/v1/categories/:id" - Delete a category (blocked while in use)

PRODUCT
- GET "/api/v1/products" - Get all products (?categories=1,2 to filter)
- GET "/api/v1/products/:id" - Get product by ID
- GET "/api/v1/products/get/count" - Count products
- GET "/api/v1/products/get/featured/:count" - Get featured products
- POST "/api/v1/products" - Create a product
- PUT "/api/v1/products/:id" - Update a product
- DELETE "/api/v1/products/:id" - Delete a product
- POST "/api/v1/products/:id/images" - Upload product images

ORDER
- GET "/api/v1/orders" - Get all orders (?user= to filter)
- GET "/api/v1/orders/:id" - Get order by ID
- POST "/api/v1/orders" - Place an order
- PUT "/api/v1/orders/:id" - Update order status
- DELETE "/api/v1/orders/:id" - Delete an order and its items
- GET "/api/v1/orders/get/totalsales" - Total sales
- GET "/api/v1/orders/get/count" - Count orders

USER
- GET "/api/v1/users" - Get all users
- GET "/api/v1/users/:id" - Get user by ID
- PUT "/api/v1/users/:id" - Update a user
- DELETE "/api/v1/users/:id" - Delete a user
- GET "/api/v1/users/get/count" - Count users

PROJECT
- GET "/api/v1/projects" - Get your projects
- GET "/api/v1/projects/:id" - Get project by ID
- POST "/api/v1/projects" - Create a project
- PUT "/api/v1/projects/:id" - Update a project
- DELETE "/api/v1/projects/:id" - Delete a project`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
