package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RequireAuth validates the bearer token on the request and stores the
// caller's identity in the context. A missing or malformed header aborts with
// 401, a bad signature or expired token with 403. Handlers behind this
// middleware run only after the token checked out, so no partial write can
// happen on an unauthenticated request.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authorization header missing or malformed"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Invalid or expired token"})
			return
		}

		userId, ok := claims["userId"].(float64)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": "Invalid or expired token"})
			return
		}
		isAdmin, _ := claims["isAdmin"].(bool)

		ctx.Set("userId", uint(userId))
		ctx.Set("isAdmin", isAdmin)
		ctx.Next()
	}
}
