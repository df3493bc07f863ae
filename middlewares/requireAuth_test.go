package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Kimanzi/duka-api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, secret string, expiresIn time.Duration) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":  float64(7),
		"isAdmin": true,
		"exp":     time.Now().Add(expiresIn).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer token", "Basic abc123", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusForbidden},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", time.Hour), http.StatusForbidden},
		{"expired token", "Bearer " + signToken(t, testSecret, -time.Hour), http.StatusForbidden},
		{"valid token", "Bearer " + signToken(t, testSecret, time.Hour), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := gin.New()
			server.GET("/protected", middlewares.RequireAuth(testSecret), func(ctx *gin.Context) {
				ctx.JSON(http.StatusOK, gin.H{"success": true})
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tt.wantStatus, recorder.Code, "body: %s", recorder.Body.String())
		})
	}
}

func TestRequireAuthSetsIdentity(t *testing.T) {
	server := gin.New()
	server.GET("/protected", middlewares.RequireAuth(testSecret), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"userId":  ctx.GetUint("userId"),
			"isAdmin": ctx.GetBool("isAdmin"),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, time.Hour))

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"userId": 7, "isAdmin": true}`, recorder.Body.String())
}

func TestRequireAdmin(t *testing.T) {
	newServer := func(isAdmin bool) *gin.Engine {
		server := gin.New()
		server.GET("/admin", func(ctx *gin.Context) {
			ctx.Set("isAdmin", isAdmin)
		}, middlewares.RequireAdmin(), func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"success": true})
		})
		return server
	}

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)

	recorder := httptest.NewRecorder()
	newServer(false).ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = httptest.NewRecorder()
	newServer(true).ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
