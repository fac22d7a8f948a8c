package delivery

import (
	"net/http"
	"strings"

	"github.com/xniebuhr/FinanceTracker/internal/auth/usecase"
	"github.com/xniebuhr/FinanceTracker/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer access token and stores the resolved
// user id on the context for downstream handlers.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Fail(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Fail(c, http.StatusUnauthorized, "Invalid authorization header format")
			c.Abort()
			return
		}

		user, err := authUsecase.ValidateToken(parts[1])
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("userID", user.ID)
		c.Next()
	}
}
