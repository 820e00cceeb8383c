package middleware

import (
	"NovaAff/internal/pkg/consts"
	"NovaAff/internal/pkg/response"
	"NovaAff/internal/pkg/security"
	"NovaAff/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 负责验证 access token 并将账号身份注入 Context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.Unauthorized, service.ErrAuthRequired.Error())
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := security.ValidateToken(tokenString, security.TokenTypeAccess)
		if err != nil {
			response.Fail(c, response.Unauthorized, service.ErrTokenInvalid.Error())
			c.Abort()
			return
		}

		c.Set(consts.UserIDKey, claims.UserID)
		c.Set(consts.RoleKey, claims.Role)

		newCtx := security.WithIdentity(c.Request.Context(), claims.UserID, claims.Role)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
