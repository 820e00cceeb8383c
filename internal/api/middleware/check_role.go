package middleware

import (
	"NovaAff/internal/pkg/consts"
	"NovaAff/internal/pkg/response"
	"NovaAff/internal/service"
	"slices"

	"github.com/gin-gonic/gin"
)

// CheckRoles 检查当前账号的角色是否在允许列表中
func CheckRoles(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(consts.RoleKey)

		if !slices.Contains(allowedRoles, role) {
			response.Fail(c, response.Forbidden, service.ErrPermissionDenied.Error())
			c.Abort()
			return
		}

		c.Next()
	}
}

// ReadOnlyFor 安全方法放行 readers 中的角色，其余方法只允许 writers
func ReadOnlyFor(readers []string, writers ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(consts.RoleKey)

		allowed := writers
		switch c.Request.Method {
		case "GET", "HEAD", "OPTIONS":
			allowed = readers
		}
		if !slices.Contains(allowed, role) {
			response.Fail(c, response.Forbidden, service.ErrPermissionDenied.Error())
			c.Abort()
			return
		}

		c.Next()
	}
}
