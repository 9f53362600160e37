// Package middleware 提供了处理 HTTP 请求的中间件。
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"virtual-therapist-go/pkg/token"
)

// identityKey 是请求作用域身份在 gin 上下文中的键。
const identityKey = "identity"

// AuthMiddleware 创建一个 Gin 中间件，用于 JWT 认证。
// 它从请求头中提取 bearer token，验证签名和有效期，并将 claims 作为
// 请求作用域的身份存入上下文。身份完全取自 token 内容，不回查数据库：
// 权限变更要等用户重新登录后才会生效。
func AuthMiddleware(jwtManager *token.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 从 Authorization 请求头中获取 token
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}

		// Token 以 "Bearer <token>" 的形式提供，提取出 token 本身
		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)

		// 验证签名与有效期；任何验证失败都返回 401
		claims, err := jwtManager.VerifyToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		// 将身份存入上下文，供后续处理函数使用
		c.Set(identityKey, claims)
		c.Next()
	}
}

// Identity 从 gin 上下文中取出由 AuthMiddleware 建立的请求身份。
func Identity(c *gin.Context) (*token.CustomClaims, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*token.CustomClaims)
	return claims, ok
}
