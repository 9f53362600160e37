// Package middleware 提供了处理 HTTP 请求的中间件。
package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"virtual-therapist-go/pkg/log"
)

// loginRateLimitPrefix 是登录限流计数器在 Redis 中的键前缀。
const loginRateLimitPrefix = "ratelimit:login:"

// LoginRateLimiter 创建一个基于 Redis 固定窗口计数的登录限流中间件。
// 同一客户端 IP 在一个窗口内最多允许 attempts 次请求，超出返回 429。
// Redis 不可用时放行请求，限流只作为暴力破解的软防线。
func LoginRateLimiter(rdb *redis.Client, attempts int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := loginRateLimitPrefix + c.ClientIP()
		ctx := context.Background()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Warnf("LoginRateLimiter: redis unavailable, allowing request: %v", err)
			c.Next()
			return
		}
		if count == 1 {
			// 窗口由第一次请求开启
			rdb.Expire(ctx, key, window)
		}

		if count > int64(attempts) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many login attempts, try again later"})
			return
		}

		c.Next()
	}
}
