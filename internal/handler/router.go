// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"virtual-therapist-go/internal/config"
	"virtual-therapist-go/internal/middleware"
	"virtual-therapist-go/pkg/token"
)

// NewRouter 创建路由引擎并注册全部 API 路由。
// rdb 为 nil 时不启用登录限流（测试环境）。
func NewRouter(
	jwtManager *token.JWTManager,
	rdb *redis.Client,
	authHandler *AuthHandler,
	chatHandler *ChatHandler,
	botHandler *BotHandler,
	adminHandler *AdminHandler,
) *gin.Engine {
	r := gin.New()
	// 自定义日志中间件、Gin 的 Recovery 和全局 CORS
	r.Use(middleware.RequestLogger(), gin.Recovery(), cors.Default())

	// 根路由
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Virtual Therapist API is running")
	})

	api := r.Group("/api")
	{
		// Auth 路由组（公开访问）
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)

			login := auth.Group("/")
			if rdb != nil {
				rl := config.Conf.RateLimit
				login.Use(middleware.LoginRateLimiter(rdb, rl.LoginAttempts, time.Duration(rl.WindowSeconds)*time.Second))
			}
			login.POST("/login", authHandler.Login)
		}

		// Chat 路由组，需要认证
		chats := api.Group("/chats")
		chats.Use(middleware.AuthMiddleware(jwtManager))
		{
			chats.POST("/save", chatHandler.SaveChat)
			chats.GET("", chatHandler.GetChats)
			chats.DELETE("/:chatId", chatHandler.DeleteChat)
		}

		// 机器人回复生成，需要认证
		chat := api.Group("/chat")
		chat.Use(middleware.AuthMiddleware(jwtManager))
		{
			chat.POST("", botHandler.Reply)
		}

		// 管理员路由组，需要同时通过认证和管理员授权两个中间件
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(jwtManager), middleware.AdminAuthMiddleware())
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
			admin.PATCH("/users/:id/promote", adminHandler.PromoteUser)
			admin.GET("/users/:id/chats", adminHandler.GetUserChats)
		}
	}

	return r
}
