// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"virtual-therapist-go/internal/middleware"
	"virtual-therapist-go/internal/service"
	"virtual-therapist-go/pkg/log"
)

// BotHandler 负责处理机器人回复生成的 API 请求。
type BotHandler struct {
	botService service.BotService
}

// NewBotHandler 创建一个新的 BotHandler 实例。
func NewBotHandler(botService service.BotService) *BotHandler {
	return &BotHandler{botService: botService}
}

// BotReplyRequest 定义了生成回复 API 的请求体结构。
type BotReplyRequest struct {
	Message string `json:"message" binding:"required"`
}

// Reply 基于当前用户最近的对话历史生成一条机器人回复。
// 回复不会自动保存，由客户端决定是否调用保存接口落库。
func (h *BotHandler) Reply(c *gin.Context) {
	var req BotReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No input provided"})
		return
	}

	identity, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	reply, err := h.botService.Reply(c.Request.Context(), identity.UserID, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Error("Reply: LLM completion failed", err)
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to generate a reply"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}
