// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"virtual-therapist-go/internal/middleware"
	"virtual-therapist-go/internal/service"
	"virtual-therapist-go/pkg/log"
)

// ChatHandler 负责处理当前用户的对话记录相关的 API 请求。
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler 创建一个新的 ChatHandler 实例。
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// SaveChatRequest 定义了保存对话 API 的请求体结构。
type SaveChatRequest struct {
	UserMessage string `json:"userMessage" binding:"required"`
	BotReply    string `json:"botReply" binding:"required"`
}

// SaveChat 向当前用户的对话序列追加一条记录。
func (h *ChatHandler) SaveChat(c *gin.Context) {
	var req SaveChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("SaveChat: Invalid request payload, error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "User message and bot reply are required"})
		return
	}

	identity, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	chatID, err := h.chatService.SaveChat(identity.UserID, req.UserMessage, req.BotReply)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Error("SaveChat: Failed to save chat", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while saving chat"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Chat saved successfully",
		"chatId":  chatID,
	})
}

// GetChats 按时间顺序返回当前用户的全部对话记录。
func (h *ChatHandler) GetChats(c *gin.Context) {
	identity, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	user, err := h.chatService.ListChats(identity.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Error("GetChats: Failed to fetch chats", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while fetching chats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username": user.Username,
		"chats":    user.Chats,
	})
}

// DeleteChat 从当前用户的对话序列中移除一条记录。
// chatId 未匹配到任何记录（包括格式不合法的 id）时静默成功。
func (h *ChatHandler) DeleteChat(c *gin.Context) {
	identity, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	// 解析失败的 id 等同于未匹配：chatID 保持 0，删除不会命中任何记录
	chatID, _ := strconv.ParseUint(c.Param("chatId"), 10, 32)

	if err := h.chatService.DeleteChat(identity.UserID, uint(chatID)); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Error("DeleteChat: Failed to delete chat", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while deleting chat"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Chat deleted successfully"})
}
