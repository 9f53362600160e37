// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"virtual-therapist-go/internal/service"
	"virtual-therapist-go/pkg/log"
)

// AdminHandler 负责处理所有与管理员相关的 API 请求。
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler 创建一个新的 AdminHandler 实例。
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// parseUserID 从 URL 路径中解析用户 ID。
func parseUserID(c *gin.Context) (uint, bool) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Warnf("Invalid user ID format: %q", c.Param("id"))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return 0, false
	}
	return uint(userID), true
}

// ListUsers 处理获取所有用户列表的请求，返回的数据不包含密码哈希。
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers()
	if err != nil {
		log.Error("ListUsers: Failed to list users", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// DeleteUser 处理删除指定用户的请求，其对话记录一并级联删除。
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	if err := h.adminService.DeleteUser(userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Error("DeleteUser: Failed to delete user", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	log.Infof("Admin deleted user ID %d", userID)
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// PromoteUser 处理将指定用户提升为管理员的请求。
func (h *AdminHandler) PromoteUser(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	user, err := h.adminService.PromoteUser(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Error("PromoteUser: Failed to promote user", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	log.Infof("User '%s' promoted to admin", user.Username)
	c.JSON(http.StatusOK, gin.H{
		"message": "User promoted to admin",
		"user":    user.Public(),
	})
}

// GetUserChats 处理获取指定用户对话记录的请求。
func (h *AdminHandler) GetUserChats(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	user, err := h.adminService.GetUserChats(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Error("GetUserChats: Failed to fetch user chats", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"chats":    user.Chats,
		"username": user.Username,
		"email":    user.Email,
	})
}
