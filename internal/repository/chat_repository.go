// Package repository 提供了数据访问层的实现。
package repository

import (
	"gorm.io/gorm"

	"virtual-therapist-go/internal/model"
)

// ChatRepository 定义了对话记录的持久化操作。
type ChatRepository interface {
	Append(turn *model.ChatTurn) error
	ListByUser(userID uint) ([]model.ChatTurn, error)
	Delete(userID, chatID uint) error
}

// chatRepository 是 ChatRepository 接口的 GORM 实现。
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository 创建一个新的 ChatRepository 实例。
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

// Append 向用户的对话序列追加一条记录。
// 单条 INSERT 在存储层是原子的，并发追加不会互相覆盖。
func (r *chatRepository) Append(turn *model.ChatTurn) error {
	return r.db.Create(turn).Error
}

// ListByUser 按时间顺序返回用户的全部对话记录。
func (r *chatRepository) ListByUser(userID uint) ([]model.ChatTurn, error) {
	var turns []model.ChatTurn
	err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&turns).Error
	return turns, err
}

// Delete 从用户的对话序列中移除指定记录。
// 未匹配到记录时不报错，与查询条件不符的记录不受影响。
func (r *chatRepository) Delete(userID, chatID uint) error {
	return r.db.Where("user_id = ? AND id = ?", userID, chatID).Delete(&model.ChatTurn{}).Error
}
