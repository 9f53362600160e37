package model

import "time"

// ChatTurn 代表一次单独的问答交互，归属于某个用户。
// 只能通过追加到用户的对话序列来创建，随用户删除而级联删除。
type ChatTurn struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"-"`
	UserText  string    `gorm:"type:text;not null" json:"user"`
	BotText   string    `gorm:"type:text;not null" json:"bot"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

func (ChatTurn) TableName() string {
	return "chat_turns"
}
