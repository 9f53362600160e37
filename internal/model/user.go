// Package model 包含了应用的数据模型定义。
package model

import "time"

// User 代表一个注册用户及其对话记录。
// 密码哈希永远不会被序列化到客户端。
type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"size:120;not null" json:"username"`
	Email        string     `gorm:"size:190;uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	IsAdmin      bool       `gorm:"not null;default:false" json:"isAdmin"`
	Chats        []ChatTurn `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"chats"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// PublicUser 是返回给客户端的用户公开视图。
type PublicUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Public 返回用户的公开视图。
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
	}
}
