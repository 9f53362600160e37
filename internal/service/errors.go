// Package service 包含了应用的业务逻辑层。
package service

import "errors"

// 业务层的哨兵错误，handler 层据此映射 HTTP 状态码。
var (
	// ErrEmailTaken 表示注册邮箱已被占用。
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials 表示邮箱不存在或密码不匹配。
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserNotFound 表示目标用户不存在（可能在签发 token 后被删除）。
	ErrUserNotFound = errors.New("user not found")
)
