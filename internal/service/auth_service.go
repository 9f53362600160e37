package service

import (
	"errors"

	"gorm.io/gorm"

	"virtual-therapist-go/internal/model"
	"virtual-therapist-go/internal/repository"
	"virtual-therapist-go/pkg/hash"
	"virtual-therapist-go/pkg/token"
)

// AuthService 接口定义了注册和登录相关的业务操作。
type AuthService interface {
	Register(username, email, password string) error
	Login(email, password string) (accessToken string, user *model.User, err error)
}

// authService 是 AuthService 接口的实现。
type authService struct {
	userRepo   repository.UserRepository
	jwtManager *token.JWTManager
}

// NewAuthService 创建一个新的 AuthService 实例。
func NewAuthService(userRepo repository.UserRepository, jwtManager *token.JWTManager) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// Register 处理用户注册的业务逻辑。
func (s *authService) Register(username, email, password string) error {
	// 1. 检查邮箱是否已被注册
	_, err := s.userRepo.FindByEmail(email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	// 2. 对密码进行哈希处理
	hashedPassword, err := hash.HashPassword(password)
	if err != nil {
		return err
	}

	// 3. 创建新用户，默认不是管理员，对话序列为空
	newUser := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		IsAdmin:      false,
	}
	return s.userRepo.Create(newUser)
}

// Login 处理用户登录的业务逻辑。
// 成功时签发一个嵌入 {id, username, email, isAdmin} 的 24 小时会话 token。
func (s *authService) Login(email, password string) (string, *model.User, error) {
	// 1. 查找用户
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	// 2. 验证密码
	if !hash.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	// 3. 生成会话 token
	accessToken, err := s.jwtManager.GenerateToken(user.ID, user.Username, user.Email, user.IsAdmin)
	if err != nil {
		return "", nil, err
	}

	return accessToken, user, nil
}
