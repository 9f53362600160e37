package service

import (
	"errors"

	"gorm.io/gorm"

	"virtual-therapist-go/internal/model"
	"virtual-therapist-go/internal/repository"
)

// UserDetailResponse 定义了管理员用户列表项的结构，不包含密码哈希。
type UserDetailResponse struct {
	ID        uint            `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	IsAdmin   bool            `json:"isAdmin"`
	CreatedAt model.LocalTime `json:"createdAt"`
}

// AdminService 接口定义了所有管理员相关的业务操作。
type AdminService interface {
	ListUsers() ([]UserDetailResponse, error)
	DeleteUser(userID uint) error
	PromoteUser(userID uint) (*model.User, error)
	GetUserChats(userID uint) (*model.User, error)
}

// adminService 是 AdminService 接口的实现。
type adminService struct {
	userRepo repository.UserRepository
}

// NewAdminService 创建一个新的 AdminService 实例。
func NewAdminService(userRepo repository.UserRepository) AdminService {
	return &adminService{userRepo: userRepo}
}

// ListUsers 返回所有用户的列表，排除密码哈希。
func (s *adminService) ListUsers() ([]UserDetailResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	list := make([]UserDetailResponse, 0, len(users))
	for _, u := range users {
		list = append(list, UserDetailResponse{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			IsAdmin:   u.IsAdmin,
			CreatedAt: model.LocalTime(u.CreatedAt),
		})
	}
	return list, nil
}

// DeleteUser 删除指定用户及其全部对话记录。
func (s *adminService) DeleteUser(userID uint) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.userRepo.Delete(userID)
}

// PromoteUser 将指定用户提升为管理员并返回更新后的用户。
// 已签发的 token 不受影响，新权限在用户下次登录后生效。
func (s *adminService) PromoteUser(userID uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.IsAdmin = true
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserChats 返回指定用户及其按时间顺序排列的对话记录。
func (s *adminService) GetUserChats(userID uint) (*model.User, error) {
	user, err := s.userRepo.FindByIDWithChats(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	// 空序列序列化为 []，而不是 null
	if user.Chats == nil {
		user.Chats = []model.ChatTurn{}
	}
	return user, nil
}
