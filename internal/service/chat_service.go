package service

import (
	"errors"

	"gorm.io/gorm"

	"virtual-therapist-go/internal/model"
	"virtual-therapist-go/internal/repository"
)

// ChatService 定义了对话记录操作的接口，所有操作都以调用者自己的身份为作用域。
type ChatService interface {
	SaveChat(userID uint, userText, botText string) (chatID uint, err error)
	ListChats(userID uint) (*model.User, error)
	DeleteChat(userID, chatID uint) error
}

// chatService 是 ChatService 接口的实现。
type chatService struct {
	userRepo repository.UserRepository
	chatRepo repository.ChatRepository
}

// NewChatService 创建一个新的 ChatService 实例。
func NewChatService(userRepo repository.UserRepository, chatRepo repository.ChatRepository) ChatService {
	return &chatService{
		userRepo: userRepo,
		chatRepo: chatRepo,
	}
}

// SaveChat 向调用者的对话序列追加一条记录并返回新记录的 ID。
// 如果身份已不再对应任何用户（如签发 token 后被删除），返回 ErrUserNotFound。
func (s *chatService) SaveChat(userID uint, userText, botText string) (uint, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}

	turn := &model.ChatTurn{
		UserID:   userID,
		UserText: userText,
		BotText:  botText,
	}
	if err := s.chatRepo.Append(turn); err != nil {
		return 0, err
	}
	return turn.ID, nil
}

// ListChats 返回调用者及其按时间顺序排列的全部对话记录。
func (s *chatService) ListChats(userID uint) (*model.User, error) {
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

// DeleteChat 从调用者的对话序列中移除一条记录。
// chatID 未匹配到任何记录时静默成功，不视为错误。
func (s *chatService) DeleteChat(userID, chatID uint) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.chatRepo.Delete(userID, chatID)
}
