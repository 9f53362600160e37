package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"virtual-therapist-go/internal/config"
	"virtual-therapist-go/internal/repository"
	"virtual-therapist-go/pkg/llm"
)

// historyWindow 是发送给模型的历史对话条数上限。
const historyWindow = 20

// BotService 定义了生成机器人回复的接口。
type BotService interface {
	Reply(ctx context.Context, userID uint, message string) (string, error)
}

// botService 是 BotService 接口的实现。
type botService struct {
	userRepo  repository.UserRepository
	chatRepo  repository.ChatRepository
	llmClient llm.Client
}

// NewBotService 创建一个新的 BotService 实例。
func NewBotService(userRepo repository.UserRepository, chatRepo repository.ChatRepository, llmClient llm.Client) BotService {
	return &botService{
		userRepo:  userRepo,
		chatRepo:  chatRepo,
		llmClient: llmClient,
	}
}

// Reply 基于调用者最近的对话历史生成一条机器人回复。
// 生成的回复不会自动落库，由客户端通过保存接口持久化。
func (s *botService) Reply(ctx context.Context, userID uint, message string) (string, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	turns, err := s.chatRepo.ListByUser(userID)
	if err != nil {
		return "", err
	}
	// 只保留最近的历史，避免超出模型上下文
	if len(turns) > historyWindow {
		turns = turns[len(turns)-historyWindow:]
	}

	messages := make([]llm.Message, 0, 2*len(turns)+2)
	if prompt := config.Conf.LLM.SystemPrompt; prompt != "" {
		messages = append(messages, llm.Message{Role: "system", Content: prompt})
	}
	for _, t := range turns {
		messages = append(messages,
			llm.Message{Role: "user", Content: t.UserText},
			llm.Message{Role: "assistant", Content: t.BotText},
		)
	}
	messages = append(messages, llm.Message{Role: "user", Content: message})

	return s.llmClient.Complete(ctx, messages)
}
