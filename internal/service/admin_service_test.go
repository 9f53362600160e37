package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtual-therapist-go/internal/model"
	"virtual-therapist-go/internal/repository"
	"virtual-therapist-go/pkg/token"
)

func newAdminService(t *testing.T) (AdminService, ChatService, repository.UserRepository) {
	t.Helper()
	db := setupDB(t)
	userRepo := repository.NewUserRepository(db)
	chatRepo := repository.NewChatRepository(db)
	return NewAdminService(userRepo), NewChatService(userRepo, chatRepo), userRepo
}

func TestListUsers(t *testing.T) {
	svc, _, userRepo := newAdminService(t)

	require.NoError(t, userRepo.Create(&model.User{Username: "alice", Email: "a@x.com", PasswordHash: "hash-a"}))
	require.NoError(t, userRepo.Create(&model.User{Username: "bob", Email: "b@x.com", PasswordHash: "hash-b", IsAdmin: true}))

	users, err := svc.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.False(t, users[0].IsAdmin)
	assert.Equal(t, "bob", users[1].Username)
	assert.True(t, users[1].IsAdmin)
}

func TestDeleteUser_CascadesChats(t *testing.T) {
	svc, chatSvc, userRepo := newAdminService(t)

	user := &model.User{Username: "alice", Email: "a@x.com", PasswordHash: "x"}
	require.NoError(t, userRepo.Create(user))
	_, err := chatSvc.SaveChat(user.ID, "Hi", "Hello")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(user.ID))

	_, err = userRepo.FindByID(user.ID)
	assert.Error(t, err)

	// 对话记录随用户一并删除，被删除用户的身份也不再可用
	_, err = chatSvc.ListChats(user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUser_NotFound(t *testing.T) {
	svc, _, _ := newAdminService(t)

	err := svc.DeleteUser(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPromoteUser(t *testing.T) {
	svc, _, userRepo := newAdminService(t)

	user := &model.User{Username: "alice", Email: "a@x.com", PasswordHash: "x"}
	require.NoError(t, userRepo.Create(user))

	jwtManager := token.NewJWTManager("test-secret", 24)
	// 提升前签发的 token 不带管理员权限
	before, err := jwtManager.GenerateToken(user.ID, user.Username, user.Email, user.IsAdmin)
	require.NoError(t, err)

	promoted, err := svc.PromoteUser(user.ID)
	require.NoError(t, err)
	assert.True(t, promoted.IsAdmin)

	stored, err := userRepo.FindByID(user.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsAdmin)

	// 旧 token 的声明保持签发时刻的权限，新 token 才携带管理员权限
	beforeClaims, err := jwtManager.VerifyToken(before)
	require.NoError(t, err)
	assert.False(t, beforeClaims.IsAdmin)

	after, err := jwtManager.GenerateToken(stored.ID, stored.Username, stored.Email, stored.IsAdmin)
	require.NoError(t, err)
	afterClaims, err := jwtManager.VerifyToken(after)
	require.NoError(t, err)
	assert.True(t, afterClaims.IsAdmin)
}

func TestPromoteUser_NotFound(t *testing.T) {
	svc, _, _ := newAdminService(t)

	_, err := svc.PromoteUser(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserChats(t *testing.T) {
	svc, chatSvc, userRepo := newAdminService(t)

	user := &model.User{Username: "alice", Email: "a@x.com", PasswordHash: "x"}
	require.NoError(t, userRepo.Create(user))
	_, err := chatSvc.SaveChat(user.ID, "Hi", "Hello")
	require.NoError(t, err)

	got, err := svc.GetUserChats(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "a@x.com", got.Email)
	require.Len(t, got.Chats, 1)
	assert.Equal(t, "Hi", got.Chats[0].UserText)

	_, err = svc.GetUserChats(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
