package services

import (
	"context"

	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/models"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/onboarding"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/repositories"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/shared/utils"
)

const (
	defaultMessageLimit = 50
	maxMessageLimit     = 500
)

// ConversationService backs the operator endpoints for inspecting and
// resetting onboarding conversations.
type ConversationService struct {
	conversations repositories.ConversationRepo
	messages      repositories.MessageRepo
}

func NewConversationService(conversations repositories.ConversationRepo, messages repositories.MessageRepo) *ConversationService {
	return &ConversationService{conversations: conversations, messages: messages}
}

func (s *ConversationService) Get(ctx context.Context, phone string) (*models.Conversation, error) {
	key, _ := utils.NormalizeSender(phone)
	conversation, err := s.conversations.GetByPhone(ctx, key)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, repositories.ErrConversationNotFound
	}
	return conversation, nil
}

// Messages returns the newest messages of a conversation first.
func (s *ConversationService) Messages(ctx context.Context, phone string, limit int) ([]models.WhatsAppMessage, error) {
	conversation, err := s.Get(ctx, phone)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultMessageLimit
	}
	if limit > maxMessageLimit {
		limit = maxMessageLimit
	}
	return s.messages.ListByConversation(ctx, conversation.ID, limit)
}

// Reset puts the conversation back to the initial state. The business
// binding is kept.
func (s *ConversationService) Reset(ctx context.Context, phone string) (*models.Conversation, error) {
	conversation, err := s.Get(ctx, phone)
	if err != nil {
		return nil, err
	}
	if err := s.conversations.SetState(ctx, conversation.ID, string(onboarding.StateInitial)); err != nil {
		return nil, err
	}
	conversation.CurrentState = string(onboarding.StateInitial)

	utils.LogInfo("Conversation reset", map[string]interface{}{
		"conversation_id": conversation.ID.String(),
		"phone":           conversation.CustomerPhone,
	})
	return conversation, nil
}

func (s *ConversationService) ListRecent(ctx context.Context, limit int) ([]models.Conversation, error) {
	if limit <= 0 {
		limit = defaultMessageLimit
	}
	if limit > maxMessageLimit {
		limit = maxMessageLimit
	}
	return s.conversations.ListRecent(ctx, limit)
}
