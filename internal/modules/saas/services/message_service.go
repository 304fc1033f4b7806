package services

import (
	"context"
	"strings"

	"github.com/MuhamadAgungGumelar/apexchat-be/internal/core/whatsapp"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/models"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/repositories"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/shared/utils"
	"github.com/google/uuid"
)

// MessageLogService appends to the message audit trail. Every write is
// best-effort: failures are logged and never returned.
type MessageLogService struct{}

func NewMessageLogService() *MessageLogService {
	return &MessageLogService{}
}

// LogInbound records a customer message.
func (s *MessageLogService) LogInbound(ctx context.Context, messages repositories.MessageRepo, conversationID *uuid.UUID, msg *InboundMessage) {
	entry := &models.WhatsAppMessage{
		ConversationID: conversationID,
		MessageSID:     msg.MessageSID,
		FromPhone:      msg.From,
		ToPhone:        msg.To,
		Body:           msg.Body,
		MessageType:    whatsapp.MediaKind(msg.MediaContentType),
		Direction:      models.DirectionIncoming,
		Status:         models.MessageStatusReceived,
	}
	s.append(ctx, messages, entry)
}

// LogOutbound records the reply sent back to the customer.
func (s *MessageLogService) LogOutbound(ctx context.Context, messages repositories.MessageRepo, conversationID *uuid.UUID, from, to, body string) {
	entry := &models.WhatsAppMessage{
		ConversationID: conversationID,
		MessageSID:     GenerateMessageSID(),
		FromPhone:      from,
		ToPhone:        to,
		Body:           body,
		MessageType:    models.MessageTypeText,
		Direction:      models.DirectionOutgoing,
		Status:         models.MessageStatusSent,
	}
	s.append(ctx, messages, entry)
}

func (s *MessageLogService) append(ctx context.Context, messages repositories.MessageRepo, entry *models.WhatsAppMessage) {
	if err := messages.Append(ctx, entry); err != nil {
		utils.LogError("Failed to log WhatsApp message", err, map[string]interface{}{
			"direction":   entry.Direction,
			"message_sid": entry.MessageSID,
		})
	}
}

// GenerateMessageSID creates a Twilio-shaped id for messages that arrive
// without one and for replies.
func GenerateMessageSID() string {
	return "SM" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
