package repositories

import (
	"context"
	"fmt"

	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageRepo interface {
	// Append inserts one audit row. Inside a transaction it runs under a
	// savepoint, so a failed insert leaves the outer transaction usable.
	Append(ctx context.Context, message *models.WhatsAppMessage) error
	ListByConversation(ctx context.Context, conversationID uuid.UUID, limit int) ([]models.WhatsAppMessage, error)
}

type messageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) MessageRepo {
	return &messageRepo{db: db}
}

func (r *messageRepo) Append(ctx context.Context, message *models.WhatsAppMessage) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(message).Error
	})
	if err != nil {
		return fmt.Errorf("append message: %w", err)
	}
	return nil
}

func (r *messageRepo) ListByConversation(ctx context.Context, conversationID uuid.UUID, limit int) ([]models.WhatsAppMessage, error) {
	var messages []models.WhatsAppMessage
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}
