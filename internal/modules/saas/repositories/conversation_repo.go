package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/models"
	"github.com/MuhamadAgungGumelar/apexchat-be/internal/modules/saas/onboarding"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConversationRepo interface {
	// GetByPhone returns nil, nil when the phone has no conversation yet.
	GetByPhone(ctx context.Context, phone string) (*models.Conversation, error)
	// LockByPhone is GetByPhone with a row lock held until the surrounding
	// transaction ends.
	LockByPhone(ctx context.Context, phone string) (*models.Conversation, error)
	// Create inserts a conversation in the initial state. When another
	// delivery created the row first, that row is returned instead.
	Create(ctx context.Context, phone string) (*models.Conversation, error)
	// UpdateState moves the conversation and refreshes last_message_at.
	// businessID is bound only while the column is still NULL.
	UpdateState(ctx context.Context, id uuid.UUID, state string, businessID *uuid.UUID) error
	// SetState changes the state without touching the activity timestamp.
	SetState(ctx context.Context, id uuid.UUID, state string) error
	ListRecent(ctx context.Context, limit int) ([]models.Conversation, error)
}

type conversationRepo struct {
	db *gorm.DB
}

func NewConversationRepo(db *gorm.DB) ConversationRepo {
	return &conversationRepo{db: db}
}

func (r *conversationRepo) GetByPhone(ctx context.Context, phone string) (*models.Conversation, error) {
	return r.find(r.db.WithContext(ctx), phone)
}

func (r *conversationRepo) LockByPhone(ctx context.Context, phone string) (*models.Conversation, error) {
	// SQLite has no row locks; the dialect drops the clause and the database
	// write lock serializes writers instead.
	return r.find(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), phone)
}

func (r *conversationRepo) find(db *gorm.DB, phone string) (*models.Conversation, error) {
	var conversation models.Conversation
	err := db.Where("customer_phone = ?", phone).Take(&conversation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	return &conversation, nil
}

func (r *conversationRepo) Create(ctx context.Context, phone string) (*models.Conversation, error) {
	conversation := &models.Conversation{
		CustomerPhone: phone,
		CurrentState:  string(onboarding.StateInitial),
		LastMessageAt: time.Now().UTC(),
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "customer_phone"}}, DoNothing: true}).
		Create(conversation)
	if result.Error != nil {
		return nil, fmt.Errorf("create conversation: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		// lost the race against a concurrent first message
		existing, err := r.LockByPhone(ctx, phone)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("create conversation: %w", ErrConversationNotFound)
		}
		return existing, nil
	}

	return conversation, nil
}

func (r *conversationRepo) UpdateState(ctx context.Context, id uuid.UUID, state string, businessID *uuid.UUID) error {
	updates := map[string]interface{}{
		"current_state":   state,
		"last_message_at": time.Now().UTC(),
	}
	if businessID != nil {
		updates["business_id"] = gorm.Expr("COALESCE(business_id, ?)", *businessID)
	}

	result := r.db.WithContext(ctx).
		Model(&models.Conversation{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("update conversation state: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrConversationNotFound
	}
	return nil
}

func (r *conversationRepo) SetState(ctx context.Context, id uuid.UUID, state string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Conversation{}).
		Where("id = ?", id).
		Update("current_state", state)
	if result.Error != nil {
		return fmt.Errorf("set conversation state: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrConversationNotFound
	}
	return nil
}

func (r *conversationRepo) ListRecent(ctx context.Context, limit int) ([]models.Conversation, error) {
	var conversations []models.Conversation
	err := r.db.WithContext(ctx).
		Order("last_message_at DESC").
		Limit(limit).
		Find(&conversations).Error
	return conversations, err
}
