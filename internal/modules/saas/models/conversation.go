package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Conversation is the onboarding state of one customer phone number.
// There is exactly one row per customer_phone.
type Conversation struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerPhone string            `gorm:"type:text;not null;uniqueIndex:idx_conversations_customer_phone" json:"customer_phone"`
	CurrentState  string            `gorm:"type:text;not null;default:'initial'" json:"current_state"`
	BusinessID    *uuid.UUID        `gorm:"type:uuid;index" json:"business_id,omitempty"` // set once, never rebound
	Context       datatypes.JSONMap `json:"context"`
	LastMessageAt time.Time         `gorm:"not null" json:"last_message_at"`
	CreatedAt     time.Time         `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (Conversation) TableName() string {
	return "conversations"
}

// BeforeCreate sets UUID and defaults before creating
func (c *Conversation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Context == nil {
		c.Context = datatypes.JSONMap{}
	}
	if c.LastMessageAt.IsZero() {
		c.LastMessageAt = time.Now().UTC()
	}
	return nil
}

// HasBusiness reports whether onboarding already provisioned a tenant.
func (c *Conversation) HasBusiness() bool {
	return c.BusinessID != nil && *c.BusinessID != uuid.Nil
}
